package random

import (
	"math/rand"

	"github.com/they4kman/gosweep/game"
)

// Director plays by revealing covered tiles in a random order
type Director struct {
	board *game.Board
	rand  *rand.Rand

	unrevealedCells []game.Coordinates
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(rand.Int63()))
	}

	director.unrevealedCells = board.CoveredCoordinates()
	director.rand.Shuffle(len(director.unrevealedCells), func(i, j int) {
		director.unrevealedCells[i], director.unrevealedCells[j] = director.unrevealedCells[j], director.unrevealedCells[i]
	})
}

func (director *Director) Act() (game.RevealOutcome, bool) {
	if director.board == nil || director.board.State() != game.Ongoing {
		return game.RevealOutcome{}, false
	}

	for len(director.unrevealedCells) > 0 {
		coords := director.unrevealedCells[0]
		director.unrevealedCells = director.unrevealedCells[1:]

		if _, covered := director.board.CoveredEntityAt(coords); covered {
			return director.board.ProcessRevealTrigger(coords), true
		}
	}

	return game.RevealOutcome{}, false
}
