package game

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/util/collections"
)

type RevealedTile struct {
	Coordinates Coordinates
	Handle      Handle
	Tile        Tile
}

// RevealOutcome reports the tiles uncovered by one or more reveal triggers
type RevealOutcome struct {
	Revealed []RevealedTile
	HitBomb  bool
}

func (outcome *RevealOutcome) Merge(other RevealOutcome) {
	outcome.Revealed = append(outcome.Revealed, other.Revealed...)
	outcome.HitBomb = outcome.HitBomb || other.HitBomb
}

// ProcessRevealTrigger uncovers the tile at coords. Empty tiles cascade to
// their covered neighbors, stopping at numbered tiles and bombs, which are
// revealed but not expanded. Triggers on tiles which are not covered are
// no-ops.
func (board *Board) ProcessRevealTrigger(coords Coordinates) RevealOutcome {
	if _, ok := board.covered[coords]; !ok {
		log.WithField("coordinates", coords).Debug("ignoring trigger on uncovered tile")
		return RevealOutcome{}
	}
	return board.uncover(coords)
}

// RevealEntity uncovers the covered tile identified by handle, like
// ProcessRevealTrigger. Handles issued by another board are ignored.
func (board *Board) RevealEntity(handle Handle) RevealOutcome {
	if handle.generation != board.generation {
		return RevealOutcome{}
	}

	coords, ok := board.CoordinatesOf(handle)
	if !ok {
		if board.isIssued(handle) {
			// Already revealed
			return RevealOutcome{}
		}
		panic(fmt.Sprintf("failed to find coordinates of %v", handle))
	}

	return board.uncover(coords)
}

func (board *Board) isIssued(handle Handle) bool {
	return uint(handle.index) < board.grid.NumCells()
}

func (board *Board) uncover(start Coordinates) RevealOutcome {
	var outcome RevealOutcome

	var queue deque.Deque
	queue.PushBack(start)
	queued := collections.NewSet(start)

	for queue.Len() > 0 {
		coords := queue.PopFront().(Coordinates)

		handle, ok := board.Reveal(coords)
		if !ok {
			continue
		}

		tile, _ := board.grid.TileAt(coords)
		outcome.Revealed = append(outcome.Revealed, RevealedTile{
			Coordinates: coords,
			Handle:      handle,
			Tile:        tile,
		})

		switch tile.Kind() {
		case BombTile:
			log.WithField("coordinates", coords).Info("Bomb !")
			outcome.HitBomb = true
			board.state = Lost
		case NeighborTile:
			board.revealedSafe()
		case EmptyTile:
			board.revealedSafe()
			for _, neighbor := range board.grid.Neighbors(coords) {
				if _, covered := board.covered[neighbor]; covered && queued.AddIfAbsent(neighbor) {
					queue.PushBack(neighbor)
				}
			}
		}
	}

	log.WithFields(logrus.Fields{
		"start":    start,
		"revealed": len(outcome.Revealed),
		"hitBomb":  outcome.HitBomb,
	}).Debug("uncovered tiles")

	return outcome
}

func (board *Board) revealedSafe() {
	board.remainingSafe--
	if board.remainingSafe == 0 && board.state == Ongoing {
		board.state = Won
	}
}

// SafeStart reveals the first Empty tile in row-major order, so the player's
// first move is never forced onto a bomb. It reports false when the grid has
// no Empty tile.
func (board *Board) SafeStart() (RevealOutcome, bool) {
	for _, coords := range board.CoveredCoordinates() {
		if tile, _ := board.grid.TileAt(coords); tile == Empty {
			log.WithField("coordinates", coords).Debug("safe start")
			return board.ProcessRevealTrigger(coords), true
		}
	}
	log.Debug("no empty tile for safe start")
	return RevealOutcome{}, false
}
