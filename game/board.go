package game

import (
	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
)

type BoardState int

const (
	Ongoing BoardState = iota
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "ongoing"
	}
}

// View describes the host's viewport: its size in screen units, and the world
// position shown at its centre.
type View struct {
	Size   pixel.Vec
	Offset pixel.Vec
}

// Board pairs a Grid with its placement in world space and tracks which tiles
// are still covered. A Board must only be driven from one goroutine.
type Board struct {
	grid        *Grid
	bounds      Bounds2
	tileSize    float64
	tilePadding float64

	generation uint32
	covered    map[Coordinates]Handle

	state         BoardState
	remainingSafe uint
}

// NewBoard covers every cell of grid. Bombs must already be placed.
func NewBoard(grid *Grid, bounds Bounds2, tileSize float64) *Board {
	board := Board{
		grid:          grid,
		bounds:        bounds,
		tileSize:      tileSize,
		generation:    nextGeneration(),
		covered:       make(map[Coordinates]Handle, grid.NumCells()),
		state:         Ongoing,
		remainingSafe: grid.NumCells() - uint(grid.BombCount()),
	}

	index := uint32(0)
	for y := uint16(0); y < grid.height; y++ {
		for x := uint16(0); x < grid.width; x++ {
			board.covered[Coordinates{X: x, Y: y}] = Handle{
				generation: board.generation,
				index:      index,
			}
			index++
		}
	}

	log.WithFields(logrus.Fields{
		"width":    grid.width,
		"height":   grid.height,
		"bombs":    grid.bombCount,
		"tileSize": tileSize,
		"bounds":   bounds.Rect(),
	}).Debug("created board")

	return &board
}

func (board *Board) Grid() *Grid {
	return board.grid
}

func (board *Board) Bounds() Bounds2 {
	return board.bounds
}

func (board *Board) TileSize() float64 {
	return board.tileSize
}

// TileSpriteSize is the drawn size of a tile, once padding is taken off
func (board *Board) TileSpriteSize() float64 {
	return board.tileSize - board.tilePadding
}

func (board *Board) State() BoardState {
	return board.state
}

// Remaining returns the number of covered tiles which are not bombs
func (board *Board) Remaining() uint {
	return board.remainingSafe
}

// WorldToCell translates a position in screen space to the cell under it.
// The position is recentred on the middle of the view, then panned by the
// view offset.
func (board *Board) WorldToCell(view View, position pixel.Vec) (Coordinates, bool) {
	world := position.Sub(view.Size.Scaled(0.5)).Add(view.Offset)
	if !board.bounds.Contains(world) {
		return Coordinates{}, false
	}

	local := world.Sub(board.bounds.Position)
	x, y := local.X/board.tileSize, local.Y/board.tileSize
	if x >= float64(board.grid.width) || y >= float64(board.grid.height) {
		// Far edge of the bounds
		return Coordinates{}, false
	}

	return Coordinates{X: uint16(x), Y: uint16(y)}, true
}

// CellCenter returns the world position of the middle of a cell
func (board *Board) CellCenter(coords Coordinates) pixel.Vec {
	return board.bounds.Position.Add(pixel.V(
		(float64(coords.X)+0.5)*board.tileSize,
		(float64(coords.Y)+0.5)*board.tileSize,
	))
}

func (board *Board) CoveredEntityAt(coords Coordinates) (Handle, bool) {
	handle, ok := board.covered[coords]
	return handle, ok
}

// Reveal uncovers the tile at coords, returning its handle. Revealing a tile
// which is not covered does nothing. The game state is only tracked by
// ProcessRevealTrigger.
func (board *Board) Reveal(coords Coordinates) (Handle, bool) {
	handle, ok := board.covered[coords]
	if !ok {
		return Handle{}, false
	}
	delete(board.covered, coords)
	return handle, true
}

// AdjacentCovered returns the handles of covered tiles around coords, in
// Grid.Neighbors order
func (board *Board) AdjacentCovered(coords Coordinates) []Handle {
	var handles []Handle
	for _, neighbor := range board.grid.Neighbors(coords) {
		if handle, ok := board.covered[neighbor]; ok {
			handles = append(handles, handle)
		}
	}
	return handles
}

func (board *Board) CoordinatesOf(handle Handle) (Coordinates, bool) {
	for coords, covered := range board.covered {
		if covered == handle {
			return coords, true
		}
	}
	return Coordinates{}, false
}

// CoveredCoordinates lists the covered cells in row-major order
func (board *Board) CoveredCoordinates() []Coordinates {
	coordinates := make([]Coordinates, 0, len(board.covered))
	for y := uint16(0); y < board.grid.height; y++ {
		for x := uint16(0); x < board.grid.width; x++ {
			coords := Coordinates{X: x, Y: y}
			if _, ok := board.covered[coords]; ok {
				coordinates = append(coordinates, coords)
			}
		}
	}
	return coordinates
}

func (board *Board) NumCovered() int {
	return len(board.covered)
}

// ConsoleOutput renders the board as the player sees it: covered tiles as #
func (board *Board) ConsoleOutput() string {
	return board.grid.render(func(coords Coordinates, tile Tile) string {
		if _, ok := board.covered[coords]; ok {
			return "#"
		}
		return tile.serialize()
	})
}
