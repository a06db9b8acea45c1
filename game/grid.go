package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/they4kman/gosweep/util/collections"
)

// Grid is the bomb and neighbor-count layout of a board. It is built empty,
// has its bombs placed exactly once, and is read-only afterwards.
type Grid struct {
	width, height uint16 // in number of cells
	bombCount     uint16
	cells         [][]Tile

	hasBombs bool
}

func EmptyGrid(width, height uint16) *Grid {
	grid := Grid{
		width:  width,
		height: height,
		cells:  make([][]Tile, height),
	}
	for y := range grid.cells {
		grid.cells[y] = make([]Tile, width)
	}
	return &grid
}

func (grid *Grid) Width() uint16 {
	return grid.width
}

func (grid *Grid) Height() uint16 {
	return grid.height
}

func (grid *Grid) BombCount() uint16 {
	return grid.bombCount
}

func (grid *Grid) NumCells() uint {
	return uint(grid.width) * uint(grid.height)
}

func (grid *Grid) Contains(coords Coordinates) bool {
	return coords.X < grid.width && coords.Y < grid.height
}

func (grid *Grid) TileAt(coords Coordinates) (Tile, bool) {
	if !grid.Contains(coords) {
		return Empty, false
	}
	return grid.cells[coords.Y][coords.X], true
}

// Neighbors returns the coordinates around coords, in a fixed order. Offsets
// that would leave the coordinate range are dropped, but the result may still
// lie outside the grid; check it with Contains before use.
func (grid *Grid) Neighbors(coords Coordinates) []Coordinates {
	neighbors := make([]Coordinates, 0, len(squareDeltas))
	for _, delta := range squareDeltas {
		if neighbor, ok := coords.Offset(delta[0], delta[1]); ok {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (grid *Grid) IsBombAt(coords Coordinates) bool {
	tile, ok := grid.TileAt(coords)
	return ok && tile.IsBomb()
}

// BombCountAt returns the number of bombs around coords, or 0 if coords is
// itself a bomb.
func (grid *Grid) BombCountAt(coords Coordinates) uint8 {
	if grid.IsBombAt(coords) {
		return 0
	}

	count := uint8(0)
	for _, neighbor := range grid.Neighbors(coords) {
		if grid.IsBombAt(neighbor) {
			count++
		}
	}
	return count
}

// SetBombs places count bombs at distinct random cells and computes the
// neighbor counts of every other cell.
func (grid *Grid) SetBombs(rng *rand.Rand, count uint16) error {
	if grid.hasBombs {
		return ErrBombsPlaced
	}
	if uint(count) >= grid.NumCells() {
		return fmt.Errorf("%w: %d bombs do not fit a %dx%d grid",
			ErrInvalidConfiguration, count, grid.width, grid.height)
	}

	for remaining := count; remaining > 0; {
		x, y := rng.Intn(int(grid.width)), rng.Intn(int(grid.height))
		if grid.cells[y][x] == Empty {
			grid.cells[y][x] = Bomb
			remaining--
		}
	}

	grid.finalize(count)
	return nil
}

// SetBombsAt places bombs at the given cells, for replaying a known layout.
func (grid *Grid) SetBombsAt(bombs ...Coordinates) error {
	if grid.hasBombs {
		return ErrBombsPlaced
	}
	if uint(len(bombs)) >= grid.NumCells() {
		return fmt.Errorf("%w: %d bombs do not fit a %dx%d grid",
			ErrInvalidConfiguration, len(bombs), grid.width, grid.height)
	}

	placed := make(collections.Set[Coordinates], len(bombs))
	for _, coords := range bombs {
		if !grid.Contains(coords) {
			return fmt.Errorf("%w: bomb %v outside %dx%d grid",
				ErrInvalidConfiguration, coords, grid.width, grid.height)
		}
		if !placed.AddIfAbsent(coords) {
			return fmt.Errorf("%w: duplicate bomb at %v", ErrInvalidConfiguration, coords)
		}
	}

	for coords := range placed {
		grid.cells[coords.Y][coords.X] = Bomb
	}

	grid.finalize(uint16(len(bombs)))
	return nil
}

func (grid *Grid) finalize(count uint16) {
	grid.bombCount = count
	grid.hasBombs = true

	for y := uint16(0); y < grid.height; y++ {
		for x := uint16(0); x < grid.width; x++ {
			coords := Coordinates{X: x, Y: y}
			if grid.IsBombAt(coords) {
				continue
			}
			grid.cells[y][x] = BombNeighbor(grid.BombCountAt(coords))
		}
	}
}

// ConsoleOutput renders the grid with the top row first.
func (grid *Grid) ConsoleOutput() string {
	return grid.render(func(coords Coordinates, tile Tile) string {
		return tile.serialize()
	})
}

func (grid *Grid) render(cellString func(Coordinates, Tile) string) string {
	var out strings.Builder

	fmt.Fprintf(&out, "Map (%d, %d) with %d bombs:\n", grid.width, grid.height, grid.bombCount)
	line := strings.Repeat("-", int(grid.width)+2)
	out.WriteString(line)
	out.WriteString("\n")

	for y := int(grid.height) - 1; y >= 0; y-- {
		out.WriteString("|")
		for x, tile := range grid.cells[y] {
			out.WriteString(cellString(Coordinates{X: uint16(x), Y: uint16(y)}, tile))
		}
		out.WriteString("|\n")
	}

	out.WriteString(line)
	return out.String()
}
