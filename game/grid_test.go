package game

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func countBombs(grid *Grid) int {
	count := 0
	for y := uint16(0); y < grid.Height(); y++ {
		for x := uint16(0); x < grid.Width(); x++ {
			if grid.IsBombAt(Coordinates{x, y}) {
				count++
			}
		}
	}
	return count
}

// bruteForceCount counts bombs around (x, y) with plain integer arithmetic
func bruteForceCount(grid *Grid, x, y int) uint8 {
	count := uint8(0)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= int(grid.Width()) || ny >= int(grid.Height()) {
				continue
			}
			if grid.cells[ny][nx].IsBomb() {
				count++
			}
		}
	}
	return count
}

func TestEmptyGrid(t *testing.T) {
	grid := EmptyGrid(4, 3)

	if grid.Width() != 4 || grid.Height() != 3 || grid.BombCount() != 0 {
		t.Fatalf("EmptyGrid(4, 3) = %dx%d with %d bombs", grid.Width(), grid.Height(), grid.BombCount())
	}
	if len(grid.cells) != 3 {
		t.Fatalf("got %d rows, want 3", len(grid.cells))
	}
	for y, row := range grid.cells {
		if len(row) != 4 {
			t.Fatalf("row %d has %d cells, want 4", y, len(row))
		}
		for x, tile := range row {
			if tile != Empty {
				t.Errorf("tile (%d, %d) = %v, want Empty", x, y, tile)
			}
		}
	}
}

func TestSetBombs(t *testing.T) {
	tests := []struct {
		width, height, bombs uint16
	}{
		{1, 2, 1},
		{3, 3, 1},
		{9, 9, 10},
		{16, 16, 40},
		{30, 16, 99},
		{5, 5, 24},
	}

	for seed := int64(1); seed <= 5; seed++ {
		for _, test := range tests {
			grid := EmptyGrid(test.width, test.height)
			if err := grid.SetBombs(rand.New(rand.NewSource(seed)), test.bombs); err != nil {
				t.Fatalf("SetBombs(%d) on %dx%d: %v", test.bombs, test.width, test.height, err)
			}

			if n := countBombs(grid); n != int(test.bombs) {
				t.Errorf("%dx%d seed %d: got %d bombs, want %d", test.width, test.height, seed, n, test.bombs)
			}
			if grid.BombCount() != test.bombs {
				t.Errorf("BombCount() = %d, want %d", grid.BombCount(), test.bombs)
			}

			for y, row := range grid.cells {
				for x, tile := range row {
					if tile.IsBomb() {
						continue
					}
					if want := bruteForceCount(grid, x, y); tile.NeighborCount() != want {
						t.Errorf("%dx%d seed %d: tile (%d, %d) = %v, want %d neighbors",
							test.width, test.height, seed, x, y, tile, want)
					}
				}
			}
		}
	}
}

func TestSetBombsRejectsFullGrid(t *testing.T) {
	tests := []struct {
		width, height, bombs uint16
	}{
		{3, 3, 9},
		{3, 3, 10},
		{1, 1, 1},
		{0, 0, 0},
		{0, 5, 0},
	}

	for _, test := range tests {
		grid := EmptyGrid(test.width, test.height)
		err := grid.SetBombs(rand.New(rand.NewSource(1)), test.bombs)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("SetBombs(%d) on %dx%d = %v, want ErrInvalidConfiguration",
				test.bombs, test.width, test.height, err)
		}
	}
}

func TestSetBombsOnlyOnce(t *testing.T) {
	grid := EmptyGrid(4, 4)
	if err := grid.SetBombs(rand.New(rand.NewSource(1)), 3); err != nil {
		t.Fatal(err)
	}

	if err := grid.SetBombs(rand.New(rand.NewSource(1)), 3); !errors.Is(err, ErrBombsPlaced) {
		t.Errorf("second SetBombs = %v, want ErrBombsPlaced", err)
	}
	if err := grid.SetBombsAt(Coordinates{0, 0}); !errors.Is(err, ErrBombsPlaced) {
		t.Errorf("SetBombsAt after SetBombs = %v, want ErrBombsPlaced", err)
	}
}

func TestSetBombsAtRejectsInvalidCells(t *testing.T) {
	tests := [][]Coordinates{
		{{3, 0}},
		{{0, 3}},
		{{1, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}

	for _, bombs := range tests {
		grid := EmptyGrid(3, 3)
		if err := grid.SetBombsAt(bombs...); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("SetBombsAt(%v) = %v, want ErrInvalidConfiguration", bombs, err)
		}
	}
}

func TestSingleCentreBomb(t *testing.T) {
	grid := EmptyGrid(3, 3)
	if err := grid.SetBombsAt(Coordinates{1, 1}); err != nil {
		t.Fatal(err)
	}

	for y := uint16(0); y < 3; y++ {
		for x := uint16(0); x < 3; x++ {
			coords := Coordinates{x, y}
			tile, ok := grid.TileAt(coords)
			if !ok {
				t.Fatalf("TileAt(%v) missing", coords)
			}

			if coords == (Coordinates{1, 1}) {
				if tile != Bomb {
					t.Errorf("tile %v = %v, want Bomb", coords, tile)
				}
				if count := grid.BombCountAt(coords); count != 0 {
					t.Errorf("BombCountAt(%v) = %d on a bomb, want 0", coords, count)
				}
				continue
			}

			if tile != BombNeighbor(1) {
				t.Errorf("tile %v = %v, want BombNeighbor(1)", coords, tile)
			}
			if count := grid.BombCountAt(coords); count != 1 {
				t.Errorf("BombCountAt(%v) = %d, want 1", coords, count)
			}
		}
	}
}

func TestIsBombAtOutsideGrid(t *testing.T) {
	grid := EmptyGrid(2, 2)
	if err := grid.SetBombsAt(Coordinates{1, 1}); err != nil {
		t.Fatal(err)
	}

	for _, coords := range []Coordinates{{2, 1}, {1, 2}, {math.MaxUint16, math.MaxUint16}} {
		if grid.IsBombAt(coords) {
			t.Errorf("IsBombAt(%v) = true outside the grid", coords)
		}
		if _, ok := grid.TileAt(coords); ok {
			t.Errorf("TileAt(%v) found a tile outside the grid", coords)
		}
	}
}

func TestNeighbors(t *testing.T) {
	grid := EmptyGrid(10, 10)

	tests := []struct {
		coords Coordinates
		want   []Coordinates
	}{
		{
			Coordinates{5, 5},
			[]Coordinates{{4, 4}, {5, 4}, {6, 4}, {4, 5}, {6, 5}, {4, 6}, {5, 6}, {6, 6}},
		},
		{
			Coordinates{0, 0},
			[]Coordinates{{1, 0}, {0, 1}, {1, 1}},
		},
		{
			// Outside the grid, but still offset without wrapping
			Coordinates{math.MaxUint16, math.MaxUint16},
			[]Coordinates{
				{math.MaxUint16 - 1, math.MaxUint16 - 1},
				{math.MaxUint16, math.MaxUint16 - 1},
				{math.MaxUint16 - 1, math.MaxUint16},
			},
		},
	}

	for _, test := range tests {
		if got := grid.Neighbors(test.coords); !reflect.DeepEqual(got, test.want) {
			t.Errorf("Neighbors(%v) = %v, want %v", test.coords, got, test.want)
		}
	}
}

func TestGridConsoleOutput(t *testing.T) {
	grid := EmptyGrid(3, 2)
	if err := grid.SetBombsAt(Coordinates{0, 0}); err != nil {
		t.Fatal(err)
	}

	want := "Map (3, 2) with 1 bombs:\n" +
		"-----\n" +
		"|11 |\n" +
		"|*1 |\n" +
		"-----"
	if got := grid.ConsoleOutput(); got != want {
		t.Errorf("ConsoleOutput() =\n%s\nwant\n%s", got, want)
	}
}
