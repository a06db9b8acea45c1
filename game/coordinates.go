package game

import (
	"fmt"
	"math"
)

// Coordinates address a grid cell. Y grows upward in board space.
type Coordinates struct {
	X, Y uint16
}

func (coords Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", coords.X, coords.Y)
}

// Offset moves the coordinates by a signed delta. It reports false, rather
// than wrapping around, when either axis would leave the uint16 range.
func (coords Coordinates) Offset(dx, dy int8) (Coordinates, bool) {
	x := int(coords.X) + int(dx)
	y := int(coords.Y) + int(dy)
	if x < 0 || y < 0 || x > math.MaxUint16 || y > math.MaxUint16 {
		return Coordinates{}, false
	}
	return Coordinates{X: uint16(x), Y: uint16(y)}, true
}

// Delta coordinates for all 8 square neighbors
var squareDeltas = [8][2]int8{
	{-1, -1},
	{0, -1},
	{1, -1},
	{-1, 0},
	{1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
}
