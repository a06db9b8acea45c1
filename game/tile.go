package game

import "fmt"

type TileKind int

const (
	EmptyTile TileKind = iota
	NeighborTile
	BombTile
)

func (kind TileKind) String() string {
	switch kind {
	case EmptyTile:
		return "empty"
	case NeighborTile:
		return "neighbor"
	case BombTile:
		return "bomb"
	default:
		return fmt.Sprintf("TileKind(%d)", int(kind))
	}
}

// Tile is the content of a single grid cell. The zero value is Empty, 1..8
// are bomb neighbor counts.
type Tile int8

const (
	Empty Tile = 0
	Bomb  Tile = -1
)

// BombNeighbor returns the tile of a cell touching count bombs. A count of
// zero yields Empty.
func BombNeighbor(count uint8) Tile {
	if count > 8 {
		panic(fmt.Sprintf("invalid bomb neighbor count %d", count))
	}
	return Tile(count)
}

func (tile Tile) IsBomb() bool {
	return tile == Bomb
}

// NeighborCount returns the number of adjacent bombs, or 0 for bombs.
func (tile Tile) NeighborCount() uint8 {
	if tile <= 0 {
		return 0
	}
	return uint8(tile)
}

func (tile Tile) Kind() TileKind {
	switch {
	case tile == Bomb:
		return BombTile
	case tile > 0:
		return NeighborTile
	default:
		return EmptyTile
	}
}

func (tile Tile) String() string {
	switch tile.Kind() {
	case BombTile:
		return "Bomb"
	case NeighborTile:
		return fmt.Sprintf("BombNeighbor(%d)", tile.NeighborCount())
	default:
		return "Empty"
	}
}

// serialize returns the single character used by console dumps
func (tile Tile) serialize() string {
	switch tile.Kind() {
	case BombTile:
		return "*"
	case NeighborTile:
		return fmt.Sprint(tile.NeighborCount())
	default:
		return " "
	}
}
