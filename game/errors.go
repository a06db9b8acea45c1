package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be set up with
	// the requested dimensions, bomb count or tile sizing.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrBombsPlaced is returned when bombs are placed twice on one grid.
	ErrBombsPlaced = errors.New("bombs already placed")
)
