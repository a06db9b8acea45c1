package game

import "github.com/faiface/pixel"

// Bounds2 is an axis-aligned rectangle in world space.
type Bounds2 struct {
	Position pixel.Vec
	Size     pixel.Vec
}

func (bounds Bounds2) Rect() pixel.Rect {
	return pixel.R(
		bounds.Position.X, bounds.Position.Y,
		bounds.Position.X+bounds.Size.X, bounds.Position.Y+bounds.Size.Y,
	)
}

// Contains checks whether point lies within the bounds, edges included
func (bounds Bounds2) Contains(point pixel.Vec) bool {
	return bounds.Rect().Contains(point)
}
