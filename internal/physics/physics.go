// Package physics provides axis-aligned collision boxes.
package physics

// Box is an axis-aligned rectangle given by its inclusive corner coordinates.
type Box struct {
	X1, Y1 float64 // Top-left
	X2, Y2 float64 // Bottom-right
}

// Rect creates the box covering a w*h rectangle at (x, y).
// The far edges are x+w and y+h, matching the sprite-space convention
// where touching at one pixel counts as an overlap.
func Rect(x, y, w, h float64) Box {
	return Box{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Overlaps reports whether two boxes intersect. Shared edges count.
func (b Box) Overlaps(o Box) bool {
	return b.X1 <= o.X2 && b.X2 >= o.X1 && b.Y1 <= o.Y2 && b.Y2 >= o.Y1
}

// Inset shrinks the box by n on every side.
func (b Box) Inset(n float64) Box {
	return Box{X1: b.X1 + n, Y1: b.Y1 + n, X2: b.X2 - n, Y2: b.Y2 - n}
}
