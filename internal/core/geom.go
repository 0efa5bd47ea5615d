// Package core provides fundamental types and utilities shared by the engine
// and the terminal platform. It has no Bubble Tea dependency so game logic
// stays pure and testable.
package core

// Rect is an axis-aligned bounding box in virtual playfield pixels.
// Bounds are half-open: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether both axis intervals overlap with positive length.
// Rectangles that only share an edge do not intersect, and an empty
// rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [lo, hi].
// If hi < lo the result is lo.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		return lo
	}
	return val
}
