// Package core provides fundamental types and utilities for the aimlab platform.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in play-area pixel units.
// Targets live in this space; the platform maps cells to pixels.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if the point lies inside the box.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Within reports whether the whole box fits inside [0,w] x [0,h].
func (r RectF) Within(w, h float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Bottom() <= h
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
