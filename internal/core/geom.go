// Package core holds the types shared by the game and its front ends: the
// colour screen buffer, abstract input actions, runtime settings and level
// results. It imports no UI or storage packages.
package core

import "math"

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ScrollOffset returns the first world column (or row) shown by a view of
// size view that keeps focus centred, clamped so the view never scrolls
// past the edges of a world of size world. A world smaller than the view
// gets a negative offset that centres it.
func ScrollOffset(focus float64, view, world int) int {
	if world <= view {
		return -(view - world) / 2
	}
	start := int(math.Floor(focus - float64(view)/2))
	return Clamp(start, 0, world-view)
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
