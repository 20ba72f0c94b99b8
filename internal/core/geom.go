// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or ECS) to keep
// game logic pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// AABB is a float axis-aligned bounding box described by its center and
// half extents. All world-space collision in the game goes through it.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB builds a box around center with the given half extents.
func NewAABB(center, half Vec2) AABB {
	return AABB{Center: center, Half: half}
}

// Min returns the top-left corner.
func (b AABB) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the bottom-right corner.
func (b AABB) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b AABB) Intersects(other AABB) bool {
	amin, amax := b.Min(), b.Max()
	bmin, bmax := other.Min(), other.Max()
	if amin.X >= bmax.X || bmin.X >= amax.X {
		return false
	}
	if amin.Y >= bmax.Y || bmin.Y >= amax.Y {
		return false
	}
	return true
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
