// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Shape is anything with an axis-aligned bounding box in world space.
type Shape interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
}

// Intersects reports whether the bounding boxes of a and b overlap.
// Touching edges count as an overlap.
func Intersects(a, b Shape) bool {
	return a.Right() >= b.Left() && a.Left() <= b.Right() &&
		a.Bottom() >= b.Top() && a.Top() <= b.Bottom()
}

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rectangle is a world-space rectangle positioned by its center.
type Rectangle struct {
	X, Y float64 // Center
	W, H float64
}

// Left returns the x-coordinate of the left edge.
func (r Rectangle) Left() float64 { return r.X - r.W/2 }

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.X + r.W/2 }

// Top returns the y-coordinate of the top edge.
func (r Rectangle) Top() float64 { return r.Y - r.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 { return r.Y + r.H/2 }

// Move translates the rectangle by d.
func (r *Rectangle) Move(d Vec2) {
	r.X += d.X
	r.Y += d.Y
}

// Circle is a world-space circle positioned by its center.
// Collision treats it as its bounding square.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

func (c Circle) Left() float64   { return c.X - c.R }
func (c Circle) Right() float64  { return c.X + c.R }
func (c Circle) Top() float64    { return c.Y - c.R }
func (c Circle) Bottom() float64 { return c.Y + c.R }

// Move translates the circle by d.
func (c *Circle) Move(d Vec2) {
	c.X += d.X
	c.Y += d.Y
}

// Rect represents an axis-aligned box of screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
