// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or offset in world units. Y grows upward, 0 is the floor.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Aabb is an axis-aligned bounding box stored as center and half extents.
type Aabb struct {
	Center Vec2
	Half   Vec2
}

// NewAabb creates a box centered at center with the given half extents.
func NewAabb(center, half Vec2) Aabb {
	return Aabb{Center: center, Half: half}
}

// Min returns the lower-left corner.
func (a Aabb) Min() Vec2 {
	return a.Center.Sub(a.Half)
}

// Max returns the upper-right corner.
func (a Aabb) Max() Vec2 {
	return a.Center.Add(a.Half)
}

// ClosestPoint returns the point inside the box nearest to p.
func (a Aabb) ClosestPoint(p Vec2) Vec2 {
	lo, hi := a.Min(), a.Max()
	return Vec2{
		X: ClampF(p.X, lo.X, hi.X),
		Y: ClampF(p.Y, lo.Y, hi.Y),
	}
}

// Circle is a bounding circle.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle creates a circle with the given center and radius.
func NewCircle(center Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Intersects reports whether the circle overlaps the box.
// The circle center is clamped into the box and the squared distance to
// that point is compared against the squared radius. Touching counts.
func (c Circle) Intersects(box Aabb) bool {
	d := c.Center.Sub(box.ClosestPoint(c.Center))
	return d.LengthSquared() <= c.Radius*c.Radius
}

// Rect represents an integer cell rectangle on a Screen.
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
