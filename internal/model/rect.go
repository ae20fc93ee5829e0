package model

import "math"

// Point represents a 2D coordinate in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rectangle is an axis-aligned rectangle in pixel coordinates.
// It is a plain value type: copying produces an independent rectangle.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRectangle returns a rectangle at (x, y) with the given size.
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate one past the right edge.
func (r Rectangle) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rectangle) Bottom() int {
	return r.Y + r.Height
}

// Area returns the rectangle area in square pixels.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// Center returns the center point, rounding down on odd sizes.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the half-open interval
// [x, x+width) x [y, y+height). Two rectangles sharing an edge never
// both contain a point on that edge.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Overlaps reports whether the two rectangles share any interior area.
// Touching edges do not count as overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// ContainsRect reports whether inner lies entirely within r.
func (r Rectangle) ContainsRect(inner Rectangle) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// ClampInside returns a copy of r with its position forced inside outer.
// The size is never altered, so a rectangle larger than outer ends up
// centered-ish past the far edge rather than shrunk.
func (r Rectangle) ClampInside(outer Rectangle) Rectangle {
	r.X = clamp(r.X, outer.X, outer.X+outer.Width-r.Width)
	r.Y = clamp(r.Y, outer.Y, outer.Y+outer.Height-r.Height)
	return r
}

// MoveToward returns the top-left position for inner that brings its center
// as close as possible to p while inner stays fully within outer. Each axis
// clamps independently.
func MoveToward(inner, outer Rectangle, p Point) Point {
	return Point{
		X: clamp(p.X-inner.Width/2, outer.X, outer.X+outer.Width-inner.Width),
		Y: clamp(p.Y-inner.Height/2, outer.Y, outer.Y+outer.Height-inner.Height),
	}
}

// MoveAway returns the top-left position for inner that pushes it as far
// from p as outer allows, the mirror of MoveToward on each axis.
func MoveAway(inner, outer Rectangle, p Point) Point {
	toward := MoveToward(inner, outer, p)
	return Point{
		X: outer.X + (outer.X + outer.Width - inner.Width) - toward.X,
		Y: outer.Y + (outer.Y + outer.Height - inner.Height) - toward.Y,
	}
}

// CenterDistance returns the Euclidean distance between two points.
func CenterDistance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		// Degenerate range (inner larger than outer): split the difference.
		return lo + (hi-lo)/2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
