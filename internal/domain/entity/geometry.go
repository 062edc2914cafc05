package entity

// Point is a position in workspace pixel coordinates.
type Point struct {
	X, Y float64
}

// Along returns the coordinate of p on the given axis.
func (p Point) Along(axis Axis) float64 {
	if axis == AxisHorizontal {
		return p.X
	}
	return p.Y
}

// Size is a measured pixel extent.
type Size struct {
	W, H float64
}

// Rect is a pane box in workspace pixel coordinates.
type Rect struct {
	X, Y float64 // Top-left position relative to the workspace
	W, H float64
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Extent returns the length of the rectangle along axis.
func (r Rect) Extent(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.W
	}
	return r.H
}

// Origin returns the start coordinate of the rectangle along axis.
func (r Rect) Origin(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.X
	}
	return r.Y
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Split divides r along axis, giving size×extent to the first part.
func (r Rect) Split(axis Axis, size float64) (first, second Rect) {
	first, second = r, r
	if axis == AxisHorizontal {
		first.W = r.W * size
		second.X = r.X + first.W
		second.W = r.W - first.W
		return first, second
	}
	first.H = r.H * size
	second.Y = r.Y + first.H
	second.H = r.H - first.H
	return first, second
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
