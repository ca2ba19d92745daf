package mapcanvas

import "math"

// Rect is an axis-aligned rectangle in map-space coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Pad returns the rectangle grown by p on every side.
// Negative padding shrinks the rectangle.
func (r Rect) Pad(p float64) Rect {
	return Rect{
		X:      r.X - p,
		Y:      r.Y - p,
		Width:  r.Width + 2*p,
		Height: r.Height + 2*p,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// FitScale returns the largest uniform scale at which the rectangle fits
// entirely inside a viewport of the given dimensions:
//
//	scale = min(viewportWidth/Width, viewportHeight/Height)
//
// Returns 1 for an empty rectangle, so callers animating toward the result
// never divide by zero.
func (r Rect) FitScale(viewportWidth, viewportHeight float64) float64 {
	if r.IsEmpty() {
		return 1
	}
	return math.Min(viewportWidth/r.Width, viewportHeight/r.Height)
}

// BoundsOf returns the bounding box of a point set. The zero Rect is
// returned for an empty set.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Centroid returns the arithmetic mean of a point set, used as the label
// anchor for drawn polygons. Returns the zero point for an empty set.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	return c.Div(float64(len(pts)))
}
