package stripe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rectangle is an axis-aligned region of the world XY plane. Min and Max
// are opposite corners with Min componentwise at or below Max.
type Rectangle struct {
	Min, Max mgl64.Vec2
}

// Rect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func Rect(a, b mgl64.Vec2) Rectangle {
	return Rectangle{
		Min: mgl64.Vec2{math.Min(a[0], b[0]), math.Min(a[1], b[1])},
		Max: mgl64.Vec2{math.Max(a[0], b[0]), math.Max(a[1], b[1])},
	}
}

// RectAround returns the degenerate rectangle containing a single point.
func RectAround(p mgl64.Vec2) Rectangle {
	return Rectangle{Min: p, Max: p}
}

// Width returns the extent along X.
func (r Rectangle) Width() float64 {
	return r.Max[0] - r.Min[0]
}

// Height returns the extent along Y.
func (r Rectangle) Height() float64 {
	return r.Max[1] - r.Min[1]
}

// Empty reports whether the rectangle covers no points. A degenerate
// single-point rectangle is not empty.
func (r Rectangle) Empty() bool {
	return r.Max[0] < r.Min[0] || r.Max[1] < r.Min[1]
}

// Contains returns true if the point is inside the rectangle, borders
// included.
func (r Rectangle) Contains(p mgl64.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// Center returns the rectangle's midpoint.
func (r Rectangle) Center() mgl64.Vec2 {
	return mgl64.Vec2{(r.Min[0] + r.Max[0]) / 2, (r.Min[1] + r.Max[1]) / 2}
}

// Expand grows the rectangle by d on every side. Negative d shrinks it.
func (r Rectangle) Expand(d float64) Rectangle {
	return Rectangle{
		Min: mgl64.Vec2{r.Min[0] - d, r.Min[1] - d},
		Max: mgl64.Vec2{r.Max[0] + d, r.Max[1] + d},
	}
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle contributes nothing.
func (r Rectangle) Union(other Rectangle) Rectangle {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rectangle{
		Min: mgl64.Vec2{math.Min(r.Min[0], other.Min[0]), math.Min(r.Min[1], other.Min[1])},
		Max: mgl64.Vec2{math.Max(r.Max[0], other.Max[0]), math.Max(r.Max[1], other.Max[1])},
	}
}
