package stripe

import "github.com/go-gl/mathgl/mgl64"

// TerrainHeights is the result of a coarse terrain elevation query.
type TerrainHeights struct {
	// Minimum is the lowest approximate terrain height in the queried
	// region.
	Minimum float64
	// Maximum is the highest approximate terrain height in the queried
	// region.
	Maximum float64
}

// TerrainApproximator answers coarse min/max terrain elevation queries over
// precomputed data. Queries are synchronous; implementations must not block
// on I/O.
//
// The updater consults it in exactly one place: replacing a clamped
// extrusion height with the terrain minimum under the shape.
type TerrainApproximator interface {
	// MinMaxHeights returns the approximate terrain extremes over r.
	MinMaxHeights(r Rectangle) TerrainHeights
}

// TerrainOffsetProperty derives the render-time vertical offset for shapes
// whose heights are relative to the terrain: the offset is the terrain
// minimum under the shape's center, as a vector along Z.
type TerrainOffsetProperty struct {
	// Terrain answers the height queries. A nil Terrain leaves the
	// property undefined.
	Terrain TerrainApproximator
	// Center locates the reference point on the shape.
	Center Property[mgl64.Vec3]
}

// At samples the offset at t.
func (p *TerrainOffsetProperty) At(t Time) (mgl64.Vec3, bool) {
	if p.Terrain == nil {
		return mgl64.Vec3{}, false
	}
	c, ok := ValueOrUndefined(p.Center, t)
	if !ok {
		return mgl64.Vec3{}, false
	}
	h := p.Terrain.MinMaxHeights(RectAround(mgl64.Vec2{c[0], c[1]}))
	return mgl64.Vec3{0, 0, h.Minimum}, true
}

// IsConstant reports whether the offset never changes; with a fixed terrain
// table that reduces to whether the center is constant.
func (p *TerrainOffsetProperty) IsConstant() bool {
	return IsConstant(p.Center)
}
