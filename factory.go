package stripe

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/groundgeom/stripe/internal/tessellate"
)

// GeometryFactory turns resolved geometry options into meshes.
type GeometryFactory interface {
	// ComputeBoundingRectangle returns the XY extent the options cover,
	// including the across-track width. It must be cheap: the updater
	// calls it during resolution, before any mesh exists.
	ComputeBoundingRectangle(opts *GeometryOptions) Rectangle

	// Build tessellates the options into a triangle mesh.
	Build(opts *GeometryOptions) (*Mesh, error)
}

// FactoryOption configures the corridor factory during creation.
type FactoryOption func(*factoryOptions)

// factoryOptions holds optional configuration for the corridor factory.
type factoryOptions struct {
	miterLimit float64
}

// defaultFactoryOptions returns the default factory configuration.
func defaultFactoryOptions() factoryOptions {
	return factoryOptions{miterLimit: 4}
}

// WithMiterLimit caps how far a mitered corner may extend, as a multiple of
// the half width. Corners sharper than the limit fall back to bevels.
// Limits below 1 are ignored.
func WithMiterLimit(limit float64) FactoryOption {
	return func(o *factoryOptions) {
		if limit >= 1 {
			o.miterLimit = limit
		}
	}
}

// NewGeometryFactory returns the built-in corridor tessellator.
func NewGeometryFactory(opts ...FactoryOption) GeometryFactory {
	fo := defaultFactoryOptions()
	for _, o := range opts {
		o(&fo)
	}
	return &corridorFactory{opts: fo}
}

// corridorFactory implements GeometryFactory on the corridor tessellator.
type corridorFactory struct {
	opts factoryOptions
}

// ComputeBoundingRectangle returns the centerline bounds inflated by half
// the width. Centerlines with interior corners inflate by the miter
// allowance instead, which covers the farthest point any corner can
// produce. An empty centerline yields the zero Rectangle.
func (f *corridorFactory) ComputeBoundingRectangle(opts *GeometryOptions) Rectangle {
	if len(opts.Positions) == 0 {
		return Rectangle{}
	}
	p0 := opts.Positions[0]
	r := RectAround(mgl64.Vec2{p0[0], p0[1]})
	for _, p := range opts.Positions[1:] {
		r = r.Union(RectAround(mgl64.Vec2{p[0], p[1]}))
	}
	half := opts.Width / 2
	if len(opts.Positions) > 2 {
		half *= f.opts.miterLimit
	}
	return r.Expand(half)
}

// Build implements GeometryFactory.
func (f *corridorFactory) Build(opts *GeometryOptions) (*Mesh, error) {
	res, err := tessellate.Corridor(tessellate.Options{
		Centerline:     opts.Positions,
		Width:          opts.Width,
		Join:           joinFor(opts.CornerType),
		Granularity:    opts.Granularity,
		MiterLimit:     f.opts.miterLimit,
		Height:         opts.Height,
		ExtrudedHeight: opts.ExtrudedHeight,
		Extruded:       opts.HasExtrudedHeight,
		Normals:        opts.Layout.Normal,
		TexCoords:      opts.Layout.TexCoord,
	})
	if err != nil {
		return nil, err
	}
	return &Mesh{
		Layout:   opts.Layout,
		Vertices: interleave(opts.Layout, res),
		Indices:  res.Indices,
		Bounds:   Rectangle{Min: res.Min, Max: res.Max},
	}, nil
}

// joinFor maps the descriptor corner style onto the tessellator join.
func joinFor(c CornerType) tessellate.Join {
	switch c {
	case CornerMitered:
		return tessellate.JoinMitered
	case CornerBeveled:
		return tessellate.JoinBeveled
	default:
		return tessellate.JoinRounded
	}
}

// interleave packs the tessellation result into the layout's buffer order:
// position, then normal and texcoord when the layout carries them.
func interleave(l VertexLayout, r *tessellate.Result) []float32 {
	out := make([]float32, 0, len(r.Positions)*l.FloatsPerVertex())
	for i, p := range r.Positions {
		out = append(out, float32(p[0]), float32(p[1]), float32(p[2]))
		if l.Normal {
			n := mgl64.Vec3{0, 0, 1}
			if i < len(r.Normals) {
				n = r.Normals[i]
			}
			out = append(out, float32(n[0]), float32(n[1]), float32(n[2]))
		}
		if l.TexCoord {
			var uv mgl64.Vec2
			if i < len(r.TexCoords) {
				uv = r.TexCoords[i]
			}
			out = append(out, float32(uv[0]), float32(uv[1]))
		}
	}
	return out
}
