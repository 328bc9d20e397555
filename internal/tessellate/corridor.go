// Package tessellate converts corridor descriptions into triangle meshes.
//
// A corridor is the region swept by a fixed width centered on a polyline.
// The tessellator offsets the centerline to both sides and bridges the two
// offset rails with triangles:
//   - The right rail runs forward along one side of the centerline.
//   - The left rail runs forward along the other.
//   - Interior corners get a miter, bevel, or arc on the outer rail and a
//     single miter point on the inner rail.
//   - A two-pointer sweep bridges the rails, always advancing the shorter
//     crossing diagonal.
//
// Extruded corridors add a mirrored bottom surface and flat-shaded walls
// around the boundary ring, producing a closed volume.
package tessellate

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Join specifies the shape of corridor corners.
type Join int

const (
	// JoinRounded sweeps an arc around the outside of each corner.
	JoinRounded Join = iota
	// JoinMitered extends the outside edges until they meet.
	JoinMitered
	// JoinBeveled connects the outside edges with a single chord.
	JoinBeveled
)

var (
	// ErrTooFewPoints reports a centerline with fewer than two distinct points.
	ErrTooFewPoints = errors.New("tessellate: centerline needs at least two distinct points")
	// ErrBadWidth reports a width that is not a positive finite number.
	ErrBadWidth = errors.New("tessellate: width must be a positive finite number")
)

const (
	// defaultGranularity is one degree, the descriptor default.
	defaultGranularity = math.Pi / 180
	// minGranularity bounds the number of arc points on a rounded corner.
	minGranularity = 1e-4
	// defaultMiterLimit caps miter points at four half widths.
	defaultMiterLimit = 4
)

// Options describes one corridor to tessellate.
type Options struct {
	// Centerline is the path the corridor follows. Only X and Y shape the
	// corridor; Z is ignored in favor of Height and ExtrudedHeight.
	Centerline []mgl64.Vec3
	// Width is the total across-track width.
	Width float64
	// Join selects the corner treatment.
	Join Join
	// Granularity is the angular step between arc points on rounded
	// corners, in radians. Values that are not positive fall back to the
	// default of one degree.
	Granularity float64
	// MiterLimit caps how far miter points extend, as a multiple of the
	// half width. Values below 1 fall back to the default of 4.
	MiterLimit float64
	// Height is the surface height.
	Height float64
	// ExtrudedHeight is the second surface height when Extruded is set.
	ExtrudedHeight float64
	// Extruded requests a closed volume between Height and ExtrudedHeight.
	Extruded bool
	// Normals requests per-vertex normals in the result.
	Normals bool
	// TexCoords requests per-vertex texture coordinates in the result.
	TexCoords bool
}

// Result holds one tessellated corridor.
type Result struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3 // empty unless Options.Normals
	TexCoords []mgl64.Vec2 // empty unless Options.TexCoords
	Indices   []uint32
	Min, Max  mgl64.Vec2 // XY bounds over the generated positions
}

// Corridor tessellates the corridor described by o.
func Corridor(o Options) (*Result, error) {
	center := dedupe(o.Centerline)
	if len(center) < 2 {
		return nil, ErrTooFewPoints
	}
	if !(o.Width > 0) || math.IsInf(o.Width, 0) {
		return nil, ErrBadWidth
	}

	b := &builder{
		opts:        o,
		granularity: o.Granularity,
		miterLimit:  o.MiterLimit,
		halfWidth:   o.Width / 2,
		min:         mgl64.Vec2{math.Inf(1), math.Inf(1)},
		max:         mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
	}
	if !(b.granularity > 0) {
		b.granularity = defaultGranularity
	}
	if b.granularity < minGranularity {
		b.granularity = minGranularity
	}
	if !(b.miterLimit >= 1) {
		b.miterLimit = defaultMiterLimit
	}

	right, left := b.rails(center)

	if o.Extruded && o.Height != o.ExtrudedHeight {
		top := math.Max(o.Height, o.ExtrudedHeight)
		bottom := math.Min(o.Height, o.ExtrudedHeight)
		b.emitSurface(right, left, top, true)
		b.emitSurface(right, left, bottom, false)
		b.emitWalls(right, left, bottom, top)
	} else {
		b.emitSurface(right, left, o.Height, true)
	}

	return &Result{
		Positions: b.positions,
		Normals:   b.normals,
		TexCoords: b.texcoords,
		Indices:   b.indices,
		Min:       b.min,
		Max:       b.max,
	}, nil
}

// railPoint is one vertex on an offset rail, tagged with its normalized arc
// length along the centerline for texturing.
type railPoint struct {
	pos mgl64.Vec2
	u   float64
}

// builder accumulates mesh data during tessellation.
type builder struct {
	opts        Options
	granularity float64
	miterLimit  float64
	halfWidth   float64

	positions []mgl64.Vec3
	normals   []mgl64.Vec3
	texcoords []mgl64.Vec2
	indices   []uint32

	min, max mgl64.Vec2
}

// rails builds the right and left offset polylines. Both run forward along
// the centerline; corner treatment depends on which side is outside the turn.
func (b *builder) rails(center []mgl64.Vec2) (right, left []railPoint) {
	n := len(center)

	// Unit direction and unit left normal per segment, plus the normalized
	// arc length at each centerline vertex.
	dirs := make([]mgl64.Vec2, n-1)
	norms := make([]mgl64.Vec2, n-1)
	arc := make([]float64, n)
	total := 0.0
	for i := 0; i < n-1; i++ {
		seg := center[i+1].Sub(center[i])
		length := seg.Len()
		dirs[i] = seg.Mul(1 / length)
		norms[i] = perp(dirs[i])
		total += length
		arc[i+1] = total
	}
	for i := range arc {
		arc[i] /= total
	}

	hw := b.halfWidth
	right = append(right, railPoint{center[0].Sub(norms[0].Mul(hw)), 0})
	left = append(left, railPoint{center[0].Add(norms[0].Mul(hw)), 0})

	for i := 1; i < n-1; i++ {
		right, left = b.corner(right, left, center[i], norms[i-1], norms[i], dirs[i-1], dirs[i], arc[i])
	}

	right = append(right, railPoint{center[n-1].Sub(norms[n-2].Mul(hw)), 1})
	left = append(left, railPoint{center[n-1].Add(norms[n-2].Mul(hw)), 1})
	return right, left
}

// corner appends the rail points for one interior centerline vertex. The
// inner rail gets a single miter point, clamped to the miter limit so sharp
// corners stay near the centerline. The outer rail follows the join style.
func (b *builder) corner(right, left []railPoint, p, n0, n1, d0, d1 mgl64.Vec2, u float64) ([]railPoint, []railPoint) {
	hw := b.halfWidth
	cr := cross(d0, d1)
	dot := d0.Dot(d1)

	// Near-collinear segments need no corner shaping.
	if dot > 0 && math.Abs(cr) < 1e-10 {
		right = append(right, railPoint{p.Sub(n0.Mul(hw)), u})
		left = append(left, railPoint{p.Add(n0.Mul(hw)), u})
		return right, left
	}

	// A doubled-back centerline has no miter direction. Both rails get
	// plain offset points.
	sum := n0.Add(n1)
	if sum.Len() < 1e-10 {
		right = append(right, railPoint{p.Sub(n0.Mul(hw)), u}, railPoint{p.Sub(n1.Mul(hw)), u})
		left = append(left, railPoint{p.Add(n0.Mul(hw)), u}, railPoint{p.Add(n1.Mul(hw)), u})
		return right, left
	}
	m := sum.Mul(1 / sum.Len())
	miter := hw / m.Dot(n0)
	inner := math.Min(miter, b.miterLimit*hw)

	sweep := math.Atan2(cr, dot)
	if cr > 0 {
		// Left turn: the left rail is inside, the right rail outside.
		left = append(left, railPoint{p.Add(m.Mul(inner)), u})
		right = b.outerCorner(right, p, n0.Mul(-1), n1.Mul(-1), m.Mul(-1), miter, sweep, u)
	} else {
		// Right turn: the right rail is inside, the left rail outside.
		right = append(right, railPoint{p.Sub(m.Mul(inner)), u})
		left = b.outerCorner(left, p, n0, n1, m, miter, sweep, u)
	}
	return right, left
}

// outerCorner appends the outer-rail points for one corner. out0 and out1
// are the unit outward normals entering and leaving the corner, and outm
// bisects them.
func (b *builder) outerCorner(rail []railPoint, p, out0, out1, outm mgl64.Vec2, miter, sweep, u float64) []railPoint {
	hw := b.halfWidth
	switch b.opts.Join {
	case JoinMitered:
		if miter <= b.miterLimit*hw {
			return append(rail, railPoint{p.Add(outm.Mul(miter)), u})
		}
		// Past the limit the miter collapses to a bevel.
		return append(rail,
			railPoint{p.Add(out0.Mul(hw)), u},
			railPoint{p.Add(out1.Mul(hw)), u})
	case JoinBeveled:
		return append(rail,
			railPoint{p.Add(out0.Mul(hw)), u},
			railPoint{p.Add(out1.Mul(hw)), u})
	default:
		return b.arc(rail, p, out0, sweep, u)
	}
}

// arc appends points sweeping from direction from through the signed angle
// sweep around p at the rail radius, stepped by the granularity. Both
// endpoints are included.
func (b *builder) arc(rail []railPoint, p, from mgl64.Vec2, sweep, u float64) []railPoint {
	steps := int(math.Ceil(math.Abs(sweep) / b.granularity))
	if steps < 1 {
		steps = 1
	}
	start := math.Atan2(from[1], from[0])
	for k := 0; k <= steps; k++ {
		a := start + sweep*float64(k)/float64(steps)
		dir := mgl64.Vec2{math.Cos(a), math.Sin(a)}
		rail = append(rail, railPoint{p.Add(dir.Mul(b.halfWidth)), u})
	}
	return rail
}

// emitSurface appends one horizontal corridor surface at height z. Vertices
// go right rail first, then left rail. The bridge sweep advances whichever
// rail offers the shorter crossing diagonal, which keeps triangles well
// shaped where a corner adds points to only one rail.
func (b *builder) emitSurface(right, left []railPoint, z float64, up bool) {
	normal := mgl64.Vec3{0, 0, 1}
	if !up {
		normal = mgl64.Vec3{0, 0, -1}
	}

	ri := make([]uint32, len(right))
	for i, rp := range right {
		ri[i] = b.vertex(rp.pos, z, normal, mgl64.Vec2{rp.u, 0})
	}
	li := make([]uint32, len(left))
	for i, lp := range left {
		li[i] = b.vertex(lp.pos, z, normal, mgl64.Vec2{lp.u, 1})
	}

	i, j := 0, 0
	for i < len(left)-1 || j < len(right)-1 {
		advanceLeft := false
		switch {
		case j == len(right)-1:
			advanceLeft = true
		case i == len(left)-1:
			// Right rail still has points; keep advancing it.
		default:
			advanceLeft = dist2(left[i+1].pos, right[j].pos) <= dist2(right[j+1].pos, left[i].pos)
		}
		if advanceLeft {
			b.triangle(ri[j], li[i+1], li[i], up)
			i++
		} else {
			b.triangle(ri[j], ri[j+1], li[i], up)
			j++
		}
	}
}

// emitWalls appends the wall strip around the corridor boundary. The ring
// runs forward along the right rail and back along the left, which is
// counter-clockwise seen from above, so the outward normal of each edge is
// its direction rotated a quarter turn clockwise. The two crossing edges at
// the ends of the ring become the end caps.
func (b *builder) emitWalls(right, left []railPoint, bottom, top float64) {
	ring := make([]railPoint, 0, len(right)+len(left))
	ring = append(ring, right...)
	for i := len(left) - 1; i >= 0; i-- {
		ring = append(ring, left[i])
	}

	// Cumulative ring arc length drives the wall u coordinate.
	ringArc := make([]float64, len(ring)+1)
	total := 0.0
	for i := 0; i < len(ring); i++ {
		next := ring[(i+1)%len(ring)]
		total += next.pos.Sub(ring[i].pos).Len()
		ringArc[i+1] = total
	}

	for i := 0; i < len(ring); i++ {
		p := ring[i].pos
		q := ring[(i+1)%len(ring)].pos
		edge := q.Sub(p)
		length := edge.Len()
		if length < 1e-10 {
			continue
		}
		dir := edge.Mul(1 / length)
		outward := mgl64.Vec3{dir[1], -dir[0], 0}

		u0 := ringArc[i] / total
		u1 := ringArc[i+1] / total

		// Four vertices per quad so each wall face is flat shaded.
		pBot := b.vertex(p, bottom, outward, mgl64.Vec2{u0, 0})
		qBot := b.vertex(q, bottom, outward, mgl64.Vec2{u1, 0})
		qTop := b.vertex(q, top, outward, mgl64.Vec2{u1, 1})
		pTop := b.vertex(p, top, outward, mgl64.Vec2{u0, 1})
		b.indices = append(b.indices, pBot, qBot, qTop, pBot, qTop, pTop)
	}
}

// vertex appends one vertex and returns its index. Normals and texture
// coordinates are recorded only when the options ask for them.
func (b *builder) vertex(p mgl64.Vec2, z float64, n mgl64.Vec3, uv mgl64.Vec2) uint32 {
	idx := uint32(len(b.positions))
	b.positions = append(b.positions, mgl64.Vec3{p[0], p[1], z})
	if b.opts.Normals {
		b.normals = append(b.normals, n)
	}
	if b.opts.TexCoords {
		b.texcoords = append(b.texcoords, uv)
	}
	b.min = mgl64.Vec2{math.Min(b.min[0], p[0]), math.Min(b.min[1], p[1])}
	b.max = mgl64.Vec2{math.Max(b.max[0], p[0]), math.Max(b.max[1], p[1])}
	return idx
}

// triangle appends one triangle, wound counter-clockwise for up-facing
// surfaces and clockwise otherwise.
func (b *builder) triangle(v0, v1, v2 uint32, up bool) {
	if up {
		b.indices = append(b.indices, v0, v1, v2)
	} else {
		b.indices = append(b.indices, v0, v2, v1)
	}
}

// dedupe projects the centerline to XY and drops consecutive duplicates.
func dedupe(pts []mgl64.Vec3) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, 0, len(pts))
	for _, p := range pts {
		q := mgl64.Vec2{p[0], p[1]}
		if len(out) > 0 && q.Sub(out[len(out)-1]).Len() < 1e-10 {
			continue
		}
		out = append(out, q)
	}
	return out
}

// perp rotates v a quarter turn counter-clockwise.
func perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// cross returns the z component of the 3D cross product of a and b.
func cross(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// dist2 returns the squared distance between a and b.
func dist2(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
