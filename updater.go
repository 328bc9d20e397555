package stripe

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrFillDisabled reports a fill-instance request for a shape whose
	// fill is disabled. Callers are expected not to ask for fill geometry
	// in that state.
	ErrFillDisabled = errors.New("stripe: fill is disabled for this shape")

	// ErrOutlineUnsupported reports an outline-instance request. Outline
	// geometry is a permanent, intentional limitation for stripes, not a
	// transient condition.
	ErrOutlineUnsupported = errors.New("stripe: outline geometry is not supported for stripes")

	// ErrInvalidTime reports a sampling instant that is not a number.
	ErrInvalidTime = errors.New("stripe: sample time is not a valid instant")

	// errNoDescriptor reports resolution against an entity with no stripe.
	errNoDescriptor = errors.New("stripe: entity has no stripe descriptor")
)

// Mode selects how an entity's geometry is kept current.
type Mode int

const (
	// ModeStatic resolves geometry once, sampling at the epoch.
	ModeStatic Mode = iota
	// ModeDynamic re-resolves geometry on every tick at the current time.
	ModeDynamic
)

// ShapeResolver is the capability a shape kind supplies to the updater:
// deciding visibility and dynamism, resolving descriptor samples into
// geometry options, and wrapping built meshes into instances. The updater
// depends only on this interface, never on a concrete shape kind.
type ShapeResolver interface {
	// Hidden reports whether the shape contributes no geometry at t.
	// It is a pure predicate with no side effects.
	Hidden(e *Entity, t Time) bool

	// Dynamic reports whether the shape's geometry varies with time.
	Dynamic(e *Entity) bool

	// ResolveOptions samples the descriptor at t and rewrites opts
	// wholesale.
	ResolveOptions(e *Entity, t Time, opts *GeometryOptions) error

	// BuildFillInstance builds the mesh for opts and wraps it with
	// display attributes sampled at t.
	BuildFillInstance(e *Entity, t Time, opts *GeometryOptions) (*GeometryInstance, error)
}

// GeometryUpdater keeps one entity's stripe geometry in sync with its
// descriptor. It owns the static-path GeometryOptions record and the
// static-vs-dynamic decision; when the shape is dynamic it hands per-tick
// resolution to a DynamicGeometryUpdater.
//
// All methods run within the scene's single-threaded update tick.
type GeometryUpdater struct {
	entity   *Entity
	resolver ShapeResolver
	mode     Mode
	options  GeometryOptions
	dynamic  *DynamicGeometryUpdater
}

// NewGeometryUpdater builds the updater for an entity with the given shape
// resolver and picks the initial mode from the descriptor as it stands.
func NewGeometryUpdater(e *Entity, r ShapeResolver) *GeometryUpdater {
	u := &GeometryUpdater{entity: e, resolver: r}
	u.options.ID = e.ID
	u.applyMode(u.IsDynamic())
	return u
}

// Entity returns the owning entity.
func (u *GeometryUpdater) Entity() *Entity { return u.entity }

// Mode returns the current update mode.
func (u *GeometryUpdater) Mode() Mode { return u.mode }

// DynamicUpdater returns the per-tick updater, or nil in static mode.
func (u *GeometryUpdater) DynamicUpdater() *DynamicGeometryUpdater {
	return u.dynamic
}

// Options returns a copy of the current static-path options record.
func (u *GeometryUpdater) Options() GeometryOptions { return u.options }

// IsHidden reports whether the shape contributes no geometry at t: the
// centerline or width is undefined there, the entity is not showing or not
// available, or the show/fill properties gate it off. A hidden shape is a
// soft condition, never an error.
func (u *GeometryUpdater) IsHidden(t Time) bool {
	return u.resolver.Hidden(u.entity, t)
}

// IsDynamic reports whether the shape's geometry must be re-resolved as the
// clock advances.
func (u *GeometryUpdater) IsDynamic() bool {
	return u.resolver.Dynamic(u.entity)
}

// SetStaticOptions samples every descriptor field at the epoch and rewrites
// the owned options record. It is the static counterpart of
// DynamicGeometryUpdater.SetOptions.
func (u *GeometryUpdater) SetStaticOptions() error {
	return u.resolver.ResolveOptions(u.entity, Epoch, &u.options)
}

// CreateFillGeometryInstance builds the fill geometry instance, sampling
// the display attributes at t. The geometry itself comes from the owned
// options record, so SetStaticOptions must have run since the last
// descriptor change. Fails with ErrFillDisabled when fill is off.
func (u *GeometryUpdater) CreateFillGeometryInstance(t Time) (*GeometryInstance, error) {
	return u.resolver.BuildFillInstance(u.entity, t, &u.options)
}

// CreateOutlineGeometryInstance always fails with ErrOutlineUnsupported.
func (u *GeometryUpdater) CreateOutlineGeometryInstance(_ Time) (*GeometryInstance, error) {
	return nil, ErrOutlineUnsupported
}

// ComputeCenter samples the centerline at t and returns its middle vertex,
// the element at index floor(len/2). ok is false when the centerline is
// undefined or empty at t.
func (u *GeometryUpdater) ComputeCenter(t Time) (mgl64.Vec3, bool) {
	if u.entity.Stripe == nil {
		return mgl64.Vec3{}, false
	}
	return centerProperty{positions: u.entity.Stripe.Positions}.At(t)
}

// Refresh re-evaluates the static/dynamic decision after a descriptor
// change. When the mode flips, the updater discards all cached state and
// starts the other kind fresh; no options carry over, so the next
// resolution pass is a clean rebuild.
func (u *GeometryUpdater) Refresh() {
	isDynamic := u.IsDynamic()
	if (u.mode == ModeDynamic) == isDynamic {
		return
	}
	u.applyMode(isDynamic)
}

func (u *GeometryUpdater) applyMode(dynamic bool) {
	u.options = GeometryOptions{ID: u.entity.ID}
	if dynamic {
		u.mode = ModeDynamic
		u.dynamic = newDynamicGeometryUpdater(u)
	} else {
		u.mode = ModeStatic
		u.dynamic = nil
	}
}

// centerProperty exposes a centerline's middle vertex as a point property.
type centerProperty struct {
	positions Property[[]mgl64.Vec3]
}

func (p centerProperty) At(t Time) (mgl64.Vec3, bool) {
	pts, ok := ValueOrUndefined(p.positions, t)
	if !ok || len(pts) == 0 {
		return mgl64.Vec3{}, false
	}
	return pts[len(pts)/2], true
}

func (p centerProperty) IsConstant() bool { return IsConstant(p.positions) }

// StripeResolver is the stripe-kind ShapeResolver: it samples a
// ShapeDescriptor and resolves heights, extrusion, and offsets into
// corridor geometry options.
type StripeResolver struct {
	// Factory tessellates resolved options and computes bounding
	// rectangles.
	Factory GeometryFactory
	// Terrain answers the clamped-extrusion height lookup. Descriptors
	// that never clamp can leave it nil.
	Terrain TerrainApproximator
}

// NewStripeResolver builds the resolver the updater uses for stripe
// descriptors.
func NewStripeResolver(f GeometryFactory, terrain TerrainApproximator) *StripeResolver {
	return &StripeResolver{Factory: f, Terrain: terrain}
}

// Hidden implements ShapeResolver. A stripe hides when its centerline or
// width is undefined at t, on top of the generic entity/show/fill gate.
func (r *StripeResolver) Hidden(e *Entity, t Time) bool {
	d := e.Stripe
	if d == nil {
		return true
	}
	if pts, ok := ValueOrUndefined(d.Positions, t); !ok || len(pts) == 0 {
		return true
	}
	if _, ok := ValueOrUndefined(d.Width, t); !ok {
		return true
	}
	return baseHidden(e, d, t)
}

// baseHidden is the shape-independent part of the hidden predicate.
func baseHidden(e *Entity, d *ShapeDescriptor, t Time) bool {
	if !e.Show || !e.Available(t) {
		return true
	}
	if !ValueOrDefault(d.Show, t, true) {
		return true
	}
	return !ValueOrDefault(d.Fill, t, true)
}

// Dynamic implements ShapeResolver. A stripe is dynamic when any geometry
// input varies with time, or when it renders directly on terrain with a
// time-varying non-color material (the material then feeds the ground
// primitive and must be re-uploaded as it changes).
func (r *StripeResolver) Dynamic(e *Entity) bool {
	d := e.Stripe
	if d == nil {
		return false
	}
	if !IsConstant(d.Positions) ||
		!IsConstant(d.Height) ||
		!IsConstant(d.ExtrudedHeight) ||
		!IsConstant(d.Granularity) ||
		!IsConstant(d.Width) ||
		!IsConstant(d.OutlineWidth) ||
		!IsConstant(d.CornerType) ||
		!IsConstant(d.ZIndex) {
		return true
	}
	m := materialOf(d)
	if _, plain := m.(ColorMaterial); plain {
		return false
	}
	return onTerrain(d) && !m.IsConstant()
}

// onTerrain reports whether the stripe renders clamped to the terrain
// surface: fill enabled, a clamped height reference, and no explicit
// heights, all sampled at the epoch.
func onTerrain(d *ShapeDescriptor) bool {
	if !ValueOrDefault(d.Fill, Epoch, true) {
		return false
	}
	if ValueOrDefault(d.HeightReference, Epoch, HeightReferenceNone) != HeightReferenceClampToGround {
		return false
	}
	if _, ok := ValueOrUndefined(d.Height, Epoch); ok {
		return false
	}
	_, ok := ValueOrUndefined(d.ExtrudedHeight, Epoch)
	return !ok
}

// fillEnabled reports whether fill geometry may be created at all. Only a
// constant false disables it; a time-varying fill stays enabled and gates
// per-instance visibility instead.
func fillEnabled(d *ShapeDescriptor) bool {
	if d.Fill == nil || !d.Fill.IsConstant() {
		return true
	}
	return ValueOrDefault(d.Fill, Epoch, true)
}

// ResolveOptions implements ShapeResolver. It samples every descriptor
// field at t and rewrites opts wholesale, then resolves heights:
//
//  1. An extrusion height with no base height implies a base at ground
//     level 0.
//  2. The offset kind comes from the fixed reference policy table.
//  3. The base height resolves through its reference; clamping puts the
//     base at ground level and leaves the relativity to the offset
//     attribute.
//  4. The extrusion height resolves the same way, except clamping marks it
//     pending.
//  5. A pending extrusion becomes the terrain minimum under the shape's
//     bounding rectangle, the core's only external lookup.
func (r *StripeResolver) ResolveOptions(e *Entity, t Time, opts *GeometryOptions) error {
	if !t.Valid() {
		return ErrInvalidTime
	}
	d := e.Stripe
	if d == nil {
		return errNoDescriptor
	}

	*opts = GeometryOptions{
		ID:          e.ID,
		Layout:      LayoutForMaterial(materialOf(d)),
		Positions:   ValueOrDefault(d.Positions, t, nil),
		Width:       ValueOrDefault(d.Width, t, 0),
		CornerType:  ValueOrDefault(d.CornerType, t, CornerRounded),
		Granularity: ValueOrDefault(d.Granularity, t, DefaultGranularity),
	}

	height, hasHeight := ValueOrUndefined(d.Height, t)
	heightRef := ValueOrDefault(d.HeightReference, t, HeightReferenceNone)
	extruded, hasExtruded := ValueOrUndefined(d.ExtrudedHeight, t)
	extrudedRef := ValueOrDefault(d.ExtrudedHeightReference, t, HeightReferenceNone)

	if hasExtruded && !hasHeight {
		height, hasHeight = 0, true
	}

	opts.OffsetKind = computeOffsetKind(hasHeight, heightRef, hasExtruded, extrudedRef)
	opts.Height = resolveHeight(height, hasHeight, heightRef)

	extruded, hasExtruded = resolveExtrudedHeight(extruded, hasExtruded, extrudedRef)
	if hasExtruded && extruded == clampPendingHeight {
		extruded = r.minimumTerrainHeight(opts)
	}
	opts.ExtrudedHeight, opts.HasExtrudedHeight = extruded, hasExtruded
	return nil
}

// minimumTerrainHeight answers the clamped-extrusion lookup over the
// shape's own bounding rectangle.
func (r *StripeResolver) minimumTerrainHeight(opts *GeometryOptions) float64 {
	if r.Terrain == nil {
		warnNoTerrainOnce.Do(func() {
			Logger().Warn("stripe: clamped extrusion resolved without terrain data, using height 0")
		})
		return 0
	}
	rect := r.Factory.ComputeBoundingRectangle(opts)
	return r.Terrain.MinMaxHeights(rect).Minimum
}

// BuildFillInstance implements ShapeResolver. The geometry comes from opts
// as already resolved; only the display attributes sample at t.
func (r *StripeResolver) BuildFillInstance(e *Entity, t Time, opts *GeometryOptions) (*GeometryInstance, error) {
	if !t.Valid() {
		return nil, ErrInvalidTime
	}
	d := e.Stripe
	if d == nil {
		return nil, errNoDescriptor
	}
	if !fillEnabled(d) {
		return nil, ErrFillDisabled
	}

	mesh, err := r.Factory.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("stripe: build fill geometry: %w", err)
	}

	inst := &GeometryInstance{
		ID:   e.ID,
		Mesh: mesh,
		Attributes: InstanceAttributes{
			Show: e.Available(t) && e.Show &&
				ValueOrDefault(d.Show, t, true) &&
				ValueOrDefault(d.Fill, t, true),
		},
	}

	if cm, ok := materialOf(d).(ColorMaterial); ok {
		// The sampled color applies only when it is trustworthy at t:
		// either it never changes, or the entity is inside its
		// availability window. Otherwise fall back to opaque white.
		c := White
		if IsConstant(cm.Color) || e.Available(t) {
			c = ValueOrDefault(cm.Color, t, White)
		}
		inst.Attributes.Color = &c
	}

	if opts.OffsetKind != OffsetNone {
		offsetProp := &TerrainOffsetProperty{
			Terrain: r.Terrain,
			Center:  centerProperty{positions: d.Positions},
		}
		offset := ValueOrDefault[mgl64.Vec3](offsetProp, t, mgl64.Vec3{})
		inst.Attributes.Offset = &offset
	}

	if dc, ok := ValueOrUndefined(d.DistanceDisplay, t); ok {
		inst.Attributes.DistanceDisplay = &dc
	}
	return inst, nil
}
