// Package scene drives geometry updaters for a set of entities, keeping one
// renderable primitive per visible entity across clock ticks.
package scene

import (
	"errors"
	"image"
	"sort"

	"github.com/google/uuid"

	"github.com/groundgeom/stripe"
)

var (
	// ErrNilEntity reports an Add call with no entity.
	ErrNilEntity = errors.New("scene: nil entity")
	// ErrDuplicateEntity reports an entity whose ID is already tracked.
	ErrDuplicateEntity = errors.New("scene: entity already added")
)

// DefaultMaxTextureSize caps the longest edge of prepared textures when no
// option overrides it.
const DefaultMaxTextureSize = 2048

// Primitive is one renderable corridor produced by an update.
type Primitive struct {
	// Instance carries the mesh and display attributes.
	Instance *stripe.GeometryInstance

	// Texture is the upload-ready material texture. It is nil for color
	// materials.
	Texture *image.RGBA

	// Classification tells the renderer which surfaces the shape drapes
	// over when it sits on terrain.
	Classification stripe.ClassificationType

	// ZIndex is the draw-order rank the primitive was sorted by.
	ZIndex int
}

// entityState tracks one entity between updates.
type entityState struct {
	entity  *stripe.Entity
	updater *stripe.GeometryUpdater

	// seenRev is the entity revision the updater last reacted to.
	seenRev uint64

	// resolved records that static options are valid for seenRev.
	resolved bool

	// instance is the cached fill instance. Static entities keep it
	// across ticks; dynamic entities replace it every tick.
	instance *stripe.GeometryInstance

	texture  *image.RGBA
	zIndex   int
	classify stripe.ClassificationType
	visible  bool
}

// Visualizer owns a geometry updater per entity and advances them all on
// each Update. Static entities build their mesh once and only refresh
// display attributes afterward; dynamic entities re-resolve and rebuild
// every tick.
//
// A Visualizer is not safe for concurrent use.
type Visualizer struct {
	resolver *stripe.StripeResolver

	// entities preserves insertion order, which breaks z-index ties.
	entities []*entityState
	byID     map[uuid.UUID]*entityState

	maxTextureDim int
}

// Option configures a Visualizer during creation.
type Option func(*Visualizer)

// WithMaxTextureSize caps the longest edge of prepared material textures.
// Sizes below 1 are ignored.
func WithMaxTextureSize(dim int) Option {
	return func(v *Visualizer) {
		if dim > 0 {
			v.maxTextureDim = dim
		}
	}
}

// NewVisualizer creates an empty visualizer. The factory builds meshes for
// every tracked entity; terrain answers clamped-extrusion lookups and may
// be nil when no descriptor clamps.
func NewVisualizer(factory stripe.GeometryFactory, terrain stripe.TerrainApproximator, opts ...Option) *Visualizer {
	v := &Visualizer{
		resolver:      stripe.NewStripeResolver(factory, terrain),
		byID:          make(map[uuid.UUID]*entityState),
		maxTextureDim: DefaultMaxTextureSize,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Add starts tracking an entity.
func (v *Visualizer) Add(e *stripe.Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if _, dup := v.byID[e.ID]; dup {
		return ErrDuplicateEntity
	}
	st := &entityState{
		entity:  e,
		updater: stripe.NewGeometryUpdater(e, v.resolver),
		seenRev: e.Revision(),
	}
	v.entities = append(v.entities, st)
	v.byID[e.ID] = st
	return nil
}

// Remove stops tracking the entity with the given ID and reports whether it
// was tracked.
func (v *Visualizer) Remove(id uuid.UUID) bool {
	st, ok := v.byID[id]
	if !ok {
		return false
	}
	delete(v.byID, id)
	for i, cur := range v.entities {
		if cur == st {
			v.entities = append(v.entities[:i], v.entities[i+1:]...)
			break
		}
	}
	return true
}

// Updater returns the geometry updater for a tracked entity, or nil.
func (v *Visualizer) Updater(id uuid.UUID) *stripe.GeometryUpdater {
	if st, ok := v.byID[id]; ok {
		return st.updater
	}
	return nil
}

// Len returns the number of tracked entities.
func (v *Visualizer) Len() int { return len(v.entities) }

// Update advances every entity to time t. An entity whose sampling or build
// fails is logged and skipped for this update; the others proceed.
func (v *Visualizer) Update(t stripe.Time) {
	for _, st := range v.entities {
		v.updateEntity(st, t)
	}
}

func (v *Visualizer) updateEntity(st *entityState, t stripe.Time) {
	// Descriptor edits re-enter through Refresh, which re-decides the
	// static/dynamic mode and invalidates everything derived from it.
	if rev := st.entity.Revision(); rev != st.seenRev {
		st.updater.Refresh()
		st.seenRev = rev
		st.resolved = false
		st.instance = nil
		st.texture = nil
	}

	if st.updater.IsHidden(t) {
		st.visible = false
		return
	}

	d := st.entity.Stripe
	st.zIndex = stripe.ValueOrDefault(d.ZIndex, t, 0)
	st.classify = stripe.ValueOrDefault(d.Classification, t, stripe.ClassifyBoth)

	if dyn := st.updater.DynamicUpdater(); dyn != nil {
		if err := dyn.SetOptions(t); err != nil {
			v.skip(st, "resolve dynamic options", err)
			return
		}
		inst, err := dyn.CreateFillGeometryInstance(t)
		if err != nil {
			v.skip(st, "build dynamic fill", err)
			return
		}
		st.instance = inst
		st.texture = v.prepareTexture(st, t, true)
		st.visible = true
		return
	}

	if !st.resolved {
		if err := st.updater.SetStaticOptions(); err != nil {
			v.skip(st, "resolve static options", err)
			return
		}
		st.resolved = true
	}
	if st.instance == nil {
		inst, err := st.updater.CreateFillGeometryInstance(t)
		if err != nil {
			v.skip(st, "build static fill", err)
			return
		}
		st.instance = inst
		st.texture = v.prepareTexture(st, t, true)
	} else {
		v.refreshAttributes(st, t)
		st.texture = v.prepareTexture(st, t, false)
	}
	st.visible = true
}

// skip drops the entity for this update and records why at debug level.
func (v *Visualizer) skip(st *entityState, op string, err error) {
	stripe.Logger().Debug("scene: skipping entity",
		"entity", st.entity.Name, "op", op, "error", err)
	st.visible = false
}

// refreshAttributes re-samples the display attributes of a cached static
// instance in place, leaving the mesh alone. The result matches what a
// fresh build at t would carry.
func (v *Visualizer) refreshAttributes(st *entityState, t stripe.Time) {
	d := st.entity.Stripe
	inst := st.instance
	inst.Attributes.Show = st.entity.Available(t) && st.entity.Show &&
		stripe.ValueOrDefault(d.Show, t, true) &&
		stripe.ValueOrDefault(d.Fill, t, true)

	if cm, ok := d.Material.(stripe.ColorMaterial); ok && !stripe.IsConstant(cm.Color) {
		c := stripe.White
		if st.entity.Available(t) {
			c = stripe.ValueOrDefault(cm.Color, t, stripe.White)
		}
		inst.Attributes.Color = &c
	}
}

// prepareTexture returns the upload-ready texture for a textured material,
// or nil for any other material. The cached texture is reused unless the
// instance was rebuilt or the image varies with time.
func (v *Visualizer) prepareTexture(st *entityState, t stripe.Time, rebuilt bool) *image.RGBA {
	tm, ok := st.entity.Stripe.Material.(stripe.TexturedMaterial)
	if !ok {
		return nil
	}
	if !rebuilt && st.texture != nil && stripe.IsConstant(tm.Image) {
		return st.texture
	}
	img, _ := stripe.ValueOrUndefined(tm.Image, t)
	return stripe.NormalizeTexture(img, v.maxTextureDim)
}

// Primitives returns the primitives of every visible entity in paint order:
// ascending z-index, insertion order within equal ones.
func (v *Visualizer) Primitives() []Primitive {
	out := make([]Primitive, 0, len(v.entities))
	for _, st := range v.entities {
		if !st.visible || st.instance == nil {
			continue
		}
		out = append(out, Primitive{
			Instance:       st.instance,
			Texture:        st.texture,
			Classification: st.classify,
			ZIndex:         st.zIndex,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}
