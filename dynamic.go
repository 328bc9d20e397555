package stripe

import "github.com/go-gl/mathgl/mgl64"

// DynamicGeometryUpdater re-resolves a time-varying stripe on every tick.
// The owning GeometryUpdater creates one when the shape turns dynamic and
// discards it when the shape turns static again; its options record never
// outlives a mode switch.
type DynamicGeometryUpdater struct {
	owner   *GeometryUpdater
	options GeometryOptions
}

func newDynamicGeometryUpdater(u *GeometryUpdater) *DynamicGeometryUpdater {
	d := &DynamicGeometryUpdater{owner: u}
	d.options.ID = u.entity.ID
	return d
}

// Options returns a copy of the current per-tick options record.
func (d *DynamicGeometryUpdater) Options() GeometryOptions { return d.options }

// IsHidden reports whether the shape contributes no geometry at t. The
// centerline or width may have become undefined at t even if they were
// defined when the dynamic mode was selected.
func (d *DynamicGeometryUpdater) IsHidden(t Time) bool {
	return d.owner.resolver.Hidden(d.owner.entity, t)
}

// SetOptions re-samples every descriptor field at t, never the epoch, and
// re-runs the full resolution algorithm, overwriting the owned options
// record. The scene calls it once per tick for every dynamic entity.
func (d *DynamicGeometryUpdater) SetOptions(t Time) error {
	return d.owner.resolver.ResolveOptions(d.owner.entity, t, &d.options)
}

// CreateFillGeometryInstance builds the fill instance from the per-tick
// options, sampling display attributes at t.
func (d *DynamicGeometryUpdater) CreateFillGeometryInstance(t Time) (*GeometryInstance, error) {
	return d.owner.resolver.BuildFillInstance(d.owner.entity, t, &d.options)
}

// CreateOutlineGeometryInstance always fails with ErrOutlineUnsupported.
func (d *DynamicGeometryUpdater) CreateOutlineGeometryInstance(_ Time) (*GeometryInstance, error) {
	return nil, ErrOutlineUnsupported
}

// ComputeCenter samples the centerline at t and returns its middle vertex.
func (d *DynamicGeometryUpdater) ComputeCenter(t Time) (mgl64.Vec3, bool) {
	return d.owner.ComputeCenter(t)
}
