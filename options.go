package stripe

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// GeometryOptions is the resolved input record for a GeometryFactory.
// Exactly one updater owns it; every resolution pass rewrites it wholesale,
// so it is never partially stale.
type GeometryOptions struct {
	// ID names the owning entity.
	ID uuid.UUID

	// Layout is derived from the material kind.
	Layout VertexLayout

	// Positions is the sampled centerline.
	Positions []mgl64.Vec3

	// Width is the sampled across-track extent.
	Width float64

	// CornerType is the sampled corner join style.
	CornerType CornerType

	// Granularity is the sampled angular density for rounded corners.
	Granularity float64

	// Height is the resolved base altitude.
	Height float64

	// ExtrudedHeight is the resolved second altitude. It is meaningful
	// only when HasExtrudedHeight is set.
	ExtrudedHeight float64

	// HasExtrudedHeight reports whether the shape extrudes.
	HasExtrudedHeight bool

	// OffsetKind classifies which vertices need the render-time vertical
	// offset.
	OffsetKind OffsetKind
}
