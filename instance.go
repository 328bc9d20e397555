package stripe

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// GeometryInstance pairs a built mesh with the per-instance display
// attributes the scene applies when drawing it. Instances are created fresh
// per call; the caller owns one and discards it when no longer needed.
type GeometryInstance struct {
	// ID names the owning entity. The instance does not own the entity.
	ID uuid.UUID

	// Mesh is the tessellated geometry. The instance owns it.
	Mesh *Mesh

	// Attributes are the display controls for this instance.
	Attributes InstanceAttributes
}

// InstanceAttributes are the per-instance display controls.
type InstanceAttributes struct {
	// Show gates drawing of the instance.
	Show bool

	// Color is set only for color-material shapes.
	Color *Color

	// Offset is the render-time vertical offset, set only when the mesh
	// has vertices that need one.
	Offset *mgl64.Vec3

	// DistanceDisplay gates visibility by view distance when set.
	DistanceDisplay *DistanceDisplayCondition
}
