package stripe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultGranularity is the angular sampling density, in radians, used when
// a descriptor leaves Granularity unset.
const DefaultGranularity = math.Pi / 180

// DistanceDisplayCondition gates visibility by distance from the viewer:
// the shape displays only between Near and Far.
type DistanceDisplayCondition struct {
	Near, Far float64
}

// ShapeDescriptor is the declarative configuration of one stripe: a
// centerline with a width, optional height and extrusion, and display
// styling. Every field is a Property so each can be constant or
// time-varying independently; a nil field is unset and the documented
// default applies (see the package documentation for the default table).
//
// Descriptors carry no resolution logic. A GeometryUpdater samples them and
// turns the sampled values into geometry options and instances.
type ShapeDescriptor struct {
	// Show gates the whole shape.
	Show Property[bool]

	// Positions is the centerline: an ordered sequence of world points,
	// at least two when defined. An undefined value hides the shape.
	Positions Property[[]mgl64.Vec3]

	// Width is the full across-track extent. An undefined value hides the
	// shape.
	Width Property[float64]

	// Height is the base altitude, interpreted per HeightReference.
	Height Property[float64]

	// HeightReference relates Height to the terrain surface.
	HeightReference Property[HeightReference]

	// ExtrudedHeight, when defined, extrudes the shape between the two
	// altitudes, interpreted per ExtrudedHeightReference.
	ExtrudedHeight Property[float64]

	// ExtrudedHeightReference relates ExtrudedHeight to the terrain
	// surface.
	ExtrudedHeightReference Property[HeightReference]

	// CornerType selects the corner join style.
	CornerType Property[CornerType]

	// Granularity is the angular sampling density for rounded corners, in
	// radians.
	Granularity Property[float64]

	// Fill gates fill geometry. A constant false disables fill-instance
	// creation entirely.
	Fill Property[bool]

	// Material selects the surface shading variant.
	Material Material

	// Outline styling is accepted so descriptors round-trip, but outline
	// geometry is not supported; see CreateOutlineGeometryInstance.
	Outline      Property[bool]
	OutlineColor Property[Color]
	OutlineWidth Property[float64]

	// DistanceDisplay passes through to the instance attribute unchanged.
	DistanceDisplay Property[DistanceDisplayCondition]

	// Classification passes through without interpretation.
	Classification Property[ClassificationType]

	// ZIndex orders ground shapes among themselves. Only meaningful when
	// the shape is static with both heights unset.
	ZIndex Property[int]
}
