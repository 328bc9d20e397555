// Package stripe keeps corridor-shaped geometry in sync with time-varying
// entity descriptions.
//
// # Overview
//
// A stripe is the region swept by a width along a polyline centerline. Its
// inputs are properties: values sampled over time that may be constant,
// keyframed, or composed from intervals. The package watches an entity's
// stripe descriptor, decides whether its geometry is static or must be
// rebuilt every tick, resolves heights and terrain clamping, and produces
// renderable geometry instances with display attributes.
//
// # Quick Start
//
//	import "github.com/groundgeom/stripe"
//
//	e := stripe.NewEntity("access road")
//	e.Stripe = &stripe.ShapeDescriptor{
//		Positions: stripe.Const([]mgl64.Vec3{{0, 0, 0}, {80, 20, 0}}),
//		Width:     stripe.Const(8.0),
//	}
//
//	u := stripe.NewGeometryUpdater(e, stripe.NewStripeResolver(
//		stripe.NewGeometryFactory(), nil))
//	u.SetStaticOptions()
//	inst, err := u.CreateFillGeometryInstance(0)
//
// # Static and Dynamic Shapes
//
// A shape whose geometry inputs never change resolves once, sampling every
// property at the epoch. When any geometry input is time-varying the updater
// switches to a DynamicGeometryUpdater, which re-samples and re-tessellates
// on every tick. The scene package drives both kinds from a single Update
// call.
//
// # Heights and Terrain
//
// Base and extrusion heights resolve through their height references.
// Clamping the base puts it at ground level and defers the real elevation to
// a per-instance offset attribute; clamping the extrusion replaces its value
// with the minimum terrain height under the shape, the package's only
// external data lookup. Terrain data comes in through the TerrainApproximator
// interface; the terrain subpackage has a heightfield implementation.
//
// # Architecture
//
// The module is organized into:
//   - Root: properties, descriptors, updaters, resolution, tessellation API
//   - scene: entity collection, per-tick visualizer, primitive ordering
//   - document: a JSON interchange format with schema validation
//   - terrain: heightfield terrain approximation
//   - internal/tessellate: the corridor triangulator
package stripe

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
