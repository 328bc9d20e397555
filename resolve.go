package stripe

import (
	"math"
	"sync"
)

// clampPendingHeight marks a resolved extrusion height whose real value is
// the terrain minimum under the shape. Negative infinity cannot occur as a
// legitimate extrusion height, so the substitution is unambiguous.
var clampPendingHeight = math.Inf(-1)

// One-time warnings for descriptor combinations that are accepted but have
// no effect. Resolution stays quiet after the first occurrence.
var (
	warnHeightRefOnce   sync.Once
	warnExtrudedRefOnce sync.Once
	warnNoTerrainOnce   sync.Once
)

// computeOffsetKind classifies which vertices need the render-time vertical
// offset. An undefined height (or extruded height) normalizes its reference
// to HeightReferenceNone first. A non-NONE height reference counts once; a
// RELATIVE_TO_GROUND extruded reference counts once; two hits offset every
// vertex, one hit offsets only the top surface.
func computeOffsetKind(hasHeight bool, heightRef HeightReference, hasExtruded bool, extrudedRef HeightReference) OffsetKind {
	if !hasHeight {
		heightRef = HeightReferenceNone
	}
	if !hasExtruded {
		extrudedRef = HeightReferenceNone
	}
	n := 0
	if heightRef != HeightReferenceNone {
		n++
	}
	if extrudedRef == HeightReferenceRelativeToGround {
		n++
	}
	switch n {
	case 2:
		return OffsetAll
	case 1:
		return OffsetTop
	default:
		return OffsetNone
	}
}

// resolveHeight maps a sampled base height through its reference. A clamped
// base resolves to ground level; the offset attribute carries the
// render-time relativity. An undefined height resolves to the factory
// default 0.
func resolveHeight(h float64, ok bool, ref HeightReference) float64 {
	if !ok {
		if ref != HeightReferenceNone {
			warnHeightRefOnce.Do(func() {
				Logger().Warn("stripe: height reference ignored because height is unset")
			})
		}
		return 0
	}
	if ref == HeightReferenceClampToGround {
		return 0
	}
	return h
}

// resolveExtrudedHeight maps a sampled extrusion height through its
// reference. ok=false means the shape does not extrude. A clamped extrusion
// resolves to clampPendingHeight until the terrain minimum is substituted.
func resolveExtrudedHeight(h float64, ok bool, ref HeightReference) (float64, bool) {
	if !ok {
		if ref != HeightReferenceNone {
			warnExtrudedRefOnce.Do(func() {
				Logger().Warn("stripe: extruded height reference ignored because extruded height is unset")
			})
		}
		return 0, false
	}
	if ref == HeightReferenceClampToGround {
		return clampPendingHeight, true
	}
	return h, true
}
