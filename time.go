package stripe

import "math"

// Time is an instant on the scene clock, measured in seconds. The zero value
// is the moment the scene starts; negative values lie before it.
type Time float64

// Epoch is the canonical "beginning of time" instant. Static geometry is
// resolved by sampling every descriptor property at Epoch, so a sampled
// property contributes its earliest keyframe value.
const Epoch Time = -math.MaxFloat64

// Valid reports whether t is a usable instant. NaN times poison comparisons
// and interpolation, so sampling rejects them.
func (t Time) Valid() bool { return !math.IsNaN(float64(t)) }

// Seconds returns t as a plain second count.
func (t Time) Seconds() float64 { return float64(t) }

// Add returns t shifted by d seconds.
func (t Time) Add(d float64) Time { return t + Time(d) }

// Interval is a half-open time span [Start, Stop).
type Interval struct {
	Start Time
	Stop  Time
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t Time) bool { return t >= iv.Start && t < iv.Stop }

// Empty reports whether the interval spans no time at all.
func (iv Interval) Empty() bool { return iv.Stop <= iv.Start }
