package stripe

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Property is a time-indexed value source. Implementations report whether
// the value they yield is the same at every instant, which is what the
// updater uses to decide between static and dynamic geometry resolution.
//
// A nil Property means "unset": the helpers below treat it as undefined at
// every time and constant over time.
type Property[T any] interface {
	// At returns the value at t. ok is false when the property has no
	// value at that instant.
	At(t Time) (value T, ok bool)

	// IsConstant reports whether At yields the same value for every valid t.
	IsConstant() bool
}

// ValueOrDefault samples p at t, substituting def when p is nil or has no
// value at t.
func ValueOrDefault[T any](p Property[T], t Time, def T) T {
	if p == nil {
		return def
	}
	if v, ok := p.At(t); ok {
		return v
	}
	return def
}

// ValueOrUndefined samples p at t. A nil p is undefined at every time.
func ValueOrUndefined[T any](p Property[T], t Time) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return p.At(t)
}

// IsConstant reports whether p never changes over time. An unset property
// counts as constant.
func IsConstant[T any](p Property[T]) bool {
	return p == nil || p.IsConstant()
}

// Constant is a Property that yields the same value at every instant.
type Constant[T any] struct {
	Value T
}

// Const wraps a value in a Constant property.
func Const[T any](v T) Constant[T] { return Constant[T]{Value: v} }

// At returns the wrapped value for any valid t.
func (c Constant[T]) At(t Time) (T, bool) {
	if !t.Valid() {
		var zero T
		return zero, false
	}
	return c.Value, true
}

// IsConstant always reports true.
func (Constant[T]) IsConstant() bool { return true }

// Keyframe pairs an instant with the value the property takes there.
type Keyframe[T any] struct {
	Time  Time
	Value T
}

// LerpFunc blends a toward b by the fraction s in [0, 1].
type LerpFunc[T any] func(a, b T, s float64) T

// Sampled is a keyframed Property. It holds the first keyframe's value
// before the first keyframe and the last keyframe's value after the last.
// Between keyframes the lerp function interpolates; with a nil lerp the
// earlier keyframe's value holds until the next one.
type Sampled[T any] struct {
	frames []Keyframe[T]
	lerp   LerpFunc[T]
}

// NewSampled builds a Sampled property from keyframes, which need not be
// ordered. The keyframes are copied.
func NewSampled[T any](frames []Keyframe[T], lerp LerpFunc[T]) *Sampled[T] {
	fs := make([]Keyframe[T], len(frames))
	copy(fs, frames)
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].Time < fs[j].Time })
	return &Sampled[T]{frames: fs, lerp: lerp}
}

// At samples the keyframe track at t.
func (s *Sampled[T]) At(t Time) (T, bool) {
	var zero T
	if len(s.frames) == 0 || !t.Valid() {
		return zero, false
	}
	if first := s.frames[0]; t <= first.Time {
		return first.Value, true
	}
	if last := s.frames[len(s.frames)-1]; t >= last.Time {
		return last.Value, true
	}
	// First frame strictly after t; its predecessor is at or before t.
	i := sort.Search(len(s.frames), func(i int) bool { return s.frames[i].Time > t })
	a, b := s.frames[i-1], s.frames[i]
	if s.lerp == nil || a.Time == b.Time {
		return a.Value, true
	}
	f := float64(t-a.Time) / float64(b.Time-a.Time)
	return s.lerp(a.Value, b.Value, f), true
}

// IsConstant reports true only for tracks with at most one keyframe.
func (s *Sampled[T]) IsConstant() bool { return len(s.frames) <= 1 }

// CompositeEntry scopes an inner property to an interval.
type CompositeEntry[T any] struct {
	Interval Interval
	Value    Property[T]
}

// Composite selects among interval-scoped inner properties. The first entry
// whose interval contains the sample time wins; outside every interval the
// property is undefined.
type Composite[T any] struct {
	entries []CompositeEntry[T]
}

// NewComposite builds a Composite property. The entries are copied.
func NewComposite[T any](entries ...CompositeEntry[T]) *Composite[T] {
	es := make([]CompositeEntry[T], len(entries))
	copy(es, entries)
	return &Composite[T]{entries: es}
}

// At samples the entry covering t, if any.
func (c *Composite[T]) At(t Time) (T, bool) {
	if t.Valid() {
		for _, e := range c.entries {
			if e.Interval.Contains(t) {
				return ValueOrUndefined(e.Value, t)
			}
		}
	}
	var zero T
	return zero, false
}

// IsConstant reports true only for an empty composite: any entry can change
// the value at its interval boundary.
func (c *Composite[T]) IsConstant() bool { return len(c.entries) == 0 }

// LerpFloat64 linearly interpolates between two scalars.
func LerpFloat64(a, b float64, s float64) float64 { return a + (b-a)*s }

// LerpVec3 linearly interpolates between two points component-wise.
func LerpVec3(a, b mgl64.Vec3, s float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(s))
}
