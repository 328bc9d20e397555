package stripe

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDynamicGeometryUpdater_SetOptionsSamplesAtT(t *testing.T) {
	e := stripeEntity()
	e.Stripe.Width = NewSampled([]Keyframe[float64]{
		{Time: 0, Value: 5},
		{Time: 10, Value: 9},
	}, LerpFloat64)
	u := newUpdater(e, nil)

	dyn := u.DynamicUpdater()
	if dyn == nil {
		t.Fatal("DynamicUpdater() = nil for a keyframed width")
	}
	if err := dyn.SetOptions(7.5); err != nil {
		t.Fatalf("SetOptions(7.5) error = %v", err)
	}
	if got := dyn.Options().Width; got != 8 {
		t.Errorf("Options().Width = %v, want the interpolated value 8", got)
	}
	// The per-tick record is the dynamic updater's own; the owner's static
	// record stays untouched.
	if got := u.Options().Width; got != 0 {
		t.Errorf("owner Options().Width = %v, want 0", got)
	}
}

func TestDynamicGeometryUpdater_RebuildsPerTick(t *testing.T) {
	e := stripeEntity()
	e.Stripe.Width = NewSampled([]Keyframe[float64]{
		{Time: 0, Value: 5},
		{Time: 10, Value: 9},
	}, LerpFloat64)
	u := newUpdater(e, nil)
	dyn := u.DynamicUpdater()

	widths := make([]float64, 0, 2)
	for _, at := range []Time{0, 10} {
		if err := dyn.SetOptions(at); err != nil {
			t.Fatalf("SetOptions(%v) error = %v", at, err)
		}
		inst, err := dyn.CreateFillGeometryInstance(at)
		if err != nil {
			t.Fatalf("CreateFillGeometryInstance(%v) error = %v", at, err)
		}
		widths = append(widths, inst.Mesh.Bounds.Height())
	}
	// The across-track footprint tracks the sampled width tick by tick.
	if widths[0] != 5 || widths[1] != 9 {
		t.Errorf("footprint heights = %v, want [5 9]", widths)
	}
}

func TestDynamicGeometryUpdater_IsHidden(t *testing.T) {
	e := stripeEntity()
	e.Stripe.Width = NewComposite(CompositeEntry[float64]{
		Interval: Interval{Start: 0, Stop: 10},
		Value: NewSampled([]Keyframe[float64]{
			{Time: 0, Value: 5},
			{Time: 10, Value: 9},
		}, LerpFloat64),
	})
	u := newUpdater(e, nil)
	dyn := u.DynamicUpdater()
	if dyn == nil {
		t.Fatal("DynamicUpdater() = nil for a keyframed width")
	}

	if dyn.IsHidden(5) {
		t.Error("IsHidden(5) = true inside the width window")
	}
	if !dyn.IsHidden(15) {
		t.Error("IsHidden(15) = false after the width window ends")
	}
}

func TestDynamicGeometryUpdater_ComputeCenter(t *testing.T) {
	e := stripeEntity()
	e.Stripe.Positions = NewSampled([]Keyframe[[]mgl64.Vec3]{
		{Time: 0, Value: []mgl64.Vec3{{0, 0, 0}, {4, 0, 0}, {8, 0, 0}}},
		{Time: 10, Value: []mgl64.Vec3{{0, 20, 0}, {4, 20, 0}, {8, 20, 0}}},
	}, nil)
	e.Stripe.Width = Const(4.0)
	u := newUpdater(e, nil)
	dyn := u.DynamicUpdater()

	early, ok := dyn.ComputeCenter(5)
	if !ok || early != (mgl64.Vec3{4, 0, 0}) {
		t.Errorf("ComputeCenter(5) = (%v, %v), want ((4, 0, 0), true)", early, ok)
	}
	late, ok := dyn.ComputeCenter(10)
	if !ok || late != (mgl64.Vec3{4, 20, 0}) {
		t.Errorf("ComputeCenter(10) = (%v, %v), want ((4, 20, 0), true)", late, ok)
	}
}
