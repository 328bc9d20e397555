package stripe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestConstant_At(t *testing.T) {
	c := Const(42.0)

	if v, ok := c.At(0); !ok || v != 42 {
		t.Errorf("At(0) = (%v, %v), want (42, true)", v, ok)
	}
	if v, ok := c.At(Epoch); !ok || v != 42 {
		t.Errorf("At(Epoch) = (%v, %v), want (42, true)", v, ok)
	}
	if _, ok := c.At(Time(math.NaN())); ok {
		t.Error("At(NaN) reported a value")
	}
	if !c.IsConstant() {
		t.Error("IsConstant() = false")
	}
}

func TestValueOrDefault(t *testing.T) {
	if got := ValueOrDefault[float64](nil, 0, 7); got != 7 {
		t.Errorf("nil property = %v, want default 7", got)
	}
	if got := ValueOrDefault(Const(3.0), 0, 7); got != 3 {
		t.Errorf("constant property = %v, want 3", got)
	}
	if got := ValueOrDefault(Const(3.0), Time(math.NaN()), 7); got != 7 {
		t.Errorf("invalid time = %v, want default 7", got)
	}
}

func TestValueOrUndefined(t *testing.T) {
	if _, ok := ValueOrUndefined[int](nil, 0); ok {
		t.Error("nil property reported a value")
	}
	if v, ok := ValueOrUndefined(Const("x"), 0); !ok || v != "x" {
		t.Errorf("constant property = (%q, %v), want (x, true)", v, ok)
	}
}

func TestIsConstant(t *testing.T) {
	if !IsConstant[bool](nil) {
		t.Error("nil property not constant")
	}
	if !IsConstant(Const(1)) {
		t.Error("Constant not constant")
	}
	one := NewSampled([]Keyframe[float64]{{Time: 0, Value: 1}}, nil)
	if !IsConstant[float64](one) {
		t.Error("single-keyframe track not constant")
	}
	two := NewSampled([]Keyframe[float64]{{Time: 0, Value: 1}, {Time: 1, Value: 2}}, nil)
	if IsConstant[float64](two) {
		t.Error("two-keyframe track reported constant")
	}
}

func TestSampled_At(t *testing.T) {
	// Keyframes given out of order; NewSampled sorts them.
	s := NewSampled([]Keyframe[float64]{
		{Time: 10, Value: 30},
		{Time: 0, Value: 10},
	}, LerpFloat64)

	tests := []struct {
		name string
		at   Time
		want float64
	}{
		{"before first holds first", -5, 10},
		{"at first", 0, 10},
		{"midway interpolates", 5, 20},
		{"quarter interpolates", 2.5, 15},
		{"at last", 10, 30},
		{"after last holds last", 99, 30},
		{"at epoch holds first", Epoch, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.At(tt.at)
			if !ok || got != tt.want {
				t.Errorf("At(%v) = (%v, %v), want (%v, true)", tt.at, got, ok, tt.want)
			}
		})
	}

	if _, ok := s.At(Time(math.NaN())); ok {
		t.Error("At(NaN) reported a value")
	}
}

func TestSampled_NilLerpHolds(t *testing.T) {
	s := NewSampled([]Keyframe[float64]{
		{Time: 0, Value: 10},
		{Time: 10, Value: 30},
	}, nil)

	if got, _ := s.At(9.99); got != 10 {
		t.Errorf("At(9.99) = %v, want held value 10", got)
	}
	if got, _ := s.At(10); got != 30 {
		t.Errorf("At(10) = %v, want 30", got)
	}
}

func TestSampled_Empty(t *testing.T) {
	s := NewSampled[float64](nil, LerpFloat64)
	if _, ok := s.At(0); ok {
		t.Error("empty track reported a value")
	}
	if !s.IsConstant() {
		t.Error("empty track not constant")
	}
}

func TestSampled_CopiesInput(t *testing.T) {
	frames := []Keyframe[float64]{{Time: 0, Value: 1}, {Time: 10, Value: 2}}
	s := NewSampled(frames, nil)
	frames[0].Value = 99

	if got, _ := s.At(0); got != 1 {
		t.Errorf("At(0) = %v after caller mutation, want 1", got)
	}
}

func TestComposite_At(t *testing.T) {
	c := NewComposite(
		CompositeEntry[float64]{Interval: Interval{Start: 0, Stop: 10}, Value: Const(1.0)},
		CompositeEntry[float64]{Interval: Interval{Start: 5, Stop: 20}, Value: Const(2.0)},
	)

	tests := []struct {
		name   string
		at     Time
		want   float64
		wantOK bool
	}{
		{"first interval", 2, 1, true},
		{"overlap goes to first entry", 7, 1, true},
		{"second interval", 15, 2, true},
		{"boundary is half-open", 20, 0, false},
		{"outside all intervals", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.At(tt.at)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("At(%v) = (%v, %v), want (%v, %v)", tt.at, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if !NewComposite[float64]().IsConstant() {
		t.Error("empty composite not constant")
	}
	if c.IsConstant() {
		t.Error("populated composite reported constant")
	}
}

func TestLerpVec3(t *testing.T) {
	got := LerpVec3(mgl64.Vec3{0, 10, -4}, mgl64.Vec3{10, 20, 4}, 0.25)
	want := mgl64.Vec3{2.5, 12.5, -2}
	if got != want {
		t.Errorf("LerpVec3() = %v, want %v", got, want)
	}
}
