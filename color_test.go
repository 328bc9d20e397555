package stripe

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "opaque red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     Transparent,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red premultiplies",
			c:     Color{1, 0, 0, 0.5},
			wantR: 32767, wantG: 0, wantB: 0, wantA: 32767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			// Allow ±1 tolerance for floating point
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestColor_Roundtrip(t *testing.T) {
	// Color → premultiplied color.Color → FromColor → Color
	original := Color{0.8, 0.3, 0.5, 0.9}
	r, g, b, a := original.RGBA()
	roundtripped := FromColor(color.RGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(a),
	})
	const tolerance = 0.001
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v → %v", original, roundtripped)
	}
}

func TestFromColor_ZeroAlpha(t *testing.T) {
	if got := FromColor(color.RGBA64{}); got != (Color{}) {
		t.Errorf("FromColor(zero alpha) = %v, want zero color", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"short rgb", "f00", Red},
		{"short rgb with hash", "#0f0", Green},
		{"short rgba", "00ff", Color{0, 0, 1, 1}},
		{"long rgb", "ff0000", Red},
		{"long rgb with hash", "#0000ff", Blue},
		{"long rgba", "#ffffff80", Color{1, 1, 1, float64(0x80) / 255}},
		{"uppercase", "FF0000", Red},
		{"malformed length yields opaque black", "ff00f", Color{0, 0, 0, 1}},
		{"empty yields opaque black", "", Color{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColor_Lerp(t *testing.T) {
	got := Red.Lerp(Blue, 0.5)
	want := Color{0.5, 0, 0.5, 1}
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
	if got := LerpColor(Red, Blue, 0); got != Red {
		t.Errorf("LerpColor(s=0) = %v, want red", got)
	}
	if got := LerpColor(Red, Blue, 1); got != Blue {
		t.Errorf("LerpColor(s=1) = %v, want blue", got)
	}
}

func TestColor_Float32s(t *testing.T) {
	got := Color{0.25, 0.5, 2, -1}.Float32s()
	want := [4]float32{0.25, 0.5, 1, 0}
	if got != want {
		t.Errorf("Float32s() = %v, want %v (out-of-range channels clamp)", got, want)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
