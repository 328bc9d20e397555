package stripe

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMaterial_IsConstant(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	tests := []struct {
		name string
		m    Material
		want bool
	}{
		{"solid color", SolidColor(Red), true},
		{"unset color", ColorMaterial{}, true},
		{
			"keyframed color",
			ColorMaterial{Color: NewSampled([]Keyframe[Color]{
				{Time: 0, Value: Red},
				{Time: 1, Value: Blue},
			}, LerpColor)},
			false,
		},
		{
			"constant texture",
			TexturedMaterial{Image: Const[image.Image](img)},
			true,
		},
		{
			"animated repeat",
			TexturedMaterial{
				Image: Const[image.Image](img),
				Repeat: NewSampled([]Keyframe[mgl64.Vec2]{
					{Time: 0, Value: mgl64.Vec2{1, 1}},
					{Time: 1, Value: mgl64.Vec2{4, 1}},
				}, nil),
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsConstant(); got != tt.want {
				t.Errorf("IsConstant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialOf_Default(t *testing.T) {
	if got := materialOf(nil); got != defaultMaterial {
		t.Errorf("materialOf(nil) = %v, want the white default", got)
	}
	if got := materialOf(&ShapeDescriptor{}); got != defaultMaterial {
		t.Errorf("materialOf(unset) = %v, want the white default", got)
	}

	cm, ok := defaultMaterial.(ColorMaterial)
	if !ok {
		t.Fatalf("default material is %T, want ColorMaterial", defaultMaterial)
	}
	if got := ValueOrDefault(cm.Color, 0, Black); got != White {
		t.Errorf("default material color = %v, want white", got)
	}

	set := &ShapeDescriptor{Material: SolidColor(Green)}
	if got := materialOf(set); got != Material(SolidColor(Green)) {
		t.Errorf("materialOf(set) = %v, want the descriptor's material", got)
	}
}

func TestNormalizeTexture(t *testing.T) {
	t.Run("nil image yields a white texel", func(t *testing.T) {
		got := NormalizeTexture(nil, 0)
		if got.Bounds().Dx() != 1 || got.Bounds().Dy() != 1 {
			t.Fatalf("bounds = %v, want 1x1", got.Bounds())
		}
		if got.RGBAAt(0, 0) != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("texel = %v, want opaque white", got.RGBAAt(0, 0))
		}
	})

	t.Run("small images keep their size", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 4, 6))
		got := NormalizeTexture(src, 2048)
		if got.Bounds().Dx() != 4 || got.Bounds().Dy() != 6 {
			t.Errorf("bounds = %v, want 4x6", got.Bounds())
		}
	})

	t.Run("wide images downscale preserving aspect", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 100, 50))
		got := NormalizeTexture(src, 10)
		if got.Bounds().Dx() != 10 || got.Bounds().Dy() != 5 {
			t.Errorf("bounds = %v, want 10x5", got.Bounds())
		}
	})

	t.Run("tall images downscale preserving aspect", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 50, 100))
		got := NormalizeTexture(src, 10)
		if got.Bounds().Dx() != 5 || got.Bounds().Dy() != 10 {
			t.Errorf("bounds = %v, want 5x10", got.Bounds())
		}
	})

	t.Run("extreme aspect never collapses to zero", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 1, 1000))
		got := NormalizeTexture(src, 10)
		if got.Bounds().Dx() != 1 || got.Bounds().Dy() != 10 {
			t.Errorf("bounds = %v, want 1x10", got.Bounds())
		}
	})

	t.Run("zero max keeps the source size", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 300, 200))
		got := NormalizeTexture(src, 0)
		if got.Bounds().Dx() != 300 || got.Bounds().Dy() != 200 {
			t.Errorf("bounds = %v, want 300x200", got.Bounds())
		}
	})

	t.Run("pixel values survive conversion", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				src.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
			}
		}
		got := NormalizeTexture(src, 2048)
		if px := got.RGBAAt(2, 2); px != (color.RGBA{10, 20, 30, 255}) {
			t.Errorf("texel = %v, want (10, 20, 30, 255)", px)
		}
	})
}
