package stripe

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	xdraw "golang.org/x/image/draw"
)

// Material describes how a shape's surface is shaded.
// This is a sealed interface - only types in this package implement it.
//
// Supported material kinds:
//   - ColorMaterial: a single, possibly time-varying color
//   - TexturedMaterial: an image repeated across the surface
//
// Consumers branch on the concrete kind with a type switch:
//
//	switch m := material.(type) {
//	case stripe.ColorMaterial:
//		// per-instance color path
//	case stripe.TexturedMaterial:
//		// texture coordinate path
//	}
type Material interface {
	// materialMarker is an unexported method that seals this interface.
	// Only types in this package can implement Material.
	materialMarker()

	// IsConstant reports whether the material looks the same at every
	// instant.
	IsConstant() bool
}

// ColorMaterial shades the surface with a single color.
type ColorMaterial struct {
	// Color is the surface color. Unset means opaque white.
	Color Property[Color]
}

// materialMarker implements the sealed Material interface.
func (ColorMaterial) materialMarker() {}

// IsConstant implements Material.
func (m ColorMaterial) IsConstant() bool { return IsConstant(m.Color) }

// SolidColor creates a ColorMaterial with a constant color.
func SolidColor(c Color) ColorMaterial {
	return ColorMaterial{Color: Const(c)}
}

// TexturedMaterial shades the surface with an image repeated across it.
type TexturedMaterial struct {
	// Image is the texture source.
	Image Property[image.Image]
	// Repeat is how many times the image tiles along and across the
	// stripe. Unset means once in each direction.
	Repeat Property[mgl64.Vec2]
}

// materialMarker implements the sealed Material interface.
func (TexturedMaterial) materialMarker() {}

// IsConstant implements Material.
func (m TexturedMaterial) IsConstant() bool {
	return IsConstant(m.Image) && IsConstant(m.Repeat)
}

// defaultMaterial applies when a descriptor leaves its material unset.
var defaultMaterial Material = SolidColor(White)

// materialOf returns the descriptor's material, substituting the opaque
// white default.
func materialOf(d *ShapeDescriptor) Material {
	if d == nil || d.Material == nil {
		return defaultMaterial
	}
	return d.Material
}

// NormalizeTexture converts an image to the tightly packed RGBA form texture
// uploads expect, downscaling so that neither dimension exceeds maxDim.
// Upscaling never happens. A nil image or empty bounds yields a single white
// texel.
func NormalizeTexture(img image.Image, maxDim int) *image.RGBA {
	if img == nil || img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		px := image.NewRGBA(image.Rect(0, 0, 1, 1))
		px.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return px
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
