// Package color turns user-supplied color values into the normalized RGBA
// components uploaded to shaders.
package color

import (
	"image/color"
	"math"
)

// Color is an RGBA color with each component in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA builds a color from already normalized components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// FromStd converts a standard library color.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// Array returns the components in uniform upload order.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Levels returns the components scaled to 0..255.
func (c Color) Levels() [4]uint8 {
	return [4]uint8{level(c.R), level(c.G), level(c.B), level(c.A)}
}

// Opaque reports whether the alpha component is 1.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Std returns the color as a non-premultiplied standard color.
func (c Color) Std() color.NRGBA {
	l := c.Levels()
	return color.NRGBA{R: l[0], G: l[1], B: l[2], A: l[3]}
}

func level(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
