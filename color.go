package flag3d

import (
	"image/color"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromRGBA8 returns a new Color from 8-bit components (0 - 255), like the ones stored in a GridMesh's color buffer.
func NewColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// ToRGBA8 returns the Color as 8-bit components, clamping each to the 0 - 255 range.
func (c Color) ToRGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// ToNRGBA converts the Color to an image/color NRGBA color, for use with Ebitengine's drawing functions.
func (c Color) ToNRGBA() color.NRGBA {
	r, g, b, a := c.ToRGBA8()
	return color.NRGBA{r, g, b, a}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	} else if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
