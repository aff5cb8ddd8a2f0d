package imgixurl

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color 4-channel color with red, green, blue in [0, 255] and alpha in [0, 1],
// clamped at construction
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// RGB fully opaque color from 0-255 channels
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA color from 0-255 channels plus 0-1 alpha
func RGBA(r, g, b, a float64) Color {
	return Color{
		R: clamp(0, 255, r),
		G: clamp(0, 255, g),
		B: clamp(0, 255, b),
		A: clamp(0, 1, a),
	}
}

// FromColorful adapt a go-colorful color with the given 0-1 alpha
func FromColorful(c colorful.Color, alpha float64) Color {
	return RGBA(c.R*255, c.G*255, c.B*255, alpha)
}

// FromStdColor adapt a standard library color, preserving its alpha;
// fully transparent inputs carry no color information and map to
// transparent black
func FromStdColor(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RGBA(0, 0, 0, 0)
	}
	_, _, _, a := c.RGBA()
	return FromColorful(cf, float64(a)/0xffff)
}

// ParseHex fully opaque color from a "#rrggbb" hex string
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("imgixurl: parse color: %w", err)
	}
	return FromColorful(cf, 1), nil
}

// Hex render as 6 lowercase hex digits in RGB order, alpha dropped
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x",
		int(math.Round(c.R)), int(math.Round(c.G)), int(math.Round(c.B)))
}

// HexAlpha render as 8 lowercase hex digits with the alpha byte emitted
// before RGB
func (c Color) HexAlpha() string {
	return fmt.Sprintf("%02x%s", int(math.Round(c.A*255)), c.Hex())
}

// IsTransparent reports a zero alpha channel
func (c Color) IsTransparent() bool {
	return c.A == 0
}
