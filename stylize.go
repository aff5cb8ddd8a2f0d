package imgixurl

import "math"

// Stylize single stylization effect option
type Stylize interface {
	stylizeParams() []Param
}

type duotoneOpt struct {
	a, b  Color
	alpha float64
}

func (o duotoneOpt) stylizeParams() []Param {
	return []Param{
		{"duotone", o.a.Hex() + "," + o.b.Hex()},
		{"duotone-alpha", itoa(int(math.Round(o.alpha * 100)))},
	}
}

// Duotone map shadows onto one color and highlights onto another, blended
// at the given 0-1 strength
func Duotone(a, b Color, alpha float64) Stylize {
	return duotoneOpt{a, b, clamp(0, 1, alpha)}
}

type stylizeOpt struct {
	key string
	v   float64
}

func (o stylizeOpt) stylizeParams() []Param {
	return []Param{{o.key, ftoa(o.v)}}
}

// GaussianBlur apply gaussian blur, 0 to 2000
func GaussianBlur(v float64) Stylize {
	return stylizeOpt{"blur", clamp(0, 2000, v)}
}

// Blur alias of GaussianBlur
func Blur(v float64) Stylize {
	return GaussianBlur(v)
}

// Halftone apply a halftone effect, 0 to 100
func Halftone(v float64) Stylize {
	return stylizeOpt{"htn", clamp(0, 100, v)}
}

type monochromeOpt struct {
	c Color
}

func (o monochromeOpt) stylizeParams() []Param {
	return []Param{{"mono", o.c.HexAlpha()}}
}

// Monochrome tint the whole image to a single color
func Monochrome(c Color) Stylize {
	return monochromeOpt{c}
}

// Pixelate apply a pixelation effect, 0 to 100
func Pixelate(v float64) Stylize {
	return stylizeOpt{"px", clamp(0, 100, v)}
}

// Sepia apply a sepia tone, 0 to 100
func Sepia(v float64) Stylize {
	return stylizeOpt{"sepia", clamp(0, 100, v)}
}

func encodeStylizes(opts []Stylize) []Param {
	var ps []Param
	for _, o := range opts {
		ps = append(ps, o.stylizeParams()...)
	}
	return ps
}
