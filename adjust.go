package imgixurl

// Adjustment single color or tone adjustment option
type Adjustment interface {
	adjustParams() []Param
}

type adjustOpt struct {
	key string
	v   float64
}

func (o adjustOpt) adjustParams() []Param {
	return []Param{{o.key, ftoa(o.v)}}
}

// Brightness adjust brightness, -100 to 100
func Brightness(v float64) Adjustment {
	return adjustOpt{"bri", clamp(-100, 100, v)}
}

// Contrast adjust contrast, -100 to 100
func Contrast(v float64) Adjustment {
	return adjustOpt{"con", clamp(-100, 100, v)}
}

// Exposure adjust exposure, -100 to 100
func Exposure(v float64) Adjustment {
	return adjustOpt{"exp", clamp(-100, 100, v)}
}

// Gamma adjust gamma, -100 to 100
func Gamma(v float64) Adjustment {
	return adjustOpt{"gam", clamp(-100, 100, v)}
}

// Highlight adjust highlight tones, -100 to 100
func Highlight(v float64) Adjustment {
	return adjustOpt{"high", clamp(-100, 100, v)}
}

// HueShift rotate all hues, 0 to 359 degrees
func HueShift(v float64) Adjustment {
	return adjustOpt{"hue", clamp(0, 359, v)}
}

// Saturation adjust saturation, -100 to 100
func Saturation(v float64) Adjustment {
	return adjustOpt{"sat", clamp(-100, 100, v)}
}

// Shadow adjust shadow tones, -100 to 100
func Shadow(v float64) Adjustment {
	return adjustOpt{"shad", clamp(-100, 100, v)}
}

// Sharpen sharpen using luminance only, 0 to 100
func Sharpen(v float64) Adjustment {
	return adjustOpt{"sharp", clamp(0, 100, v)}
}

// Vibrance adjust vibrance, -100 to 100
func Vibrance(v float64) Adjustment {
	return adjustOpt{"vib", clamp(-100, 100, v)}
}

type invertOpt struct{}

func (invertOpt) adjustParams() []Param {
	return []Param{{"invert", "true"}}
}

// Invert invert all colors
var Invert Adjustment = invertOpt{}

type unsharpMaskOpt struct {
	amount, radius float64
}

func (o unsharpMaskOpt) adjustParams() []Param {
	return []Param{{"usm", ftoa(o.amount)}, {"usmrad", ftoa(o.radius)}}
}

// UnsharpMask sharpen using an unsharp mask with the given amount and radius
func UnsharpMask(amount, radius float64) Adjustment {
	return unsharpMaskOpt{amount, radius}
}

func encodeAdjustments(opts []Adjustment) []Param {
	var ps []Param
	for _, o := range opts {
		ps = append(ps, o.adjustParams()...)
	}
	return ps
}
