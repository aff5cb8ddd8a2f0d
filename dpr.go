package imgixurl

// PixelDensity single device pixel ratio option
type PixelDensity interface {
	dprParams() []Param
}

type dprOpt int

func (o dprOpt) dprParams() []Param {
	return []Param{{"dpr", itoa(int(o))}}
}

// DPR device pixel ratio the output is rendered at; repeated values
// comma-join onto one dpr parameter
func DPR(ratio int) PixelDensity {
	return dprOpt(ratio)
}

func encodePixelDensities(opts []PixelDensity) []Param {
	var ps []Param
	for _, o := range opts {
		ps = append(ps, o.dprParams()...)
	}
	return ps
}
