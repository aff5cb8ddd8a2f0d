package imgixurl

// Format single output format option
type Format interface {
	formatParams() []Param
}

type qualityOpt int

func (o qualityOpt) formatParams() []Param {
	return []Param{{"q", itoa(int(o))}}
}

// Quality output quality for lossy formats, valid 0 to 100; out-of-range
// values pass through to the service untouched
func Quality(q int) Format {
	return qualityOpt(q)
}

type losslessOpt bool

func (o losslessOpt) formatParams() []Param {
	v := "0"
	if o {
		v = "1"
	}
	return []Param{{"lossless", v}}
}

// Lossless toggle lossless encoding for formats that support it
func Lossless(on bool) Format {
	return losslessOpt(on)
}

func encodeFormats(opts []Format) []Param {
	var ps []Param
	for _, o := range opts {
		ps = append(ps, o.formatParams()...)
	}
	return ps
}
