package imgixurl

import "strings"

// Auto automatic optimization keyword
type Auto interface {
	autoKeyword() string
}

type autoOpt string

func (o autoOpt) autoKeyword() string {
	return string(o)
}

// automatic optimization keywords
var (
	AutoCompress Auto = autoOpt("compress")
	AutoEnhance  Auto = autoOpt("enhance")
	AutoFormat   Auto = autoOpt("format")
	AutoRedEye   Auto = autoOpt("redeye")
)

// encodeAutos always yields exactly one auto parameter, empty-valued when no
// keywords were applied
func encodeAutos(opts []Auto) []Param {
	keywords := make([]string, len(opts))
	for i, o := range opts {
		keywords[i] = o.autoKeyword()
	}
	return []Param{{"auto", strings.Join(keywords, ",")}}
}
