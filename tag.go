package imgixurl

import (
	"html"
	"strings"
)

// Attr passthrough attribute for Tag
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Tag render the reference as an img element. Caller attributes follow src
// in the given order and are passed through unmodified; they are not
// deduplicated against the generated src
func (r ImageRef) Tag(attrs ...Attr) string {
	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(html.EscapeString(r.String()))
	b.WriteByte('"')
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// Srcset render a dpr-based srcset attribute value with one entry per ratio
func (r ImageRef) Srcset(ratios ...int) string {
	entries := make([]string, len(ratios))
	for i, d := range ratios {
		entries[i] = r.PixelDensity(DPR(d)).String() + " " + itoa(d) + "x"
	}
	return strings.Join(entries, ", ")
}
