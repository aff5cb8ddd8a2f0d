package imgixurl

import (
	"cmp"
	"net/url"
	"strconv"
	"strings"
)

// Param single query parameter destined for the rendition URL
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// groupParams merge params sharing a name into one comma-joined value,
// preserving first-seen order of distinct names
func groupParams(params []Param) []Param {
	grouped := make([]Param, 0, len(params))
	seen := make(map[string]int, len(params))
	for _, p := range params {
		if i, ok := seen[p.Name]; ok {
			grouped[i].Value += "," + p.Value
			continue
		}
		seen[p.Name] = len(grouped)
		grouped = append(grouped, p)
	}
	return grouped
}

// encodeQuery render params as a percent-encoded query string in order
func encodeQuery(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// clamp saturate v into [lo, hi]
func clamp[T cmp.Ordered](lo, hi, v T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// prepend copy list with v in front, leaving list untouched
func prepend[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
