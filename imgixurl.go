// Package imgixurl builds image transformation URLs for an imgix-style
// rendering API. An ImageRef value wraps a base image URL and accumulates
// typed transformation options; rendering encodes them into the service's
// query parameter grammar. No requests are made and no pixels are touched,
// the package only produces URLs the service understands.
package imgixurl

import (
	"fmt"
	"net/url"
)

// ImageRef immutable image reference: a base URL plus accumulated
// transformation options per family, newest first. Builder methods return
// derived values and never mutate the receiver, so an ImageRef can be
// shared freely across goroutines.
type ImageRef struct {
	base url.URL

	size     []Size
	rotation []Rotation
	adjust   []Adjustment
	auto     []Auto
	stylize  []Stylize
	text     []Text
	format   []Format
	density  []PixelDensity
}

// New image reference from a raw base URL; any query and fragment are
// discarded. The only failure mode is an unparseable URL, propagated from
// net/url
func New(rawURL string) (ImageRef, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ImageRef{}, fmt.Errorf("imgixurl: parse base url: %w", err)
	}
	return FromURL(u), nil
}

// FromURL image reference from a parsed base URL; any query and fragment
// are discarded and the input is left unmodified
func FromURL(u *url.URL) ImageRef {
	base := *u
	base.ForceQuery = false
	base.RawQuery = ""
	base.Fragment = ""
	base.RawFragment = ""
	return ImageRef{base: base}
}

// Size apply size options; each option prepends onto the family list, so
// within one call the last argument ends up newest
func (r ImageRef) Size(opts ...Size) ImageRef {
	for _, o := range opts {
		r.size = prepend(r.size, o)
	}
	return r
}

// Rotation apply rotate, flip or orient options
func (r ImageRef) Rotation(opts ...Rotation) ImageRef {
	for _, o := range opts {
		r.rotation = prepend(r.rotation, o)
	}
	return r
}

// Adjust apply color and tone adjustment options
func (r ImageRef) Adjust(opts ...Adjustment) ImageRef {
	for _, o := range opts {
		r.adjust = prepend(r.adjust, o)
	}
	return r
}

// Auto apply automatic optimization keywords
func (r ImageRef) Auto(opts ...Auto) ImageRef {
	for _, o := range opts {
		r.auto = prepend(r.auto, o)
	}
	return r
}

// Stylize apply stylization effect options
func (r ImageRef) Stylize(opts ...Stylize) ImageRef {
	for _, o := range opts {
		r.stylize = prepend(r.stylize, o)
	}
	return r
}

// Text apply text overlay options
func (r ImageRef) Text(opts ...Text) ImageRef {
	for _, o := range opts {
		r.text = prepend(r.text, o)
	}
	return r
}

// Format apply output format options
func (r ImageRef) Format(opts ...Format) ImageRef {
	for _, o := range opts {
		r.format = prepend(r.format, o)
	}
	return r
}

// PixelDensity apply device pixel ratio options
func (r ImageRef) PixelDensity(opts ...PixelDensity) ImageRef {
	for _, o := range opts {
		r.density = prepend(r.density, o)
	}
	return r
}
