package imgixurl

import "net/url"

// rawParams walk the families in their fixed serialization order; the order
// is observable in the output and part of the contract
func (r ImageRef) rawParams() []Param {
	var ps []Param
	ps = append(ps, encodeSizes(r.size)...)
	ps = append(ps, encodeRotations(r.rotation)...)
	ps = append(ps, encodeAdjustments(r.adjust)...)
	ps = append(ps, encodeAutos(r.auto)...)
	ps = append(ps, encodeStylizes(r.stylize)...)
	ps = append(ps, encodeTexts(r.text)...)
	ps = append(ps, encodeFormats(r.format)...)
	ps = append(ps, encodePixelDensities(r.density)...)
	return ps
}

// Params assembled query parameters in final order, grouped but not yet
// percent-encoded
func (r ImageRef) Params() []Param {
	return groupParams(r.rawParams())
}

// URL render the transformation URL; the query component is always present
// since the auto parameter is always emitted
func (r ImageRef) URL() *url.URL {
	u := r.base
	u.RawQuery = encodeQuery(r.Params())
	return &u
}

// String render the transformation URL as a string
func (r ImageRef) String() string {
	return r.URL().String()
}
