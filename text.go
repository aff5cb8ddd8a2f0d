package imgixurl

import "encoding/base64"

// Text single text overlay option
type Text interface {
	textParams() []Param
}

type textOpt struct {
	key   string
	value string
}

func (o textOpt) textParams() []Param {
	return []Param{{o.key, o.value}}
}

// TextContent the overlay text itself
func TextContent(s string) Text {
	return textOpt{"txt", s}
}

const (
	// positions accepted by TextAlignVertical
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	// positions accepted by TextAlignHorizontal
	AlignTop    = "top"
	AlignMiddle = "middle"
	AlignBottom = "bottom"
)

// TextAlignVertical place the overlay along the vertical axis, one of
// AlignLeft, AlignCenter, AlignRight; combines with TextAlignHorizontal on
// the shared txtalign parameter
func TextAlignVertical(pos string) Text {
	return textOpt{"txtalign", pos}
}

// TextAlignHorizontal place the overlay along the horizontal axis, one of
// AlignTop, AlignMiddle, AlignBottom
func TextAlignHorizontal(pos string) Text {
	return textOpt{"txtalign", pos}
}

const (
	ClipStart    = "start"
	ClipMiddle   = "middle"
	ClipEnd      = "end"
	ClipEllipsis = "ellipsis"
)

// TextClip clip behavior when the overlay exceeds its area
func TextClip(mode string) Text {
	return textOpt{"txtclip", mode}
}

type textColorOpt struct {
	c Color
}

func (o textColorOpt) textParams() []Param {
	return []Param{{"txtclr", o.c.HexAlpha()}}
}

// TextColor overlay text color
func TextColor(c Color) Text {
	return textColorOpt{c}
}

const (
	FontSerif     = "serif"
	FontSansSerif = "sans-serif"
	FontMonospace = "monospace"
	FontCursive   = "cursive"
	FontFantasy   = "fantasy"
)

// TextFont CSS font family keyword
func TextFont(family string) Text {
	return textOpt{"txtfont", family}
}

// TextTypeface free-form typeface name, base64 encoded under txtfont64
func TextTypeface(name string) Text {
	return textOpt{"txtfont64", base64.URLEncoding.EncodeToString([]byte(name))}
}

// font styles; share the txtfont parameter with TextFont keywords and
// comma-join when combined
var (
	TextBold   Text = textOpt{"txtfont", "bold"}
	TextItalic Text = textOpt{"txtfont", "italic"}
)

// TextFontSize overlay font size in pixels
func TextFontSize(px int) Text {
	return textOpt{"txtsize", itoa(px)}
}

// ligature substitution levels
const (
	LigaturesRequired = 0
	LigaturesCommon   = 1
	LigaturesAll      = 2
)

// TextLigatures ligature substitution level, one of LigaturesRequired,
// LigaturesCommon, LigaturesAll
func TextLigatures(level int) Text {
	return textOpt{"txtlig", itoa(clamp(0, 2, level))}
}

type textOutlineOpt struct {
	width int
	c     Color
}

func (o textOutlineOpt) textParams() []Param {
	return []Param{{"txtline", itoa(o.width)}, {"txtlineclr", o.c.HexAlpha()}}
}

// TextOutline outline width in pixels plus outline color
func TextOutline(width int, c Color) Text {
	return textOutlineOpt{width, c}
}

// TextPadding padding around the overlay in pixels
func TextPadding(px int) Text {
	return textOpt{"txtpad", itoa(px)}
}

// TextShadow shadow strength, 0 to 10
func TextShadow(v float64) Text {
	return textOpt{"txtshad", ftoa(clamp(0, 10, v))}
}

// TextWidth wrap width in pixels
func TextWidth(px int) Text {
	return textOpt{"txtwidth", itoa(px)}
}

func encodeTexts(opts []Text) []Param {
	var ps []Param
	for _, o := range opts {
		ps = append(ps, o.textParams()...)
	}
	return ps
}
