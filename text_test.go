package imgixurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextParams(t *testing.T) {
	tests := []struct {
		name     string
		opt      Text
		expected []Param
	}{
		{"content", TextContent("Hello World"), []Param{{"txt", "Hello World"}}},
		{"align vertical", TextAlignVertical(AlignCenter), []Param{{"txtalign", "center"}}},
		{"align horizontal", TextAlignHorizontal(AlignBottom), []Param{{"txtalign", "bottom"}}},
		{"clip", TextClip(ClipEllipsis), []Param{{"txtclip", "ellipsis"}}},
		{
			name:     "color uses alpha prefixed hex",
			opt:      TextColor(RGBA(255, 0, 128, 0.5)),
			expected: []Param{{"txtclr", "80ff0080"}},
		},
		{"font keyword", TextFont(FontSansSerif), []Param{{"txtfont", "sans-serif"}}},
		{
			name:     "free form typeface base64 encodes under txtfont64",
			opt:      TextTypeface("American Typewriter"),
			expected: []Param{{"txtfont64", "QW1lcmljYW4gVHlwZXdyaXRlcg=="}},
		},
		{"bold", TextBold, []Param{{"txtfont", "bold"}}},
		{"italic", TextItalic, []Param{{"txtfont", "italic"}}},
		{"font size", TextFontSize(24), []Param{{"txtsize", "24"}}},
		{"ligatures required", TextLigatures(LigaturesRequired), []Param{{"txtlig", "0"}}},
		{"ligatures all", TextLigatures(LigaturesAll), []Param{{"txtlig", "2"}}},
		{"ligatures clamp", TextLigatures(5), []Param{{"txtlig", "2"}}},
		{
			name: "outline emits width and color",
			opt:  TextOutline(2, RGB(0, 0, 0)),
			expected: []Param{
				{"txtline", "2"},
				{"txtlineclr", "ff000000"},
			},
		},
		{"padding", TextPadding(10), []Param{{"txtpad", "10"}}},
		{"shadow", TextShadow(5), []Param{{"txtshad", "5"}}},
		{"shadow clamps to 10", TextShadow(15), []Param{{"txtshad", "10"}}},
		{"shadow clamps to 0", TextShadow(-3), []Param{{"txtshad", "0"}}},
		{"width", TextWidth(400), []Param{{"txtwidth", "400"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opt.textParams())
		})
	}
}

func TestTextAlignAxesShareKey(t *testing.T) {
	ref, err := New("https://example.com/img.jpg")
	assert.NoError(t, err)
	ref = ref.Text(TextContent("hi")).
		Text(TextAlignHorizontal(AlignMiddle)).
		Text(TextAlignVertical(AlignCenter))
	assert.Equal(t, []Param{
		{"auto", ""},
		{"txtalign", "center,middle"},
		{"txt", "hi"},
	}, ref.Params())
}

// a CSS keyword font and a style both land on txtfont and comma join when
// grouped; the value is passed through as-is
func TestTextFontStyleCollision(t *testing.T) {
	ref, err := New("https://example.com/img.jpg")
	assert.NoError(t, err)
	ref = ref.Text(TextBold).Text(TextFont(FontSerif))
	assert.Equal(t, []Param{
		{"auto", ""},
		{"txtfont", "serif,bold"},
	}, ref.Params())
}

func TestTextContentEscapesInURL(t *testing.T) {
	ref, err := New("https://example.com/img.jpg")
	assert.NoError(t, err)
	ref = ref.Text(TextContent("50% off & more"))
	assert.Equal(t,
		"https://example.com/img.jpg?auto=&txt=50%25+off+%26+more",
		ref.String())
}
