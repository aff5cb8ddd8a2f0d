package imgixurl

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStripsQueryAndFragment(t *testing.T) {
	ref, err := New("https://example.com/img.jpg?old=1#frag")
	require.NoError(t, err)
	out := ref.String()
	assert.Equal(t, "https://example.com/img.jpg?auto=", out)
	assert.NotContains(t, out, "old")
	assert.NotContains(t, out, "frag")
}

func TestNewError(t *testing.T) {
	_, err := New("://missing-scheme")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "imgixurl:")
}

func TestFromURLLeavesInputUntouched(t *testing.T) {
	u, err := url.Parse("https://example.com/img.jpg?old=1#frag")
	require.NoError(t, err)
	ref := FromURL(u)
	assert.Equal(t, "https://example.com/img.jpg?auto=", ref.String())
	assert.Equal(t, "old=1", u.RawQuery)
	assert.Equal(t, "frag", u.Fragment)
}

func TestGenerateEndToEnd(t *testing.T) {
	ref, err := New("https://example.com/img.jpg?old=1#frag")
	require.NoError(t, err)
	ref = ref.Size(Height(200), Width(200)).Adjust(Brightness(150))
	assert.Equal(t, []Param{
		{"w", "200"},
		{"h", "200"},
		{"bri", "100"},
		{"auto", ""},
	}, ref.Params())
	assert.Equal(t, "https://example.com/img.jpg?w=200&h=200&bri=100&auto=", ref.String())
}

func TestGenerateFamilyOrder(t *testing.T) {
	ref, err := New("https://example.com/img.jpg")
	require.NoError(t, err)
	ref = ref.
		PixelDensity(DPR(2)).
		Format(Quality(75)).
		Text(TextContent("x")).
		Stylize(Sepia(50)).
		Auto(AutoCompress).
		Adjust(Contrast(10)).
		Rotation(Rotate(90)).
		Size(Width(100))
	assert.Equal(t,
		"https://example.com/img.jpg?w=100&rot=90&con=10&auto=compress&sepia=50&txt=x&q=75&dpr=2",
		ref.String())
}

// within one family, newer options come first; within one batch, the fold
// leaves the last argument newest
func TestGenerateNewestFirst(t *testing.T) {
	ref, err := New("https://example.com/img.jpg")
	require.NoError(t, err)

	chained := ref.Size(Width(100)).Size(Width(200))
	assert.Equal(t, []Param{
		{"w", "200,100"},
		{"auto", ""},
	}, chained.Params())

	batch := ref.Size(Width(100), Width(200))
	assert.Equal(t, chained.Params(), batch.Params())
}

func TestGenerateIdempotent(t *testing.T) {
	ref, err := New("https://example.com/img.jpg")
	require.NoError(t, err)
	ref = ref.Size(Width(300), Crop(CropEntropy)).Auto(AutoFormat)
	assert.Equal(t, ref.String(), ref.String())
	assert.Equal(t, ref.Params(), ref.Params())
}

func TestBuilderImmutable(t *testing.T) {
	base, err := New("https://example.com/img.jpg")
	require.NoError(t, err)
	base = base.Size(Width(100))
	before := base.String()

	derived := base.Adjust(Brightness(20)).Size(Height(50))
	assert.Equal(t, before, base.String())
	assert.NotEqual(t, before, derived.String())

	other := base.Size(Height(80))
	assert.Equal(t, before, base.String())
	assert.NotEqual(t, derived.String(), other.String())
}

func TestURLWithPort(t *testing.T) {
	ref, err := New("http://localhost:8080/images/cat.png")
	require.NoError(t, err)
	ref = ref.Size(Width(64))
	assert.Equal(t, "http://localhost:8080/images/cat.png?w=64&auto=", ref.String())
}
