package imgixurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	ref, err := New("https://example.com/a.jpg")
	require.NoError(t, err)
	ref = ref.Size(Width(10))

	assert.Equal(t,
		`<img src="https://example.com/a.jpg?w=10&amp;auto=">`,
		ref.Tag())

	assert.Equal(t,
		`<img src="https://example.com/a.jpg?w=10&amp;auto=" alt="A &amp; B" loading="lazy">`,
		ref.Tag(Attr{"alt", "A & B"}, Attr{"loading", "lazy"}))
}

// attributes pass through as given, even a duplicate src
func TestTagDoesNotDeduplicate(t *testing.T) {
	ref, err := New("https://example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t,
		`<img src="https://example.com/a.jpg?auto=" src="other">`,
		ref.Tag(Attr{"src", "other"}))
}

func TestSrcset(t *testing.T) {
	ref, err := New("https://demo.imgix.net/img.png")
	require.NoError(t, err)
	ref = ref.Size(Width(100))
	assert.Equal(t,
		"https://demo.imgix.net/img.png?w=100&auto=&dpr=1 1x, "+
			"https://demo.imgix.net/img.png?w=100&auto=&dpr=2 2x",
		ref.Srcset(1, 2))
	// srcset derivation leaves the reference untouched
	assert.Equal(t, "https://demo.imgix.net/img.png?w=100&auto=", ref.String())
}
