package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaURL(t *testing.T) {
	base := "http://127.0.0.1:8080"
	prefix := "/media"

	assert.Nil(t, MediaURL(base, prefix, nil))

	empty := ""
	assert.Nil(t, MediaURL(base, prefix, &empty))

	relative := "documents/cv.pdf"
	got := MediaURL(base, prefix, &relative)
	require.NotNil(t, got)
	assert.Equal(t, "http://127.0.0.1:8080/media/documents/cv.pdf", *got)

	// Leading slashes and a trailing slash on the base collapse cleanly.
	slashed := "/images/avatar.png"
	got = MediaURL(base+"/", prefix, &slashed)
	require.NotNil(t, got)
	assert.Equal(t, "http://127.0.0.1:8080/media/images/avatar.png", *got)

	absolute := "https://cdn.example.com/avatar.png"
	got = MediaURL(base, prefix, &absolute)
	require.NotNil(t, got)
	assert.Equal(t, absolute, *got)
}
