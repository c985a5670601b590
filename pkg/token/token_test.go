package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	got := New()

	require.True(t, strings.HasPrefix(got, Prefix))
	// jbc_ plus a 36-character uuid body.
	require.Len(t, got, len(Prefix)+36)
	assert.NotContains(t, got, "-")

	// Each of the uuid's four hyphen slots must hold a lowercase letter.
	body := got[len(Prefix):]
	for _, pos := range []int{8, 13, 18, 23} {
		c := body[pos]
		assert.Truef(t, c >= 'a' && c <= 'z', "position %d holds %q, want a lowercase letter", pos, c)
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := New()
		require.False(t, seen[got], "duplicate token %s", got)
		seen[got] = true
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix(New()))
	assert.True(t, HasPrefix("jbc_anything"))
	assert.False(t, HasPrefix("tok_anything"))
	assert.False(t, HasPrefix(""))
	assert.False(t, HasPrefix("JBC_uppercase"))
}
