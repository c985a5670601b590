// Package token generates the opaque bearer credentials JobConnect hands out
// at login. The format is fixed for wire compatibility with existing clients:
// the literal "jbc_" prefix followed by a v4 UUID whose four hyphens are each
// replaced by an independently drawn random lowercase letter.
package token

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const Prefix = "jbc_"

const lowercase = "abcdefghijklmnopqrstuvwxyz"

func New() string {
	id := uuid.NewString()

	var b strings.Builder
	b.Grow(len(Prefix) + len(id))
	b.WriteString(Prefix)
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			b.WriteByte(randomLetter())
		} else {
			b.WriteByte(id[i])
		}
	}
	return b.String()
}

// HasPrefix reports whether raw carries the expected credential prefix.
func HasPrefix(raw string) bool {
	return strings.HasPrefix(raw, Prefix)
}

func randomLetter() byte {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(lowercase))))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to a fixed letter rather than panic mid-request.
		return 'x'
	}
	return lowercase[n.Int64()]
}
