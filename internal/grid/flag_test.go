package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlag(t *testing.T) {
	for _, tok := range []string{"✔", "true", "True", "1", "si", "Sí"} {
		v, ok := ParseFlag(tok)
		assert.True(t, ok, tok)
		assert.True(t, v, tok)
	}
	for _, tok := range []string{"✖", "false", "False", "0", "no", "No"} {
		v, ok := ParseFlag(tok)
		assert.True(t, ok, tok)
		assert.False(t, v, tok)
	}
	for _, tok := range []string{"TRUE", "yes", "sí", "2", "x"} {
		_, ok := ParseFlag(tok)
		assert.False(t, ok, tok)
	}
}

func TestFlagMark_RoundTrips(t *testing.T) {
	for _, b := range []bool{true, false} {
		v, ok := ParseFlag(FlagMark(b))
		assert.True(t, ok)
		assert.Equal(t, b, v)
	}
}
