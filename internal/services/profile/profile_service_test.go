package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Ana", "Ana", ""},
		{"Ana Romero", "Ana", "Romero"},
		{"Ana de la Cruz", "Ana", "de la Cruz"},
		{"  Ana Romero  ", "Ana", "Romero"},
		{"", "", ""},
	}

	for _, c := range cases {
		first, last := splitName(c.in)
		assert.Equal(t, c.first, first, "input %q", c.in)
		assert.Equal(t, c.last, last, "input %q", c.in)
	}
}
