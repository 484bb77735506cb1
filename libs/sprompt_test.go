package libs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yess\n", false},
	}

	for _, c := range cases {
		out := &bytes.Buffer{}
		require.Equal(t, c.expected, Confirm("burn?", strings.NewReader(c.input), out), "input: %q", c.input)
		require.Equal(t, "burn? [y/N]: ", out.String())
	}
}
