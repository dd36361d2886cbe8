package rdconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeRd(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`\{100%}`, `\\\{100\%\}`},
		{`plain text`, `plain text`},
		{`\\`, `\\\\`},
		{`a{1,3}`, `a\{1,3\}`},
		{`50%`, `50\%`},
		{`[[:alpha:]] ≡ \pL`, `[[:alpha:]] = \\pL`},
		{``, ``},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeRd(tt.in), "escapeRd(%q)", tt.in)
	}
}

func TestEscapeRd_BackslashRuleFirst(t *testing.T) {
	assert.Equal(t, `\\`, rdEscapes[0].new)
	assert.Equal(t, `\`, rdEscapes[0].old)
}
