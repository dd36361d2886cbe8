package rdconv

import (
	"strings"
)

// rdEscapes is applied in order. The backslash rule must stay first so the
// backslashes inserted by the later rules are not doubled again.
var rdEscapes = [...]struct{ old, new string }{
	{`\`, `\\`},
	{`%`, `\%`},
	{`{`, `\{`},
	{`}`, `\}`},
	{"≡", "="},
}

// escapeRd makes plain text safe to place inside Rd markup
func escapeRd(s string) string {
	for _, r := range rdEscapes {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}
