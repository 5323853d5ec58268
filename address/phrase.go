package address

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// leadingPhrase returns the phrase that starts s and runs up to the first
// delim found outside of a quoted string or comment. Quotes and comments are
// removed, quoted pairs are unescaped, and each run of white space outside of
// quotes becomes a single space. It returns false if delim never appears.
func leadingPhrase(s string, delim byte) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))

	quoted, escaped, nestLevel, space := false, false, 0, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
			if nestLevel == 0 {
				b.WriteByte(c)
			}
		case c == '\\' && (quoted || nestLevel > 0):
			escaped = true
		case quoted:
			if c == '"' {
				quoted = false
			} else {
				b.WriteByte(c)
			}
		case c == '(':
			nestLevel++
		case nestLevel > 0:
			if c == ')' {
				nestLevel--
				space = true
			}
		case c == delim:
			return strings.TrimSpace(b.String()), true
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			space = true
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			if c == '"' {
				quoted = true
			} else {
				b.WriteByte(c)
			}
		}
	}

	return "", false
}

// displayName returns the display name of a parsed mailbox or group. The
// parser in github.com/zostay/go-addr drops the white space between the
// words of a phrase, so the name is rebuilt from the text the parser matched
// whenever possible.
func displayName(a addr.Address, delim byte) string {
	dn := a.DisplayName()
	if dn == "" {
		return ""
	}

	if p, ok := leadingPhrase(a.OriginalString(), delim); ok && p != "" {
		return p
	}

	return dn
}
