package charset

import (
	"strings"
	"unicode/utf8"
)

// List is an ordered list of candidate charsets. Earlier entries are
// preferred over later ones.
type List []string

// ParseList splits a colon-separated list of charset names, as it might
// appear in a configuration file, into a List. Empty entries are skipped.
func ParseList(s string) List {
	parts := strings.Split(s, ":")
	l := make(List, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		l = append(l, p)
	}
	return l
}

// String returns the list in its colon-separated form.
func (l List) String() string {
	return strings.Join(l, ":")
}

// Negotiate picks the charset from candidates best suited to represent src,
// which is encoded in the from charset. Each candidate is tried in order and
// the one that results in the shortest conversion wins. Ties go to the
// earliest candidate. As no charset represents a character in less than a
// byte, a candidate that uses exactly one byte per character ends the search
// immediately.
//
// It returns the canonical name of the chosen charset and the converted
// bytes. If no candidate is able to convert src, ok is false.
func Negotiate(
	conv Converter,
	src []byte,
	from string,
	candidates List,
) (name string, converted []byte, ok bool) {
	floor := 0
	if IsUTF8(from) {
		floor = utf8.RuneCount(src)
	}

	var (
		best    string
		bestOut []byte
		bestLen = -1
	)
	for _, c := range candidates {
		out, err := conv.Convert(src, from, c)
		if err != nil {
			continue
		}

		if bestLen < 0 || len(out) < bestLen {
			best, bestOut, bestLen = c, out, len(out)
			if bestLen <= floor {
				break
			}
		}
	}

	if bestLen < 0 {
		return "", nil, false
	}

	return Canonical(best), bestOut, true
}
