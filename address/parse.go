package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// ErrNoAddresses is returned by Parse when nothing resembling an address can
// be found in the input.
var ErrNoAddresses = errors.New("no addresses found")

// Parse reads an address header body into a List. The strict parser from
// github.com/zostay/go-addr is tried first. If it rejects the input, a
// lenient parser is used instead, since headers found in the wild are often
// not quite right.
func Parse(s string) (List, error) {
	al, err := addr.ParseEmailAddressList(s)
	if err == nil {
		return FromAddressList(al), nil
	}

	l := parseLenient(s)
	if len(l) == 0 && strings.TrimSpace(s) != "" {
		return nil, fmt.Errorf("%w: %v", ErrNoAddresses, err)
	}

	return l, nil
}

// extractComments splits s into the text outside of parentheses and the text
// inside them. Nested comments are kept whole.
func extractComments(s string) (string, string) {
	var clean, comment strings.Builder
	nestLevel := 0
	for _, c := range s {
		switch {
		case c == '(':
			nestLevel++
			if nestLevel > 1 {
				comment.WriteRune(c)
			}
		case c == ')':
			nestLevel--
			switch {
			case nestLevel == 0:
			case nestLevel < 0:
				nestLevel = 0
				clean.WriteRune(c)
			default:
				comment.WriteRune(c)
			}
		case nestLevel > 0:
			comment.WriteRune(c)
		default:
			clean.WriteRune(c)
		}
	}

	return clean.String(), comment.String()
}

// parseLenient breaks s up on commas. Within each piece, the last word is the
// mailbox and the words before it are the display name. When there is no
// display name, a comment is used in its place, which handles the old
// "user@example.com (Full Name)" style. Groups are not recognized.
func parseLenient(s string) List {
	pieces := strings.Split(s, ",")
	l := make(List, 0, len(pieces))
	for _, piece := range pieces {
		mb, com := extractComments(piece)
		com = strings.TrimSpace(com)

		parts := strings.Fields(mb)
		if len(parts) == 0 {
			continue
		}

		mailbox := strings.Trim(parts[len(parts)-1], "<>")
		if mailbox == "" {
			continue
		}

		personal := strings.Join(parts[:len(parts)-1], " ")
		personal = strings.TrimSpace(strings.Trim(personal, "\""))
		if personal == "" {
			personal = com
		}

		l = append(l, Entry{Personal: personal, Mailbox: mailbox})
	}

	return l
}
