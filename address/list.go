// Package address applies RFC 2047 encoding and decoding to the phrases of
// an address list, such as the display names in a To or From header.
//
// Lists are kept flat. A group is written as an Entry with Group set and the
// group name in Mailbox, followed by its members, followed by an empty Entry
// that closes the group.
package address

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-rfc2047/rfc2047"
)

// Entry is a single element of an address List.
type Entry struct {
	// Personal is the display name of a mailbox.
	Personal string

	// Mailbox is the address of a mailbox or the name of a group.
	Mailbox string

	// Group marks the start of a group.
	Group bool
}

// IsGroupEnd reports whether the entry closes a group.
func (e Entry) IsGroupEnd() bool {
	return !e.Group && e.Mailbox == "" && e.Personal == ""
}

// List is an ordered list of addresses.
type List []Entry

// phrase renders s so that it may be used as the display name of a mailbox
// or the name of a group.
func phrase(s string) string {
	if !strings.ContainsAny(s, rfc2047.RFC822Specials) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// String renders the list as the body of an address header.
func (l List) String() string {
	var b strings.Builder
	inGroup, first := false, true
	for _, e := range l {
		switch {
		case e.Group:
			if !first {
				b.WriteString(", ")
			}
			b.WriteString(phrase(e.Mailbox))
			b.WriteByte(':')
			inGroup, first = true, true
			continue

		case e.IsGroupEnd():
			if inGroup {
				b.WriteByte(';')
				inGroup, first = false, false
			}
			continue
		}

		switch {
		case !first:
			b.WriteString(", ")
		case inGroup:
			b.WriteByte(' ')
		}
		first = false

		if e.Personal == "" {
			b.WriteString(e.Mailbox)
			continue
		}

		b.WriteString(phrase(e.Personal))
		b.WriteString(" <")
		b.WriteString(e.Mailbox)
		b.WriteByte('>')
	}

	if inGroup {
		b.WriteByte(';')
	}

	return b.String()
}

// FromAddressList converts a parsed address list into a List.
func FromAddressList(al addr.AddressList) List {
	l := make(List, 0, len(al))
	for _, a := range al {
		if g, isGroup := a.(*addr.Group); isGroup {
			l = append(l, Entry{Mailbox: displayName(g, ':'), Group: true})
			for _, mb := range g.MailboxList() {
				l = append(l, Entry{Personal: displayName(mb, '<'), Mailbox: mb.Address()})
			}
			l = append(l, Entry{})
			continue
		}

		l = append(l, Entry{Personal: displayName(a, '<'), Mailbox: a.Address()})
	}
	return l
}

// AddressList converts the list into an addr.AddressList by rendering it and
// parsing the result strictly.
func (l List) AddressList() (addr.AddressList, error) {
	return addr.ParseEmailAddressList(l.String())
}
