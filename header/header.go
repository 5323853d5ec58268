// Package header splits a raw message header into fields and applies RFC
// 2047 decoding or encoding to each field body. Address fields are handled
// through the address package so that only their display names are touched.
package header

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/zostay/go-rfc2047/address"
	"github.com/zostay/go-rfc2047/rfc2047"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line is the raw content of one header field, including any continuation
// lines.
type Line []byte

// Lines is the raw content of zero or more header fields.
type Lines []Line

// DetectLineBreak returns the line break used in m. It is "\r\n" when the
// first line of m ends that way and "\n" otherwise.
func DetectLineBreak(m []byte) []byte {
	if ix := bytes.IndexByte(m, '\n'); ix > 0 && m[ix-1] == '\r' {
		return []byte("\r\n")
	}
	return []byte("\n")
}

// isContinuation reports whether line carries on the field before it, which
// is so when it starts with a space or tab or has no colon at all.
func isContinuation(line []byte) bool {
	return line[0] == '\t' || line[0] == ' ' || bytes.IndexByte(line, ':') < 0
}

// ParseLines splits the given header into field lines using the line break
// lb. When lb is empty, the line break is detected with DetectLineBreak. A
// new field starts on any line that is not a continuation. Each Line keeps
// its line breaks. A blank line ends the header and nothing after it is
// read.
//
// This is more forgiving than RFC 5322. Lines at the start that cannot begin
// a field are skipped and returned in a BadStartError along with whatever
// fields follow them.
func ParseLines(m, lb []byte) (Lines, error) {
	if len(lb) == 0 {
		lb = DetectLineBreak(m)
	}

	var (
		h   = make(Lines, 0, len(m)/80)
		err *BadStartError
	)
	for len(m) > 0 {
		n := len(m)
		if ix := bytes.Index(m, lb); ix >= 0 {
			n = ix + len(lb)
		}
		line := m[:n:n]
		m = m[n:]

		if bytes.Equal(line, lb) {
			break
		}

		if !isContinuation(line) {
			h = append(h, line)
			continue
		}

		switch {
		case len(h) > 0:
			h[len(h)-1] = append(h[len(h)-1], line...)
		case err != nil:
			err.BadStart = append(err.BadStart, line...)
		default:
			err = &BadStartError{line}
		}
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Field is a header field with an unfolded body.
type Field struct {
	Name string
	Body string
}

// String returns the field as it would appear in a header, without a
// trailing line break.
func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Body)
}

// unfold removes every line break that is followed by a space or tab.
func unfold(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\r' && i+1 < len(b) && b[i+1] == '\n' {
			if i+2 < len(b) && (b[i+2] == ' ' || b[i+2] == '\t') {
				i++
				continue
			}
		}

		if b[i] == '\n' && i+1 < len(b) && (b[i+1] == ' ' || b[i+1] == '\t') {
			continue
		}

		out = append(out, b[i])
	}
	return out
}

// Parse turns a single field line into a Field. The body is unfolded and
// trimmed of surrounding white space, but is otherwise left as it was found.
func Parse(l Line, lb []byte) Field {
	raw := bytes.TrimRight(l, string(lb))

	off := 1
	ix := bytes.IndexByte(raw, ':')
	if ix < 0 {
		ix = len(raw)
		off = 0
	}

	return Field{
		Name: string(bytes.TrimSpace(unfold(raw[:ix]))),
		Body: string(bytes.TrimSpace(unfold(raw[ix+off:]))),
	}
}

// addressFields are the fields whose bodies are address lists.
var addressFields = map[string]struct{}{
	"from":                        {},
	"sender":                      {},
	"reply-to":                    {},
	"to":                          {},
	"cc":                          {},
	"bcc":                         {},
	"resent-from":                 {},
	"resent-sender":               {},
	"resent-to":                   {},
	"resent-cc":                   {},
	"resent-bcc":                  {},
	"mail-followup-to":            {},
	"mail-reply-to":               {},
	"return-receipt-to":           {},
	"disposition-notification-to": {},
}

// IsAddressField reports whether the named field holds an address list.
func IsAddressField(name string) bool {
	_, ok := addressFields[strings.ToLower(name)]
	return ok
}

// Decode decodes the encoded words in the body of f. For address fields,
// only the display names and group names are decoded. If an address field
// cannot be parsed, the whole body is decoded instead.
func Decode(dec *rfc2047.Decoder, f Field) Field {
	if IsAddressField(f.Name) {
		if l, err := address.Parse(f.Body); err == nil && len(l) > 0 {
			f.Body = address.DecodeList(dec, l).String()
			return f
		}
	}

	f.Body = dec.Decode(f.Body)
	return f
}

// Encode encodes the body of f into encoded words where needed. For address
// fields, only the display names and group names are encoded, and any
// trouble is logged rather than reported in the returned Status.
func Encode(enc *rfc2047.Encoder, f Field) (Field, rfc2047.Status) {
	if IsAddressField(f.Name) {
		if l, err := address.Parse(f.Body); err == nil && len(l) > 0 {
			f.Body = address.EncodeList(enc, l, f.Name).String()
			return f, rfc2047.StatusOK
		}
	}

	body, status := enc.EncodeString(f.Body, len(f.Name)+2, false)
	f.Body = body
	return f, status
}

// DecodeHeader splits the header m into fields using the line break lb, or
// the detected one when lb is empty, and decodes each one. A BadStartError
// is returned alongside the fields when the header starts with junk, which is
// otherwise ignored.
func DecodeHeader(dec *rfc2047.Decoder, m, lb []byte) ([]Field, error) {
	lines, err := ParseLines(m, lb)

	fields := make([]Field, len(lines))
	for i, line := range lines {
		fields[i] = Decode(dec, Parse(line, lb))
	}

	return fields, err
}
