package rfc2047

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zostay/go-rfc2047/charset"
)

// Decoder finds and decodes RFC 2047 encoded words in header text. A Decoder
// is safe for concurrent use.
type Decoder struct {
	cfg *Config
}

// NewDecoder returns a Decoder configured with the given options.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{cfg: NewConfig(opts...)}
}

// Config returns a copy of the configuration used by the Decoder.
func (d *Decoder) Config() Config {
	return *d.cfg
}

// splitWord breaks an encoded word into its charset, codec, and encoded
// text. Any RFC 2231 language suffix on the charset is dropped.
//
// Some software does not quote "?" inside the encoded text, so the encoded
// text is taken to run up to the first "?" that is followed by "=", even if
// that swallows something that looks like another delimiter.
func splitWord(word string) (cs string, codec Codec, text string, err error) {
	count := 0
	for pp := 0; ; {
		i := strings.IndexByte(word[pp:], '?')
		if i < 0 {
			break
		}
		pp1 := pp + i
		count++

		if count == 4 {
			for !strings.HasPrefix(word[pp1+1:], "=") {
				j := strings.IndexByte(word[pp1+1:], '?')
				if j < 0 {
					return "", 0, "", ErrMalformedEncodedWord
				}
				pp1 += j + 1
			}
		}

		switch count {
		case 2:
			cs = word[pp:pp1]
			if star := strings.IndexByte(cs, '*'); star >= 0 {
				cs = cs[:star]
			}
		case 3:
			var ok bool
			if pp == pp1 {
				return "", 0, "", ErrMalformedEncodedWord
			}
			if codec, ok = codecFor(word[pp]); !ok {
				return "", 0, "", ErrMalformedEncodedWord
			}
		case 4:
			text = word[pp:pp1]
		}

		pp = pp1 + 1
	}

	if count < 4 {
		return "", 0, "", ErrMalformedEncodedWord
	}

	return cs, codec, text, nil
}

// DecodeWord decodes a single encoded word, such as "=?utf-8?B?SGVsbG8=?=".
// The decoded text is converted from the charset named in the word to the
// configured Charset. If that conversion fails, the decoded bytes are kept
// as they are. Unprintable characters are replaced with "?".
//
// It returns ErrMalformedEncodedWord if the word cannot be split into its
// parts or names an encoding other than B or Q.
func (d *Decoder) DecodeWord(word string) (string, error) {
	cs, codec, text, err := splitWord(word)
	if err != nil {
		return "", err
	}

	var raw []byte
	switch codec {
	case Base64:
		raw = decodeB(text)
	default:
		raw = decodeQ(text)
	}

	if cs != "" {
		out, err := d.cfg.Converter.Convert(raw, cs, d.cfg.Charset)
		if err == nil {
			raw = out
		} else {
			d.cfg.Logger.WithError(err).
				WithField("charset", cs).
				Debug("unable to convert encoded word, keeping raw bytes")
		}
	}

	return d.filterUnprintable(raw), nil
}

// filterUnprintable replaces characters that should not be displayed with
// "?". When the display charset is UTF-8, invalid sequences are replaced
// too.
func (d *Decoder) filterUnprintable(b []byte) string {
	var out strings.Builder
	out.Grow(len(b))

	if !charset.IsUTF8(d.cfg.Charset) {
		for _, c := range b {
			if c < 0x20 || c == 0x7f {
				c = '?'
			}
			out.WriteByte(c)
		}
		return out.String()
	}

	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if (r == utf8.RuneError && size == 1) || !unicode.IsPrint(r) {
			out.WriteByte('?')
		} else {
			out.Write(b[:size])
		}
		b = b[size:]
	}

	return out.String()
}

func isLWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isCRLF(c byte) bool { return c == '\r' || c == '\n' }

// lwsLen returns the length of the linear white space at the start of s. It
// is zero if that white space ends in a line break, which would make it the
// end of a header line rather than linear white space.
func lwsLen(s string) int {
	i := 0
	for i < len(s) && isLWS(s[i]) {
		i++
	}

	if i == 0 || isCRLF(s[i-1]) {
		return 0
	}

	return i
}

// lwsRLen returns the length of the linear white space at the end of s. It
// is zero if s ends in a line break.
func lwsRLen(s string) int {
	if len(s) == 0 || isCRLF(s[len(s)-1]) {
		return 0
	}

	i := len(s) - 1
	for i >= 0 && isLWS(s[i]) {
		i--
	}

	return len(s) - 1 - i
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// decodeUnencoded handles text that is not part of any encoded word. If it
// contains 8-bit bytes and AssumedCharsets is configured, the text is
// converted from the first assumed charset that accepts it. Headers written
// by software that never heard of RFC 2047 are common enough to make this
// worthwhile.
func (d *Decoder) decodeUnencoded(s string) string {
	if len(d.cfg.AssumedCharsets) == 0 || isASCII(s) {
		return s
	}

	for _, cs := range d.cfg.AssumedCharsets {
		out, err := d.cfg.Converter.Convert([]byte(s), cs, d.cfg.Charset)
		if err == nil {
			return string(out)
		}
	}

	d.cfg.Logger.WithField("charsets", d.cfg.AssumedCharsets.String()).
		Debug("unable to convert unencoded 8-bit text from any assumed charset")

	return s
}

// Decode decodes every encoded word found in text and returns the result.
// Text between encoded words is copied through. White space that separates
// two encoded words is dropped, as RFC 2047 requires. When
// IgnoreLinearWhiteSpace is set, white space around encoded words is also
// collapsed: runs of white space next to an encoded word become a single
// space.
//
// Decode never fails. Anything that looks like an encoded word but cannot be
// decoded is copied through as-is.
func (d *Decoder) Decode(text string) string {
	if text == "" {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))

	found := false
	s := text
	for len(s) > 0 {
		start, end, ok := findEncodedWord(s, 0)
		if !ok {
			if d.cfg.IgnoreLinearWhiteSpace && found {
				if m := lwsLen(s); m != 0 {
					if m != len(s) {
						out.WriteByte(' ')
					}
					s = s[m:]
				}
			}

			out.WriteString(d.decodeUnencoded(s))
			break
		}

		if start > 0 {
			d.writeGap(&out, s[:start], found)
		}

		word := s[start:end]
		if dec, err := d.DecodeWord(word); err == nil {
			out.WriteString(dec)
		} else {
			out.WriteString(word)
		}

		found = true
		s = s[end:]
	}

	return out.String()
}

// writeGap writes the literal text found before an encoded word. The
// afterWord flag is set when an encoded word came before the gap.
func (d *Decoder) writeGap(out *strings.Builder, gap string, afterWord bool) {
	if !d.cfg.IgnoreLinearWhiteSpace {
		if !afterWord || strings.TrimLeft(gap, " \t\r\n") != "" {
			out.WriteString(gap)
		}
		return
	}

	if afterWord {
		if m := lwsLen(gap); m != 0 {
			if m != len(gap) {
				out.WriteByte(' ')
			}
			gap = gap[m:]
		}
	}

	if m := len(gap) - lwsRLen(gap); m != 0 {
		out.WriteString(gap[:m])
		if m != len(gap) {
			out.WriteByte(' ')
		}
	}
}

// DecodeBytes is the same as Decode, but works with a slice of bytes.
func (d *Decoder) DecodeBytes(b []byte) []byte {
	return []byte(d.Decode(string(b)))
}
