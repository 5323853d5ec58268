package rfc2047

import (
	"bytes"
	"encoding/base64"
	"strings"
)

// Limits on the length of an encoded word.
const (
	// EncodedWordMaxLen is the longest an encoded word may be.
	EncodedWordMaxLen = 75

	// EncodedWordMinLen is the length of an encoded word with a one
	// character charset and payload: "=?.?.?.?=".
	EncodedWordMinLen = 9

	// lineWidth is the most columns an encoded word may reach, counting from
	// the column it starts in.
	lineWidth = EncodedWordMaxLen + 1

	// wordOverhead is the number of bytes in an encoded word that are
	// neither charset nor payload: "=?", "?B?" and "?=".
	wordOverhead = EncodedWordMinLen - 2
)

// RFC822Specials are the characters that cannot appear unquoted in the
// phrase of an address. Pass these to Encode to protect them inside display
// names.
const RFC822Specials = "@.,:;<>[]\\\"()"

// mimeSpecials are the characters that Q encoding must escape.
const mimeSpecials = "@.,;:<>[]\\\"()?/= \t"

// Codec identifies the transport encoding of an encoded word's payload.
type Codec int

// The two codecs permitted by RFC 2047.
const (
	Base64 Codec = iota + 1
	QuotedPrintable
)

// Letter returns the letter identifying the codec inside an encoded word.
func (c Codec) Letter() byte {
	switch c {
	case Base64:
		return 'B'
	case QuotedPrintable:
		return 'Q'
	default:
		return '?'
	}
}

// String returns the name of the codec.
func (c Codec) String() string {
	switch c {
	case Base64:
		return "base64"
	case QuotedPrintable:
		return "quoted-printable"
	default:
		return "unknown"
	}
}

// codecFor returns the codec named by the letter in an encoded word.
func codecFor(letter byte) (Codec, bool) {
	switch letter {
	case 'B', 'b':
		return Base64, true
	case 'Q', 'q':
		return QuotedPrintable, true
	default:
		return 0, false
	}
}

// mustEscape reports whether Q encoding writes c as =XX.
func mustEscape(c byte) bool {
	return c >= 0x7f || c < 0x20 || c == '_' || strings.IndexByte(mimeSpecials, c) >= 0
}

// wordLen returns the length of the encoded word that encodes payload in the
// named charset using codec.
func wordLen(codec Codec, cs string, payload []byte) int {
	n := wordOverhead + len(cs)
	if codec == Base64 {
		return n + base64.StdEncoding.EncodedLen(len(payload))
	}

	n += len(payload)
	for _, c := range payload {
		if c != ' ' && mustEscape(c) {
			n += 2
		}
	}
	return n
}

const upperHex = "0123456789ABCDEF"

// writeWord writes a complete encoded word to buf.
func writeWord(buf *bytes.Buffer, codec Codec, cs string, payload []byte) {
	buf.WriteString("=?")
	buf.WriteString(cs)
	buf.WriteByte('?')
	buf.WriteByte(codec.Letter())
	buf.WriteByte('?')

	switch codec {
	case Base64:
		enc := make([]byte, base64.StdEncoding.EncodedLen(len(payload)))
		base64.StdEncoding.Encode(enc, payload)
		buf.Write(enc)
	default:
		for _, c := range payload {
			switch {
			case c == ' ':
				buf.WriteByte('_')
			case mustEscape(c):
				buf.WriteByte('=')
				buf.WriteByte(upperHex[c>>4])
				buf.WriteByte(upperHex[c&0x0f])
			default:
				buf.WriteByte(c)
			}
		}
	}

	buf.WriteString("?=")
}

func hexVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// decodeQ decodes the payload of a Q encoded word. An "=" that is not
// followed by two hex digits is kept as a literal "=".
func decodeQ(payload string) []byte {
	out := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch {
		case c == '_':
			out = append(out, ' ')
		case c == '=' && i+2 < len(payload) && hexVal(payload[i+1]) >= 0 && hexVal(payload[i+2]) >= 0:
			out = append(out, byte(hexVal(payload[i+1])<<4|hexVal(payload[i+2])))
			i += 2
		default:
			out = append(out, c)
		}
	}
	return out
}

func base64Val(c byte) int {
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c - 'A')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 26
	case '0' <= c && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	default:
		return -1
	}
}

// decodeB decodes the payload of a B encoded word. Decoding stops at the
// first "=" and any byte outside the Base64 alphabet is skipped. Bits left
// over at the end that do not make up a whole byte are dropped.
func decodeB(payload string) []byte {
	out := make([]byte, 0, base64.StdEncoding.DecodedLen(len(payload)))
	var (
		acc  uint
		bits uint
	)
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c == '=' {
			break
		}

		v := base64Val(c)
		if v < 0 {
			continue
		}

		acc = acc<<6 | uint(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
	}
	return out
}
