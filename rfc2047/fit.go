package rfc2047

import (
	"strings"
	"unicode/utf8"

	"github.com/zostay/go-rfc2047/charset"
)

// fitting is the outcome of trying to fit a span of text into a single
// encoded word. When ok is set, codec and length describe the word. When it
// is not set, retry is an upper bound on the length of a span that might fit.
type fitting struct {
	ok     bool
	codec  Codec
	length int
	retry  int
}

func isContinuation(c byte) bool { return c&0xc0 == 0x80 }

func isHSpace(c byte) bool { return c == ' ' || c == '\t' }

// roomFor returns the most payload bytes an encoded word labeled with the
// named charset can hold before encoding.
func roomFor(cs string) int {
	return EncodedWordMaxLen - EncodedWordMinLen + 1 - len(cs)
}

// convertPrefix converts span from the from charset to the to charset. When
// the whole span converts into no more than room bytes, it returns the
// converted bytes. Otherwise, it returns the length of the longest prefix of
// span that does convert within room, searching only prefixes that end on a
// character boundary.
//
// No charset writes a character in less than a byte, so only the first
// room+1 characters of span are ever converted.
func (e *Encoder) convertPrefix(span []byte, from, to string, room int) ([]byte, int, bool) {
	utf8Source := charset.IsUTF8(from)

	limit := len(span)
	if room < 0 {
		limit = 0
	} else if utf8Source {
		chars := 0
		for i := range string(span) {
			if chars == room+1 {
				limit = i
				break
			}
			chars++
		}
	} else if limit > room+1 {
		limit = room + 1
	}

	if limit == len(span) {
		out, err := e.cfg.Converter.Convert(span, from, to)
		if err == nil && len(out) <= room {
			return out, len(span), true
		}
	}

	capped := span[:limit]
	bounds := make([]int, 0, limit+1)
	if utf8Source {
		for i := range string(capped) {
			bounds = append(bounds, i)
		}
	} else {
		for i := range capped {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, limit)

	fits := func(n int) bool {
		out, err := e.cfg.Converter.Convert(span[:n], from, to)
		return err == nil && len(out) <= room
	}

	// bounds[lo] always fits (it is empty), bounds[hi] never does
	lo, hi := 0, len(bounds)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if fits(bounds[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return nil, bounds[lo], false
}

// fit decides whether span fits in a single encoded word once converted from
// the from charset to the to charset. If from is empty, span is taken to
// already be in the to charset.
func (e *Encoder) fit(span []byte, from, to string) fitting {
	room := roomFor(to)

	var payload []byte
	if from != "" {
		out, consumed, ok := e.convertPrefix(span, from, to, room)
		if !ok {
			retry := consumed + 1
			if consumed >= len(span) {
				retry = len(span)
			}
			return fitting{retry: retry}
		}
		payload = out
	} else {
		if len(span) > room {
			return fitting{retry: room + 1}
		}
		payload = span
	}

	lenB := wordLen(Base64, to, payload)
	lenQ := wordLen(QuotedPrintable, to, payload)

	// RFC 1468 says to use B encoding for iso-2022-jp
	if strings.EqualFold(to, charset.ISO2022JP) {
		lenQ = EncodedWordMaxLen + 1
	}

	switch {
	case lenB < lenQ && lenB <= EncodedWordMaxLen:
		return fitting{ok: true, codec: Base64, length: lenB}
	case lenQ <= EncodedWordMaxLen:
		return fitting{ok: true, codec: QuotedPrintable, length: lenQ}
	default:
		return fitting{retry: len(span)}
	}
}

// forceFit is used when not even a single character fits in an encoded word,
// which only happens with absurdly long charset names. The span is encoded
// with B encoding regardless of length.
func (e *Encoder) forceFit(span []byte, from, to string) fitting {
	return fitting{
		ok:     true,
		codec:  Base64,
		length: wordLen(Base64, to, e.payload(span, from, to)),
	}
}

// payload returns the bytes of span converted for use as the payload of an
// encoded word.
func (e *Encoder) payload(span []byte, from, to string) []byte {
	if from == "" {
		return span
	}

	out, err := e.cfg.Converter.Convert(span, from, to)
	if err != nil {
		e.cfg.Logger.WithError(err).
			WithField("charset", to).
			Debug("unable to convert encoded word payload, using raw bytes")
		return span
	}

	return out
}

// choose finds the longest prefix of span that can be encoded as a single
// encoded word starting at column col. It returns the length of that prefix
// and how to encode it. A prefix is never shorter than the first character of
// span, even if that means going past the end of the line.
func (e *Encoder) choose(span []byte, col int, from, to string) (int, fitting) {
	splitUTF8 := from != "" && charset.IsUTF8(from)

	least := 1
	if splitUTF8 {
		if _, size := utf8.DecodeRune(span); size > 1 {
			least = size
		}
	}

	n := len(span)
	for {
		f := e.fit(span[:n], from, to)
		if f.ok && (col+f.length <= lineWidth || n <= least) {
			return n, f
		}

		if n <= least {
			return n, e.forceFit(span[:n], from, to)
		}

		// n strictly decreases on every pass
		next := n
		if !f.ok && f.retry < n {
			next = f.retry
		}
		n = next - 1

		if splitUTF8 {
			for n > least && isContinuation(span[n]) {
				n--
			}
		}

		if n < least {
			n = least
		}
	}
}
