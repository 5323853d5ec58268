package rfc2047

import (
	"bytes"
	"strings"

	"github.com/zostay/go-rfc2047/charset"
)

// Encoder turns text into RFC 2047 encoded words. An Encoder is safe for
// concurrent use.
type Encoder struct {
	cfg *Config
}

// NewEncoder returns an Encoder configured with the given options.
func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{cfg: NewConfig(opts...)}
}

// Config returns a copy of the configuration used by the Encoder.
func (e *Encoder) Config() Config {
	return *e.cfg
}

// findRegion returns the first and last index of the bytes in u that must be
// encoded: 8-bit bytes, any "=?" at the start of a word that would otherwise
// be mistaken for an encoded word, and any of the given specials.
func findRegion(u []byte, specials string) (first, last int, found bool) {
	first, last = -1, -1
	for i, c := range u {
		mustEncode := c&0x80 != 0 ||
			(c == '=' && i+1 < len(u) && u[i+1] == '?' && (i == 0 || isHSpace(u[i-1]))) ||
			(specials != "" && strings.IndexByte(specials, c) >= 0)

		if !mustEncode {
			continue
		}

		if first < 0 {
			first = i
		}
		last = i
	}

	return first, last, first >= 0
}

// Encode encodes text, which is in the from charset, into encoded words. The
// text is assumed to be a single line that starts at column col; if col is
// not zero, the character before it was a space. The target charset is the
// candidate best able to represent the text. Every byte in specials that
// occurs in text is forced to be encoded.
//
// Only the part of the text that needs encoding is encoded. That part is
// widened to whole words, then broken into encoded words joined by the
// configured Fold so that no word is longer than EncodedWordMaxLen and no
// line goes past column EncodedWordMaxLen + 1.
//
// If text does not need encoding, it is returned after conversion to UTF-8.
// Encode never fails. If charset conversion goes wrong, the raw bytes of the
// text are used instead and the returned Status says so.
func (e *Encoder) Encode(
	text []byte,
	col int,
	from string,
	candidates charset.List,
	specials string,
) ([]byte, Status) {
	status := StatusOK
	log := e.cfg.Logger.WithField("charset", from)

	icode := charset.UTF8
	u, err := e.cfg.Converter.Convert(text, from, icode)
	if err != nil {
		log.WithError(err).Debug("unable to convert text to utf-8, encoding raw bytes")
		status = StatusSourceConversionFailed
		icode = ""
		u = append([]byte(nil), text...)
	}

	t0, t1, found := findRegion(u, specials)
	if !found {
		return u, status
	}

	tocode := charset.Canonical(from)
	if icode != "" {
		if cs, _, ok := charset.Negotiate(e.cfg.Converter, u, icode, candidates); ok {
			tocode = cs
		} else {
			log.WithField("candidates", candidates.String()).
				Debug("no candidate charset can represent the text, encoding raw bytes")
			status = StatusTargetConversionFailed
			icode = ""
			u = append([]byte(nil), text...)
			if t0, t1, found = findRegion(u, specials); !found {
				return u, status
			}
		}
	}

	// never label 8-bit data as us-ascii
	if icode == "" && (tocode == "" || charset.IsUSASCII(tocode)) {
		tocode = charset.Unknown8Bit
	}

	t0, t1 = e.widenRegion(u, t0, t1, col, icode, tocode)

	var buf bytes.Buffer
	buf.Grow(2 * len(u))
	buf.Write(u[:t0])
	col += t0

	t := t0
	var last fitting
	for {
		n, f := e.choose(u[t:t1], col, icode, tocode)
		if n == t1-t {
			// see if the suffix fits on the line too
			if col+f.length+len(u)-t1 <= lineWidth {
				last = f
				break
			}

			n = t1 - t - 1
			if icode != "" {
				for n > 0 && isContinuation(u[t+n]) {
					n--
				}
			}

			if n == 0 {
				// The only thing left to encode is a single character with
				// too much text after it to fit on the line. Pull the next
				// word into the encoded region and try again.
				if t1 >= len(u) {
					last = f
					break
				}

				for t1++; t1 < len(u) && !isHSpace(u[t1]); t1++ {
				}
				continue
			}

			n, f = e.choose(u[t:t+n], col, icode, tocode)
		}

		writeWord(&buf, f.codec, tocode, e.payload(u[t:t+n], icode, tocode))
		buf.WriteString(e.cfg.Fold.String())
		col = 1
		t += n
	}

	writeWord(&buf, last.codec, tocode, e.payload(u[t:t1], icode, tocode))
	buf.Write(u[t1:])

	return buf.Bytes(), status
}

// widenRegion moves the start of the region [t0, t1] back to the beginning
// of a word and its end forward to the end of a word. It returns the region
// as a half-open range.
func (e *Encoder) widenRegion(u []byte, t0, t1, col int, icode, tocode string) (int, int) {
	// start early enough for the first word to fit on the first line
	if t := lineWidth - col - EncodedWordMinLen; t < t0 {
		if t < 0 {
			t = 0
		}
		t0 = t
	}

	// back up until a character after a space can be encoded
	for ; t0 > 0; t0-- {
		if !isHSpace(u[t0-1]) {
			continue
		}

		t := t0 + 1
		if icode != "" {
			for t < len(u) && isContinuation(u[t]) {
				t++
			}
		}

		f := e.fit(u[t0:t], icode, tocode)
		if f.ok && col+t0+f.length <= lineWidth {
			break
		}
	}

	// go forward until a character before a space can be encoded
	for ; t1 < len(u); t1++ {
		if !isHSpace(u[t1]) {
			continue
		}

		t := t1 - 1
		if icode != "" {
			for t > t0 && isContinuation(u[t]) {
				t--
			}
		}

		f := e.fit(u[t:t1], icode, tocode)
		if f.ok && 1+f.length+len(u)-t1 <= lineWidth {
			break
		}
	}

	return t0, t1
}

// EncodeString encodes s, which is in the configured Charset, into the
// configured SendCharsets (or utf-8, if none are configured), starting at
// column col. When specials is true, RFC822Specials are encoded too, which
// is what you want for the display name of an address.
func (e *Encoder) EncodeString(s string, col int, specials bool) (string, Status) {
	if s == "" {
		return s, StatusOK
	}

	candidates := e.cfg.SendCharsets
	if len(candidates) == 0 {
		candidates = charset.List{charset.UTF8}
	}

	var sp string
	if specials {
		sp = RFC822Specials
	}

	out, status := e.Encode([]byte(s), col, e.cfg.Charset, candidates, sp)
	return string(out), status
}
