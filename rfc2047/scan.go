package rfc2047

import "strings"

// scanState names the states of the encoded word scanner.
type scanState int

const (
	seekMarker  scanState = iota // looking for the next "=?"
	readCharset                  // reading the charset token
	readCodec                    // expecting "?", a codec letter, and "?"
	readPayload                  // reading the encoded text up to "?="
	matched                      // found a complete encoded word
	rescan                       // grammar failed, look for another "=?"
)

// charsetExcluded are the printable characters that may not appear in the
// charset token of an encoded word.
const charsetExcluded = "()<>@,;:\"/[]?.="

func isCharsetByte(c byte) bool {
	return c > 0x20 && c < 0x7f && strings.IndexByte(charsetExcluded, c) < 0
}

func isPayloadByte(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

// findEncodedWord locates the first encoded word in s at or after offset
// from. It returns the offset of the opening "=?" and the offset just past
// the closing "?=".
//
// This follows the grammar in section 2 of RFC 2047, except that the
// encoding must be B or Q, encoded words need not be separated from other
// text by white space, and the encoded text may contain spaces and "?" (but
// never "?="), since a great deal of software fails to encode them.
//
// Whenever the grammar fails, the search resumes from the point of failure.
// Every failure is past the "=?" that started the attempt, so the scan always
// makes progress.
func findEncodedWord(s string, from int) (start, end int, found bool) {
	pos := from
	state := seekMarker
	for {
		switch state {
		case seekMarker:
			i := strings.Index(s[pos:], "=?")
			if i < 0 {
				return 0, 0, false
			}
			start = pos + i
			pos = start + 2
			state = readCharset

		case readCharset:
			begin := pos
			for pos < len(s) && isCharsetByte(s[pos]) {
				pos++
			}

			if pos == begin {
				state = rescan
				continue
			}
			state = readCodec

		case readCodec:
			if pos+2 >= len(s) || s[pos] != '?' || s[pos+2] != '?' {
				state = rescan
				continue
			}

			if _, ok := codecFor(s[pos+1]); !ok {
				state = rescan
				continue
			}

			pos += 3
			state = readPayload

		case readPayload:
			for pos < len(s) && isPayloadByte(s[pos]) && !strings.HasPrefix(s[pos:], "?=") {
				pos++
			}

			if !strings.HasPrefix(s[pos:], "?=") {
				// the byte at pos, if any, is not '?', so nothing is skipped
				state = rescan
				continue
			}

			end = pos + 2
			state = matched

		case matched:
			return start, end, true

		case rescan:
			state = seekMarker
		}
	}
}
