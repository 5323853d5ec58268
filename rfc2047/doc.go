// Package rfc2047 implements the MIME encoded-word syntax of RFC 2047, which
// is used to carry non-ASCII text in mail header fields that must otherwise
// remain 7-bit clean.
//
// The Encoder takes text in some source charset and produces a run of
// encoded words like "=?iso-8859-1?Q?Caf=E9?=". It tries hard to produce the
// shortest reasonable result: only the region of the text that actually
// needs encoding is encoded, a target charset is negotiated from a list of
// candidates, each word picks whichever of the B (Base64) and Q
// (Quoted-Printable) encodings is shorter, and words are folded so that none
// exceeds 75 characters and lines stay within the header length limit.
//
// The Decoder does the reverse. It is deliberately lenient: it finds encoded
// words anywhere in the text, copies anything that does not parse as an
// encoded word through untouched, and tolerates the common mistakes of
// software that does not quote "?" or whitespace properly.
//
// Neither operation ever fails. When a charset conversion cannot be
// performed, the Encoder falls back to passing the raw bytes through and
// reports what happened with a Status, and the Decoder leaves the bytes as
// they were.
package rfc2047
