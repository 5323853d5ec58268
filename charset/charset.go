// Package charset provides the character set plumbing used by the rfc2047
// package: a pluggable Converter for transforming bytes between named
// character encodings, canonicalization of charset names, ordered candidate
// lists, and the negotiation used to pick the best charset for a piece of
// text.
//
// The default converter is built on golang.org/x/text and knows all the
// charsets commonly seen in the wild wild world of email. If you would
// rather have GNU iconv do the work, build with the iconv tag and use the
// converter in the iconv sub-package.
package charset

import (
	"errors"
	"fmt"
)

// Well-known charset names, in canonical form.
const (
	USASCII     = "us-ascii"
	UTF8        = "utf-8"
	ISO88591    = "iso-8859-1"
	ISO2022JP   = "iso-2022-jp"
	Unknown8Bit = "unknown-8bit"
)

var (
	// ErrUnsupportedCharset is returned (wrapped in a ConversionError) when a
	// Converter does not know one of the charsets it has been asked to work
	// with.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrInvalidInput is returned (wrapped in a ConversionError) when the
	// input bytes are not valid in the source charset.
	ErrInvalidInput = errors.New("input is not valid in the source charset")

	// ErrUnrepresentable is returned (wrapped in a ConversionError) when the
	// input contains characters that cannot be represented in the target
	// charset.
	ErrUnrepresentable = errors.New("input cannot be represented in the target charset")
)

// ConversionError describes a failed conversion between two charsets.
type ConversionError struct {
	From string
	To   string
	Err  error
}

// Error returns a description of the failed conversion.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert from %q to %q: %v", e.From, e.To, e.Err)
}

// Unwrap returns the cause of the conversion failure.
func (e *ConversionError) Unwrap() error { return e.Err }

// Converter transforms a buffer of bytes from one named charset into another.
//
// Implementations must be stateless between calls. When either charset is
// not supported, the returned error must wrap ErrUnsupportedCharset. When the
// input cannot be converted completely, an error must be returned and the
// output bytes are ignored. A Converter never returns a partial conversion
// as a success.
type Converter interface {
	Convert(b []byte, from, to string) ([]byte, error)
}

// ConverterFunc turns an ordinary function into a Converter.
type ConverterFunc func(b []byte, from, to string) ([]byte, error)

// Convert calls f(b, from, to).
func (f ConverterFunc) Convert(b []byte, from, to string) ([]byte, error) {
	return f(b, from, to)
}

// DefaultConverter is the Converter used when no other has been configured.
// You may replace this with a custom converter if you like.
var DefaultConverter Converter = TextConverter{}

// Convert is a shortcut for DefaultConverter.Convert.
func Convert(b []byte, from, to string) ([]byte, error) {
	return DefaultConverter.Convert(b, from, to)
}
