package rfc2047

import "errors"

// Status reports how cleanly an encode operation went. Encoding always
// produces output, but when charset conversion fails the output is built
// from the raw input bytes and the Status says why.
type Status int

// Status values returned by the Encoder.
const (
	// StatusOK means the text was converted and encoded without trouble.
	StatusOK Status = iota

	// StatusSourceConversionFailed means the text could not be converted
	// from its source charset into UTF-8. The raw bytes were encoded and
	// labeled with the source charset.
	StatusSourceConversionFailed

	// StatusTargetConversionFailed means none of the candidate charsets
	// could represent the text. The raw bytes were encoded and labeled with
	// the source charset (or unknown-8bit).
	StatusTargetConversionFailed
)

var (
	// ErrSourceConversion is the error form of StatusSourceConversionFailed.
	ErrSourceConversion = errors.New("text could not be converted from its source charset")

	// ErrTargetConversion is the error form of StatusTargetConversionFailed.
	ErrTargetConversion = errors.New("text could not be converted to any candidate charset")

	// ErrMalformedEncodedWord is returned by DecodeWord when the structure of
	// the encoded word cannot be parsed.
	ErrMalformedEncodedWord = errors.New("malformed encoded word")
)

// String returns a short description of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSourceConversionFailed:
		return "source conversion failed"
	case StatusTargetConversionFailed:
		return "target conversion failed"
	default:
		return "unknown status"
	}
}

// Err returns the error matching the status or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusSourceConversionFailed:
		return ErrSourceConversion
	case StatusTargetConversionFailed:
		return ErrTargetConversion
	default:
		return nil
	}
}
