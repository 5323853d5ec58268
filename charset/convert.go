package charset

import (
	"unicode/utf8"
)

// TextConverter is the default Converter. It is built on the encodings
// provided by golang.org/x/text and looks up charsets using Lookup.
//
// Conversions are strict: bytes that are not valid UTF-8 or US-ASCII when
// those are the source charset and characters that cannot be represented in
// the target charset are reported as errors rather than being replaced.
// Decoders for other source charsets follow the x/text behavior of turning
// undecodable bytes into unicode.ReplacementChar.
type TextConverter struct{}

// Convert transforms b from the from charset into the to charset.
func (TextConverter) Convert(b []byte, from, to string) ([]byte, error) {
	from, to = Canonical(from), Canonical(to)

	u, err := toUTF8(b, from)
	if err != nil {
		return nil, &ConversionError{From: from, To: to, Err: err}
	}

	out, err := fromUTF8(u, to)
	if err != nil {
		return nil, &ConversionError{From: from, To: to, Err: err}
	}

	return out, nil
}

func toUTF8(b []byte, from string) ([]byte, error) {
	switch from {
	case USASCII:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return nil, ErrInvalidInput
			}
		}
		return append([]byte(nil), b...), nil
	case UTF8:
		if !utf8.Valid(b) {
			return nil, ErrInvalidInput
		}
		return append([]byte(nil), b...), nil
	}

	e, err := Lookup(from)
	if err != nil {
		return nil, err
	}

	u, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return nil, ErrInvalidInput
	}

	return u, nil
}

func fromUTF8(u []byte, to string) ([]byte, error) {
	switch to {
	case USASCII:
		for _, c := range u {
			if c >= utf8.RuneSelf {
				return nil, ErrUnrepresentable
			}
		}
		return u, nil
	case UTF8:
		return u, nil
	}

	e, err := Lookup(to)
	if err != nil {
		return nil, err
	}

	out, err := e.NewEncoder().Bytes(u)
	if err != nil {
		return nil, ErrUnrepresentable
	}

	return out, nil
}
