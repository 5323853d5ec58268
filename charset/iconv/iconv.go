//go:build iconv

// Package iconv provides a charset.Converter backed by GNU iconv. It is only
// compiled when the iconv build tag is set, as it requires cgo and the iconv
// library to be installed.
//
// To use it:
//
//	enc := rfc2047.NewEncoder(rfc2047.WithConverter(iconv.Converter{}))
package iconv

import (
	"fmt"

	goiconv "gopkg.in/iconv.v1"

	"github.com/zostay/go-rfc2047/charset"
)

// Converter is a charset.Converter that delegates to iconv(3). Charset names
// are canonicalized before being handed to iconv, except for unknown-8bit,
// which iconv does not know and which always fails.
type Converter struct{}

// Convert transforms b from the from charset into the to charset.
func (Converter) Convert(b []byte, from, to string) ([]byte, error) {
	from, to = charset.Canonical(from), charset.Canonical(to)
	if from == charset.Unknown8Bit || to == charset.Unknown8Bit {
		return nil, &charset.ConversionError{From: from, To: to, Err: charset.ErrUnsupportedCharset}
	}

	cd, err := goiconv.Open(to, from)
	if err != nil {
		return nil, &charset.ConversionError{
			From: from,
			To:   to,
			Err:  fmt.Errorf("%w: %v", charset.ErrUnsupportedCharset, err),
		}
	}
	defer func() { _ = cd.Close() }()

	outbuf := make([]byte, 4*len(b)+16)
	out, inleft, err := cd.Conv(b, outbuf)
	if err != nil || inleft > 0 {
		return nil, &charset.ConversionError{
			From: from,
			To:   to,
			Err:  fmt.Errorf("%w: %v", charset.ErrUnrepresentable, err),
		}
	}

	return append([]byte(nil), out...), nil
}
