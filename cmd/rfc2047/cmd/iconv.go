//go:build iconv

package cmd

import "github.com/zostay/go-rfc2047/charset/iconv"

func init() {
	converters["iconv"] = iconv.Converter{}
}
