// Package rfc2047 is the top of a small family of packages for dealing with
// the RFC 2047 encoded words found in mail headers. There is no code here.
// The work is split up as follows.
//
// The charset package names charsets and converts between them. The default
// converter is built on golang.org/x/text, and a converter backed by GNU
// iconv is available in charset/iconv when built with the iconv tag.
//
// The rfc2047 package holds the Encoder and Decoder. The Encoder tries to
// produce compact output: it encodes only the part of the text that needs it,
// picks the best charset from a list of candidates, chooses B or Q encoding
// word by word, and folds the result so that it fits in a header. The
// Decoder is lenient in the way a mail reader needs to be, since a good deal
// of the mail out there gets RFC 2047 wrong.
//
// The address package applies both to the display names of an address list
// and bridges to github.com/zostay/go-addr for parsing. The header package
// splits a raw header into fields and runs each through the right one.
//
// Finally, cmd/rfc2047 is a command-line tool wrapping all of the above,
// which I find handy for poking at headers from the shell.
package rfc2047
