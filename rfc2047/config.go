package rfc2047

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/zostay/go-rfc2047/charset"
)

// Fold is the linear white space placed between consecutive encoded words
// written by the Encoder.
type Fold string

// Constants for use when selecting a fold. If you don't know what to pick,
// choose TabFold. If the output is going straight into a message on the
// wire, choose CRLFSpaceFold.
const (
	TabFold       Fold = "\x0a\x09"     // \n\t - the traditional fold
	SpaceFold     Fold = "\x0a\x20"     // \n followed by a space
	CRLFTabFold   Fold = "\x0d\x0a\x09" // \r\n\t - network linebreak and tab
	CRLFSpaceFold Fold = "\x0d\x0a\x20" // \r\n followed by a space
	NoFold        Fold = "\x20"         // a single space, all words on one line
)

// String returns the fold as a string.
func (f Fold) String() string {
	return string(f)
}

// Bytes returns the fold as a slice of bytes.
func (f Fold) Bytes() []byte {
	return []byte(f)
}

// Defaults used by NewConfig.
const (
	// DefaultCharset is the charset text is expected to be in before encoding
	// and is converted into after decoding.
	DefaultCharset = charset.UTF8

	// DefaultSendCharsets is the list of candidate charsets the Encoder
	// chooses between.
	DefaultSendCharsets = "us-ascii:iso-8859-1:utf-8"

	// DefaultFold is the fold placed between encoded words.
	DefaultFold = TabFold
)

// Config holds the settings shared by the Encoder and the Decoder.
type Config struct {
	// Charset is the charset of the text handed to the Encoder and the
	// charset the Decoder produces.
	Charset string

	// SendCharsets is the list of charsets the Encoder may encode into. If
	// it is empty, utf-8 is used.
	SendCharsets charset.List

	// AssumedCharsets lists the charsets to try, in order, when a header
	// contains 8-bit text that is not wrapped in encoded words. When empty,
	// such text is left alone.
	AssumedCharsets charset.List

	// IgnoreLinearWhiteSpace causes the Decoder to collapse the white space
	// around encoded words.
	IgnoreLinearWhiteSpace bool

	// Fold is placed between consecutive encoded words.
	Fold Fold

	// Converter performs charset conversions.
	Converter charset.Converter

	// Logger receives debug messages about conversions that had to fall
	// back to passing bytes through as-is.
	Logger logrus.FieldLogger
}

// Option modifies the Config used to build an Encoder or Decoder.
type Option func(c *Config)

// WithCharset is an Option that sets the charset of the text handed to the
// Encoder and produced by the Decoder. The default is DefaultCharset.
func WithCharset(name string) Option {
	return func(c *Config) { c.Charset = name }
}

// WithSendCharsets is an Option that sets the candidate charsets for
// encoding. The argument is a colon-separated list, such as
// "us-ascii:iso-8859-1:utf-8". The default is DefaultSendCharsets.
func WithSendCharsets(list string) Option {
	return func(c *Config) { c.SendCharsets = charset.ParseList(list) }
}

// WithAssumedCharsets is an Option that sets the colon-separated list of
// charsets tried, in order, for 8-bit header text that is not encoded. By
// default, no charset is assumed.
func WithAssumedCharsets(list string) Option {
	return func(c *Config) { c.AssumedCharsets = charset.ParseList(list) }
}

// WithIgnoreLinearWhiteSpace is an Option that controls whether the Decoder
// collapses white space around encoded words.
func WithIgnoreLinearWhiteSpace(ignore bool) Option {
	return func(c *Config) { c.IgnoreLinearWhiteSpace = ignore }
}

// WithFold is an Option that sets the white space placed between
// consecutive encoded words. The default is DefaultFold.
func WithFold(f Fold) Option {
	return func(c *Config) { c.Fold = f }
}

// WithConverter is an Option that replaces the charset converter. The default
// is charset.DefaultConverter.
func WithConverter(conv charset.Converter) Option {
	return func(c *Config) { c.Converter = conv }
}

// WithLogger is an Option that sets the logger. By default, nothing is
// logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = l }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewConfig returns a Config with the defaults applied and then modified by
// the given options.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		Charset:      DefaultCharset,
		SendCharsets: charset.ParseList(DefaultSendCharsets),
		Fold:         DefaultFold,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Converter == nil {
		c.Converter = charset.DefaultConverter
	}

	if c.Logger == nil {
		c.Logger = discardLogger()
	}

	if c.Fold == "" {
		c.Fold = DefaultFold
	}

	return c
}
