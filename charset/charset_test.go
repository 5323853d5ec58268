package charset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-rfc2047/charset"
)

// Εν αρχη ητο ο Λογος
var greekText = []byte{
	0xc5, 0xed, 0x20, 0xe1, 0xf1, 0xf7, 0xe7, 0x20, 0xe7, 0xf4, 0xef, 0x20,
	0xef, 0x20, 0xcb, 0xef, 0xe3, 0xef, 0xf2,
}

var unicodeText = []byte{
	0xce, 0x95, 0xce, 0xbd, 0x20, 0xce, 0xb1, 0xcf, 0x81, 0xcf, 0x87, 0xce,
	0xb7, 0x20, 0xce, 0xb7, 0xcf, 0x84, 0xce, 0xbf, 0x20, 0xce, 0xbf, 0x20,
	0xce, 0x9b, 0xce, 0xbf, 0xce, 0xb3, 0xce, 0xbf, 0xcf, 0x82,
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, out string
	}{
		{"UTF-8", "utf-8"},
		{"utf8", "utf-8"},
		{" Latin1 ", "iso-8859-1"},
		{"ISO-8859-1", "iso-8859-1"},
		{"ascii", "us-ascii"},
		{"US-ASCII", "us-ascii"},
		{"cp1252", "windows-1252"},
		{"Shift-JIS", "shift_jis"},
		{"ISO-2022-JP", "iso-2022-jp"},
		{"x-unknown", "unknown-8bit"},
		{"x-made-up", "x-made-up"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, charset.Canonical(tt.in), tt.in)
	}

	assert.True(t, charset.IsUSASCII("ANSI_X3.4-1968"))
	assert.False(t, charset.IsUSASCII("utf-8"))
	assert.True(t, charset.IsUTF8("UTF8"))
	assert.False(t, charset.IsUTF8("latin1"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, err := charset.Lookup("latin2")
	assert.NoError(t, err)
	assert.NotNil(t, e)

	e, err = charset.Lookup("utf-8")
	assert.NoError(t, err)
	assert.Nil(t, e)

	_, err = charset.Lookup("unknown-8bit")
	assert.ErrorIs(t, err, charset.ErrUnsupportedCharset)
}

func TestTextConverter(t *testing.T) {
	t.Parallel()

	conv := charset.TextConverter{}

	out, err := conv.Convert(greekText, "iso-8859-7", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, unicodeText, out)

	out, err = conv.Convert(unicodeText, "utf-8", "greek")
	require.NoError(t, err)
	assert.Equal(t, greekText, out)

	out, err = conv.Convert([]byte("Caf\xc3\xa9"), "utf-8", "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("Caf\xe9"), out)

	out, err = conv.Convert([]byte("plain"), "utf-8", "us-ascii")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), out)
}

func TestTextConverter_Errors(t *testing.T) {
	t.Parallel()

	conv := charset.TextConverter{}

	_, err := conv.Convert([]byte("Caf\xc3\xa9"), "utf-8", "us-ascii")
	assert.ErrorIs(t, err, charset.ErrUnrepresentable)

	_, err = conv.Convert(unicodeText, "utf-8", "iso-8859-1")
	assert.ErrorIs(t, err, charset.ErrUnrepresentable)

	_, err = conv.Convert([]byte("Caf\xe9"), "utf-8", "iso-8859-1")
	assert.ErrorIs(t, err, charset.ErrInvalidInput)

	_, err = conv.Convert([]byte("Caf\xe9"), "us-ascii", "utf-8")
	assert.ErrorIs(t, err, charset.ErrInvalidInput)

	_, err = conv.Convert([]byte("abc"), "utf-8", "unknown-8bit")
	assert.ErrorIs(t, err, charset.ErrUnsupportedCharset)

	var cerr *charset.ConversionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "utf-8", cerr.From)
	assert.Equal(t, "unknown-8bit", cerr.To)
	assert.Contains(t, cerr.Error(), "unsupported charset")
}

func TestConverterFunc(t *testing.T) {
	t.Parallel()

	var gotFrom, gotTo string
	conv := charset.ConverterFunc(func(b []byte, from, to string) ([]byte, error) {
		gotFrom, gotTo = from, to
		return b, nil
	})

	out, err := conv.Convert([]byte("x"), "a", "b")
	assert.NoError(t, err)
	assert.Equal(t, []byte("x"), out)
	assert.Equal(t, "a", gotFrom)
	assert.Equal(t, "b", gotTo)
}
