package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-rfc2047/header"
	"github.com/zostay/go-rfc2047/rfc2047"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	// basic parse, no folding
	input := []byte("a:\nb:\nc:\nd:\n")
	lb := []byte("\n")
	lines, err := header.ParseLines(input, lb)
	assert.NoError(t, err)
	assert.Equal(t, header.Lines{
		[]byte("a:\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n"),
	}, lines)

	// folding parse
	input = []byte("a:b\n b\n b\nb:\nc:\nd:\n\teeee\n")
	lines, err = header.ParseLines(input, lb)
	assert.NoError(t, err)
	assert.Equal(t, header.Lines{
		[]byte("a:b\n b\n b\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n\teeee\n"),
	}, lines)

	// folding parse, with start junk
	input = []byte(" start:\njunk\na:b\n b\n b\nb:\n")
	lines, err = header.ParseLines(input, lb)
	var badStart *header.BadStartError
	require.ErrorAs(t, err, &badStart)
	assert.Equal(t, []byte(" start:\njunk\n"), badStart.BadStart)
	assert.Equal(t, header.Lines{
		[]byte("a:b\n b\n b\n"),
		[]byte("b:\n"),
	}, lines)
}

func TestParseLines_CRLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("\r\n"), header.DetectLineBreak([]byte("a: b\r\nc: d\n")))
	assert.Equal(t, []byte("\n"), header.DetectLineBreak([]byte("a: b\nc: d\r\n")))
	assert.Equal(t, []byte("\n"), header.DetectLineBreak([]byte("a: b")))

	// detected line break, blank line ends the header
	input := []byte("a: x\r\n y\r\nb: z\r\n\r\nbody: no\r\n")
	lines, err := header.ParseLines(input, nil)
	assert.NoError(t, err)
	assert.Equal(t, header.Lines{
		[]byte("a: x\r\n y\r\n"),
		[]byte("b: z\r\n"),
	}, lines)

	// the input is left alone
	assert.Equal(t, "a: x\r\n y\r\nb: z\r\n\r\nbody: no\r\n", string(input))

	fields, err := header.DecodeHeader(rfc2047.NewDecoder(), []byte("Subject: =?utf-8?Q?a?=\r\n =?utf-8?Q?b?=\r\n"), nil)
	assert.NoError(t, err)
	assert.Equal(t, []header.Field{{Name: "Subject", Body: "ab"}}, fields)
}

func TestParse(t *testing.T) {
	t.Parallel()

	f := header.Parse([]byte("Subject: test\n"), []byte{'\n'})
	assert.Equal(t, header.Field{Name: "Subject", Body: "test"}, f)

	f = header.Parse([]byte("Subject: =?utf-8?Q?a?=\r\n =?utf-8?Q?b?=\r\n"), []byte("\r\n"))
	assert.Equal(t, "=?utf-8?Q?a?= =?utf-8?Q?b?=", f.Body)

	f = header.Parse([]byte("Subject"), []byte{'\n'})
	assert.Equal(t, header.Field{Name: "Subject"}, f)
	assert.Equal(t, "Subject: ", f.String())
}

func TestIsAddressField(t *testing.T) {
	t.Parallel()

	assert.True(t, header.IsAddressField("To"))
	assert.True(t, header.IsAddressField("REPLY-TO"))
	assert.False(t, header.IsAddressField("Subject"))
}

func TestDecodeHeader(t *testing.T) {
	t.Parallel()

	const msg = "From: =?utf-8?Q?Caf=C3=A9?= <owner@example.com>\n" +
		"Subject: =?utf-8?b?4pmg4pmj4pml4pmm?=\n" +
		"\t=?iso-8859-1?Q?_Caf=E9?=\n" +
		"X-Plain: nothing to see\n"

	fields, err := header.DecodeHeader(rfc2047.NewDecoder(), []byte(msg), []byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, []header.Field{
		{Name: "From", Body: "Café <owner@example.com>"},
		{Name: "Subject", Body: "♠♣♥♦ Café"},
		{Name: "X-Plain", Body: "nothing to see"},
	}, fields)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	enc := rfc2047.NewEncoder()

	f, status := header.Encode(enc, header.Field{Name: "Subject", Body: "Re: Café"})
	assert.Equal(t, rfc2047.StatusOK, status)
	assert.Equal(t, "Re: =?iso-8859-1?Q?Caf=E9?=", f.Body)

	f, status = header.Encode(enc, header.Field{Name: "To", Body: "Café Owner <owner@example.com>"})
	assert.Equal(t, rfc2047.StatusOK, status)
	assert.Equal(t, "=?iso-8859-1?Q?Caf=E9?= Owner <owner@example.com>", f.Body)

	back := header.Decode(rfc2047.NewDecoder(), f)
	assert.Equal(t, "Café Owner <owner@example.com>", back.Body)
}
