package rfc2047

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindEncodedWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		from       int
		start, end int
		found      bool
	}{
		{"plain", "no words here", 0, 0, 0, false},
		{"whole", "=?utf-8?Q?abc?=", 0, 0, 15, true},
		{"embedded", "foo =?utf-8?Q?bar?= baz", 0, 4, 19, true},
		{"no separator", "a=?us-ascii?b?SGk=?=b", 0, 1, 20, true},
		{"bad then good", "=?=?utf-8?Q?x?=", 0, 2, 15, true},
		{"no charset", "=??Q?x?=", 0, 0, 0, false},
		{"bad codec", "=?utf-8?X?abc?=", 0, 0, 0, false},
		{"unterminated", "=?utf-8?Q?no end", 0, 0, 0, false},
		{"spaces in text", "=?utf-8?Q?a b?=", 0, 0, 15, true},
		{"question mark in text", "=?utf-8?Q?what?_now?=", 0, 0, 21, true},
		{"language suffix", "=?utf-8*en?Q?Hi?=", 0, 0, 17, true},
		{"second word", "=?utf-8?Q?a?= =?utf-8?Q?b?=", 13, 14, 27, true},
		{"control in text", "=?utf-8?Q?a\x01b?=", 0, 0, 0, false},
		{"word right after bad payload", "=?utf-8?Q?a\x01=?utf-8?Q?b?=", 0, 12, 25, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end, found := findEncodedWord(tt.in, tt.from)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.start, start)
				assert.Equal(t, tt.end, end)
			}
		})
	}
}

func TestSplitWord(t *testing.T) {
	t.Parallel()

	cs, codec, text, err := splitWord("=?utf-8?B?SGVsbG8=?=")
	assert.NoError(t, err)
	assert.Equal(t, "utf-8", cs)
	assert.Equal(t, Base64, codec)
	assert.Equal(t, "SGVsbG8=", text)

	cs, codec, text, err = splitWord("=?iso-8859-1*fr?q?a?b?=")
	assert.NoError(t, err)
	assert.Equal(t, "iso-8859-1", cs)
	assert.Equal(t, QuotedPrintable, codec)
	assert.Equal(t, "a?b", text)

	_, _, _, err = splitWord("=?utf-8?Q?abc")
	assert.ErrorIs(t, err, ErrMalformedEncodedWord)

	_, _, _, err = splitWord("=?utf-8?X?abc?=")
	assert.ErrorIs(t, err, ErrMalformedEncodedWord)

	_, _, _, err = splitWord("=?utf-8??abc?=")
	assert.ErrorIs(t, err, ErrMalformedEncodedWord)
}

func TestLinearWhiteSpace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, lwsLen(""))
	assert.Equal(t, 0, lwsLen("abc"))
	assert.Equal(t, 2, lwsLen(" \tabc"))
	assert.Equal(t, 3, lwsLen("\n\t abc"))
	assert.Equal(t, 0, lwsLen(" \n"))
	assert.Equal(t, 3, lwsLen("   "))

	assert.Equal(t, 0, lwsRLen(""))
	assert.Equal(t, 0, lwsRLen("abc"))
	assert.Equal(t, 2, lwsRLen("abc \t"))
	assert.Equal(t, 0, lwsRLen("abc \n"))
	assert.Equal(t, 3, lwsRLen("   "))
}
