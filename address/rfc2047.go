package address

import (
	"strings"

	"github.com/zostay/go-rfc2047/rfc2047"
)

// defaultColumn is the column assumed for the first encoded word when no
// header tag is given.
const defaultColumn = 32

// EncodeList encodes the display names in l for use in the header named by
// tag, such as "To". Group names are encoded when the group has no display
// name. Display names are encoded with RFC822Specials protected, so the
// result never needs quoting. The tag is only used to find the column the
// header body starts in.
//
// Encoding never fails, but when a name cannot be converted cleanly a warning
// is logged through the Encoder's logger.
func EncodeList(enc *rfc2047.Encoder, l List, tag string) List {
	col := defaultColumn
	if tag != "" {
		col = len(tag) + 2
	}

	log := enc.Config().Logger
	out := make(List, len(l))
	copy(out, l)
	for i := range out {
		e := &out[i]

		var target *string
		switch {
		case e.Personal != "":
			target = &e.Personal
		case e.Group && e.Mailbox != "":
			target = &e.Mailbox
		default:
			continue
		}

		encoded, status := enc.EncodeString(*target, col, true)
		if status != rfc2047.StatusOK {
			log.WithField("status", status.String()).
				WithField("tag", tag).
				Warn("address phrase was encoded from raw bytes")
		}
		*target = encoded
	}

	return out
}

// DecodeList decodes the display names in l. A display name is decoded when
// it contains an encoded word or when the Decoder has assumed charsets to
// apply to unencoded text. A group name is decoded when the group has no
// display name and its name contains an encoded word.
func DecodeList(dec *rfc2047.Decoder, l List) List {
	assumed := len(dec.Config().AssumedCharsets) > 0

	out := make(List, len(l))
	copy(out, l)
	for i := range out {
		e := &out[i]
		switch {
		case e.Personal != "" && (assumed || strings.Contains(e.Personal, "=?")):
			e.Personal = dec.Decode(e.Personal)
		case e.Group && strings.Contains(e.Mailbox, "=?"):
			e.Mailbox = dec.Decode(e.Mailbox)
		}
	}

	return out
}
