package charset

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	htmlcharset "golang.org/x/net/html/charset"
)

// encodings maps canonical charset names to their implementation. US-ASCII
// and UTF-8 are handled directly by TextConverter and are only listed so
// that they count as known.
var encodings = map[string]encoding.Encoding{
	USASCII: nil,
	UTF8:    nil,

	"iso-8859-1":  charmap.ISO8859_1,
	"iso-8859-2":  charmap.ISO8859_2,
	"iso-8859-3":  charmap.ISO8859_3,
	"iso-8859-4":  charmap.ISO8859_4,
	"iso-8859-5":  charmap.ISO8859_5,
	"iso-8859-6":  charmap.ISO8859_6,
	"iso-8859-7":  charmap.ISO8859_7,
	"iso-8859-8":  charmap.ISO8859_8,
	"iso-8859-9":  charmap.ISO8859_9,
	"iso-8859-10": charmap.ISO8859_10,
	"iso-8859-13": charmap.ISO8859_13,
	"iso-8859-14": charmap.ISO8859_14,
	"iso-8859-15": charmap.ISO8859_15,
	"iso-8859-16": charmap.ISO8859_16,

	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"windows-874":  charmap.Windows874,

	"ibm437":    charmap.CodePage437,
	"ibm850":    charmap.CodePage850,
	"ibm852":    charmap.CodePage852,
	"ibm855":    charmap.CodePage855,
	"ibm858":    charmap.CodePage858,
	"ibm866":    charmap.CodePage866,
	"koi8-r":    charmap.KOI8R,
	"koi8-u":    charmap.KOI8U,
	"macintosh": charmap.Macintosh,

	"shift_jis":   japanese.ShiftJIS,
	"euc-jp":      japanese.EUCJP,
	"iso-2022-jp": japanese.ISO2022JP,

	"euc-kr": korean.EUCKR,

	"gb2312":  simplifiedchinese.GB18030, // GB18030 is a superset of GB2312
	"gbk":     simplifiedchinese.GBK,
	"gb18030": simplifiedchinese.GB18030,
	"big5":    traditionalchinese.Big5,

	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16":   unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// aliases maps non-standard or alternate names to the canonical name.
var aliases = map[string]string{
	"ascii":            USASCII,
	"us":               USASCII,
	"ansi_x3.4-1968":   USASCII,
	"iso646-us":        USASCII,
	"cp367":            USASCII,
	"utf8":             UTF8,
	"latin1":           "iso-8859-1",
	"iso8859-1":        "iso-8859-1",
	"iso_8859-1":       "iso-8859-1",
	"l1":               "iso-8859-1",
	"latin2":           "iso-8859-2",
	"iso8859-2":        "iso-8859-2",
	"latin3":           "iso-8859-3",
	"latin4":           "iso-8859-4",
	"cyrillic":         "iso-8859-5",
	"arabic":           "iso-8859-6",
	"greek":            "iso-8859-7",
	"hebrew":           "iso-8859-8",
	"latin5":           "iso-8859-9",
	"latin6":           "iso-8859-10",
	"latin7":           "iso-8859-13",
	"latin8":           "iso-8859-14",
	"latin9":           "iso-8859-15",
	"iso8859-15":       "iso-8859-15",
	"latin10":          "iso-8859-16",
	"cp1250":           "windows-1250",
	"cp1251":           "windows-1251",
	"cp1252":           "windows-1252",
	"cp1253":           "windows-1253",
	"cp1254":           "windows-1254",
	"cp1255":           "windows-1255",
	"cp1256":           "windows-1256",
	"cp1257":           "windows-1257",
	"cp1258":           "windows-1258",
	"cp874":            "windows-874",
	"ms874":            "windows-874",
	"tis-620":          "windows-874",
	"ms-ansi":          "windows-1252",
	"cp437":            "ibm437",
	"cp850":            "ibm850",
	"cp852":            "ibm852",
	"cp855":            "ibm855",
	"cp858":            "ibm858",
	"cp866":            "ibm866",
	"koi8r":            "koi8-r",
	"koi8u":            "koi8-u",
	"mac":              "macintosh",
	"shift-jis":        "shift_jis",
	"sjis":             "shift_jis",
	"x-sjis":           "shift_jis",
	"ms_kanji":         "shift_jis",
	"csshiftjis":       "shift_jis",
	"ms932":            "shift_jis",
	"eucjp":            "euc-jp",
	"iso2022jp":        "iso-2022-jp",
	"euckr":            "euc-kr",
	"5601":             "euc-kr",
	"ks_c_5601":        "euc-kr",
	"ks_c_5601-1987":   "euc-kr",
	"ansi936":          "gb2312",
	"cp936":            "gbk",
	"ms936":            "gbk",
	"big-5":            "big5",
	"ansi950":          "big5",
	"cp950":            "big5",
	"x-unknown":        Unknown8Bit,
	"x-unknown-8bit":   Unknown8Bit,
	"unknown-8bit":     Unknown8Bit,
	"utf-16be-nobom":   "utf-16be",
	"utf-16le-nobom":   "utf-16le",
	"unicode-1-1-utf8": UTF8,
}

// Canonical returns the canonical form of the given charset name. Names are
// lower-cased and aliases are resolved. Names this package does not know
// about are looked up in the IANA registry and, failing that, are returned
// lower-cased and otherwise untouched.
func Canonical(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if c, isAlias := aliases[n]; isAlias {
		return c
	}

	if _, known := encodings[n]; known {
		return n
	}

	if e, err := ianaindex.MIME.Encoding(n); err == nil && e != nil {
		if mn, err := ianaindex.MIME.Name(e); err == nil {
			mn = strings.ToLower(mn)
			if c, isAlias := aliases[mn]; isAlias {
				return c
			}
			return mn
		}
	}

	return n
}

// IsUSASCII returns true if the named charset is US-ASCII.
func IsUSASCII(name string) bool { return Canonical(name) == USASCII }

// IsUTF8 returns true if the named charset is UTF-8.
func IsUTF8(name string) bool { return Canonical(name) == UTF8 }

// Lookup returns the encoding for the given charset name. The built-in table
// is consulted first, then the IANA MIME index, and finally the WHATWG label
// table used by browsers. The US-ASCII and UTF-8 charsets return a nil
// encoding because TextConverter handles them directly.
func Lookup(name string) (encoding.Encoding, error) {
	n := Canonical(name)
	if e, known := encodings[n]; known {
		return e, nil
	}

	if e, err := ianaindex.MIME.Encoding(n); err == nil && e != nil {
		return e, nil
	}

	if e, _ := htmlcharset.Lookup(n); e != nil {
		return e, nil
	}

	return nil, ErrUnsupportedCharset
}
