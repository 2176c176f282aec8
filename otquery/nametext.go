package otquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextEncoding tells how the bytes of a name record are turned into text.
// It is selected by the (platform, encoding) pair of the record.
type TextEncoding int

const (
	EncRaw      TextEncoding = iota // not decodable, rendered as hex bytes
	EncUTF16BE                      // UTF-16, big-endian
	EncMacRoman                     // Mac OS Roman
	EncMacOther                     // other Macintosh scripts, ASCII half only
	EncASCII                        // 7-bit ASCII
	EncLatin1                       // ISO 8859-1
)

func (enc TextEncoding) String() string {
	switch enc {
	case EncUTF16BE:
		return "UTF-16BE"
	case EncMacRoman:
		return "MacRoman"
	case EncMacOther:
		return "Mac(other)"
	case EncASCII:
		return "ASCII"
	case EncLatin1:
		return "Latin-1"
	}
	return "raw"
}

// TextEncodingFor selects the text encoding for a name record.
//
// Windows records are UTF-16BE for every encoding ID, including symbol fonts,
// as is common practice. ISO encodings other than ASCII, ISO 10646 and
// ISO 8859-1, and all unknown platforms cannot be decoded.
func TextEncodingFor(platform PlatformID, encoding EncodingID) TextEncoding {
	switch platform {
	case PlatformIDUnicode, PlatformIDWindows:
		return EncUTF16BE
	case PlatformIDMacintosh:
		if encoding == EncodingIDMacRoman {
			return EncMacRoman
		}
		return EncMacOther
	case PlatformIDISO:
		switch encoding {
		case EncodingIDISOASCII:
			return EncASCII
		case EncodingIDISO10646:
			return EncUTF16BE
		case EncodingIDISO8859_1:
			return EncLatin1
		}
	}
	return EncRaw
}

// DecodeNameText decodes the bytes of a name record.
//
// UTF-16BE input of odd length has its trailing byte dropped; this is flagged
// by the second return value. Bytes which cannot be represented are replaced
// by U+FFFD. DecodeNameText never fails: if all else fails, the bytes are
// rendered as a hex placeholder like "<DE AD>".
func DecodeNameText(enc TextEncoding, b []byte) (string, bool) {
	switch enc {
	case EncUTF16BE:
		odd := len(b)%2 == 1
		if odd {
			b = b[:len(b)-1]
		}
		s, err := decodeNameUTF16(b)
		if err != nil {
			tracer().Errorf("%v", err)
			return hexPlaceholder(b), odd
		}
		return s, odd
	case EncMacRoman:
		return decodeCharmap(charmap.Macintosh, b), false
	case EncLatin1:
		return decodeCharmap(charmap.ISO8859_1, b), false
	case EncMacOther:
		return decodeLowHalf(b, charmap.Macintosh), false
	case EncASCII:
		return decodeLowHalf(b, nil), false
	}
	return hexPlaceholder(b), false
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

func decodeCharmap(cm *charmap.Charmap, b []byte) string {
	s, _, err := transform.String(cm.NewDecoder(), string(b))
	if err != nil { // single-byte charmaps decode every byte
		tracer().Errorf("decoding %s: %v", cm, err)
		return hexPlaceholder(b)
	}
	return s
}

// decodeLowHalf decodes bytes < 0x80 and replaces all others by U+FFFD.
// With cm == nil, the low half is taken as ASCII.
func decodeLowHalf(b []byte, cm *charmap.Charmap) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch {
		case c >= 0x80:
			sb.WriteRune(utf8.RuneError)
		case cm != nil:
			sb.WriteRune(cm.DecodeByte(c))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// hexPlaceholder renders b as "<XX XX ...>", and an empty b as "<>".
func hexPlaceholder(b []byte) string {
	return fmt.Sprintf("<% X>", b)
}
