package otquery

import "fmt"

// PlatformID is the platform of a name record.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDISO       PlatformID = 2 // deprecated
	PlatformIDWindows   PlatformID = 3
)

func (p PlatformID) String() string {
	switch p {
	case PlatformIDUnicode:
		return "Unicode"
	case PlatformIDMacintosh:
		return "Macintosh"
	case PlatformIDISO:
		return "ISO"
	case PlatformIDWindows:
		return "Microsoft"
	}
	return fmt.Sprintf("platform(%d)", uint16(p))
}

// EncodingID is a platform-specific encoding identifier of a name record.
type EncodingID uint16

const (
	EncodingIDUnicodeBMP EncodingID = 3

	EncodingIDMacRoman EncodingID = 0

	EncodingIDISOASCII  EncodingID = 0
	EncodingIDISO10646  EncodingID = 1
	EncodingIDISO8859_1 EncodingID = 2

	EncodingIDWindowsSymbol EncodingID = 0
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDWindowsFull   EncodingID = 10
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16
	Name     uint16
}

func (k nameKey) String() string {
	return fmt.Sprintf("%s/%d/0x%04X/%d", k.Platform, k.Encoding, k.Language, k.Name)
}
