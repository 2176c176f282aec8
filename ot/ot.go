package ot

import (
	"fmt"
	"strings"
)

// Font represents the table directory of an sfnt font (TrueType or OpenType).
// It keeps the complete byte image of the font; tables are views into it.
//
// Font does not interpret any table. Decoders for individual tables live in
// package otquery and receive their data through TableData.
type Font struct {
	Header        *FontHeader
	binary        binarySegm    // the complete font image
	records       []TableRecord // table records in file order
	tables        map[Tag]int   // tag → index into records
	broken        map[Tag]error // records pointing outside of the font data
	parseWarnings []FontWarning // diagnostics accumulated during parsing
}

// FontHeader is the offset table at the start of an sfnt file.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
type FontHeader struct {
	FontType      uint32
	TableCount    uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

// TableRecord is an entry of the table directory.
type TableRecord struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Extent returns offset and byte size of a table within the font's binary data.
func (rec TableRecord) Extent() (uint32, uint32) {
	return rec.Offset, rec.Length
}

func (rec TableRecord) String() string {
	return fmt.Sprintf("%s[%d:%d] checksum=0x%08X", rec.Tag, rec.Offset, rec.Offset+rec.Length, rec.Checksum)
}

// Table returns the directory record for a given tag. If a table for the tag
// is not contained in the font, None is returned. Absence is not an error.
//
// Table tag names are case-sensitive, following the names in the OpenType
// specification, e.g.
//
//	head, _ := otf.Table(ot.T("head")).Unwrap()
//	cvt := otf.Table(ot.T("cvt "))
func (otf *Font) Table(tag Tag) Option[TableRecord] {
	if otf == nil {
		return None[TableRecord]()
	}
	if i, ok := otf.tables[tag]; ok {
		return Some(otf.records[i])
	}
	return None[TableRecord]()
}

// TableData returns the bytes of the table with a given tag. The three
// possible outcomes are kept apart:
//
//   - table present and within bounds: Some(bytes), nil
//   - table not present: None, nil
//   - table record malformed: None, error wrapping ErrTableOutOfBounds
//
// The bytes are a view into the font image and must be treated as read-only.
func (otf *Font) TableData(tag Tag) (Option[[]byte], error) {
	rec, ok := otf.Table(tag).Unwrap()
	if !ok {
		return None[[]byte](), nil
	}
	if err := otf.broken[tag]; err != nil {
		return None[[]byte](), err
	}
	return Some([]byte(otf.binary[rec.Offset : rec.Offset+rec.Length])), nil
}

// Errors returns the errors of table records which could not be resolved
// against the font data, in directory order.
func (otf *Font) Errors() []error {
	errs := make([]error, 0, len(otf.broken))
	for _, rec := range otf.records {
		if err := otf.broken[rec.Tag]; err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// TableTags returns a list of tags, one for each table contained in the font,
// in directory order.
func (otf *Font) TableTags() []Tag {
	var tags = make([]Tag, 0, len(otf.records))
	for _, rec := range otf.records {
		tags = append(tags, rec.Tag)
	}
	return tags
}

// Records returns the table records in file order.
func (otf *Font) Records() []TableRecord {
	return otf.records
}

// Binary returns the complete font image.
func (otf *Font) Binary() []byte {
	return otf.binary
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that did not prevent parsing.
func (otf *Font) Warnings() []FontWarning {
	if otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// FontTypeName returns a short name for the outline flavour given by the sfnt version.
func (h FontHeader) FontTypeName() string {
	switch h.FontType {
	case sfntVersionTrueType, sfntVersionApple:
		return "TrueType"
	case sfntVersionCFF:
		return "OpenType/CFF"
	case sfntVersionType1:
		return "Type 1"
	}
	return "unknown"
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType specification as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline.
//
// Tags compare byte-exactly, including trailing spaces ('cvt ').
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("cmap"))
//
// If b is shorter or longer, it will be silently extended or cut as appropriate
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter, it will be padded with spaces; if it is longer, it will be cut.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

// String returns the tag as 4 characters. Non-printable bytes are
// shown as '?'.
func (t Tag) String() string {
	var sb strings.Builder
	for _, c := range []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	} {
		if c < 0x20 || c > 0x7e {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// --- Lookup results --------------------------------------------------------

// Option is the result of a directory lookup: a value for a table which is
// present, or nothing. Absence of a table is a regular outcome, not an error.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a value found in the directory.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the result for a table not present in the directory.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome is true if the lookup found a table.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone is true if the lookup found nothing.
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value found and whether there was one.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}
