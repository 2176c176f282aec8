/*
Package fonttest assembles small synthetic sfnt fonts for tests.

Fonts are built from raw table data. The builder lays tables out on 4-byte
boundaries and computes correct checksums, unless a test asks for a broken
directory entry.
*/
package fonttest

import (
	"encoding/binary"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// SFNT versions
const (
	TrueType uint32 = 0x00010000
	CFF      uint32 = 0x4f54544f // OTTO
)

type table struct {
	tag    string
	data   []byte
	length *uint32 // override of the declared length
	offset *uint32 // override of the declared offset
}

// Builder collects tables for a synthetic font.
type Builder struct {
	version uint32
	tables  []*table
	sorted  bool
}

// New creates a builder for a TrueType-flavoured font.
func New() *Builder {
	return &Builder{version: TrueType, sorted: true}
}

// Version sets the sfnt version field.
func (b *Builder) Version(v uint32) *Builder {
	b.version = v
	return b
}

// Unsorted keeps the table records in insertion order instead of sorting
// them by tag.
func (b *Builder) Unsorted() *Builder {
	b.sorted = false
	return b
}

// Add appends a table. tag is padded with spaces to 4 bytes.
func (b *Builder) Add(tag string, data []byte) *Builder {
	b.tables = append(b.tables, &table{tag: (tag + "    ")[:4], data: data})
	return b
}

// DeclareLength overrides the length stored in the directory for tag.
func (b *Builder) DeclareLength(tag string, length uint32) *Builder {
	if t := b.find(tag); t != nil {
		t.length = &length
	}
	return b
}

// DeclareOffset overrides the offset stored in the directory for tag.
func (b *Builder) DeclareOffset(tag string, offset uint32) *Builder {
	if t := b.find(tag); t != nil {
		t.offset = &offset
	}
	return b
}

func (b *Builder) find(tag string) *table {
	tag = (tag + "    ")[:4]
	for _, t := range b.tables {
		if t.tag == tag {
			return t
		}
	}
	return nil
}

// Bytes serializes the font.
func (b *Builder) Bytes() []byte {
	tables := make([]*table, len(b.tables))
	copy(tables, b.tables)
	if b.sorted {
		sort.SliceStable(tables, func(i, j int) bool { return tables[i].tag < tables[j].tag })
	}
	n := len(tables)
	dirEnd := 12 + 16*n
	size := dirEnd
	offsets := make([]uint32, n)
	for i, t := range tables {
		offsets[i] = uint32(size)
		size += (len(t.data) + 3) &^ 3
	}
	font := make([]byte, size)
	binary.BigEndian.PutUint32(font[0:], b.version)
	binary.BigEndian.PutUint16(font[4:], uint16(n))
	searchRange, entrySelector := 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	binary.BigEndian.PutUint16(font[6:], uint16(searchRange*16))
	binary.BigEndian.PutUint16(font[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(font[10:], uint16(n*16-searchRange*16))
	for i, t := range tables {
		copy(font[offsets[i]:], t.data)
		rec := font[12+16*i:]
		copy(rec[0:4], t.tag)
		binary.BigEndian.PutUint32(rec[4:], checksum(t.tag, t.data))
		off, length := offsets[i], uint32(len(t.data))
		if t.offset != nil {
			off = *t.offset
		}
		if t.length != nil {
			length = *t.length
		}
		binary.BigEndian.PutUint32(rec[8:], off)
		binary.BigEndian.PutUint32(rec[12:], length)
	}
	return font
}

func checksum(tag string, data []byte) uint32 {
	var sum uint32
	padded := make([]byte, (len(data)+3)&^3)
	copy(padded, data)
	for i := 0; i < len(padded); i += 4 {
		sum += binary.BigEndian.Uint32(padded[i:])
	}
	if tag == "head" && len(data) >= 12 {
		sum -= binary.BigEndian.Uint32(data[8:12])
	}
	return sum
}

// --- name ------------------------------------------------------------------

// NameRecord is the input for one entry of a synthetic name table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Data       []byte
}

// UTF16BE encodes s as UTF-16, big-endian, without byte order mark.
func UTF16BE(s string) []byte {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return b
}

// NameTable serializes a name table. Records are written in the order given.
// For format 1, langTags are stored as UTF-16BE strings.
func NameTable(format uint16, records []NameRecord, langTags ...string) []byte {
	header := 6 + 12*len(records)
	if format == 1 {
		header += 2 + 4*len(langTags)
	}
	var storage []byte
	b := make([]byte, header)
	binary.BigEndian.PutUint16(b[0:], format)
	binary.BigEndian.PutUint16(b[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(b[4:], uint16(header))
	for i, r := range records {
		rec := b[6+12*i:]
		binary.BigEndian.PutUint16(rec[0:], r.PlatformID)
		binary.BigEndian.PutUint16(rec[2:], r.EncodingID)
		binary.BigEndian.PutUint16(rec[4:], r.LanguageID)
		binary.BigEndian.PutUint16(rec[6:], r.NameID)
		binary.BigEndian.PutUint16(rec[8:], uint16(len(r.Data)))
		binary.BigEndian.PutUint16(rec[10:], uint16(len(storage)))
		storage = append(storage, r.Data...)
	}
	if format == 1 {
		lt := b[6+12*len(records):]
		binary.BigEndian.PutUint16(lt[0:], uint16(len(langTags)))
		for i, tag := range langTags {
			enc := UTF16BE(tag)
			binary.BigEndian.PutUint16(lt[2+4*i:], uint16(len(enc)))
			binary.BigEndian.PutUint16(lt[4+4*i:], uint16(len(storage)))
			storage = append(storage, enc...)
		}
	}
	return append(b, storage...)
}

// --- head ------------------------------------------------------------------

// HeadMagic is the magic number of a valid head table.
const HeadMagic uint32 = 0x5F0F3CF5

// Head holds the fields of a synthetic head table which tests care about.
// A zero Magic is replaced by HeadMagic, a zero UnitsPerEm by 1000.
type Head struct {
	MajorVersion     uint16
	MinorVersion     uint16
	FontRevision     uint32
	Magic            uint32
	Flags            uint16
	UnitsPerEm       uint16
	Created          int64
	Modified         int64
	XMin, YMin       int16
	XMax, YMax       int16
	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// HeadTable serializes a 54-byte head table.
func HeadTable(h Head) []byte {
	if h.MajorVersion == 0 && h.MinorVersion == 0 {
		h.MajorVersion = 1
	}
	if h.Magic == 0 {
		h.Magic = HeadMagic
	}
	if h.UnitsPerEm == 0 {
		h.UnitsPerEm = 1000
	}
	b := make([]byte, 54)
	binary.BigEndian.PutUint16(b[0:], h.MajorVersion)
	binary.BigEndian.PutUint16(b[2:], h.MinorVersion)
	binary.BigEndian.PutUint32(b[4:], h.FontRevision)
	binary.BigEndian.PutUint32(b[12:], h.Magic)
	binary.BigEndian.PutUint16(b[16:], h.Flags)
	binary.BigEndian.PutUint16(b[18:], h.UnitsPerEm)
	binary.BigEndian.PutUint64(b[20:], uint64(h.Created))
	binary.BigEndian.PutUint64(b[28:], uint64(h.Modified))
	binary.BigEndian.PutUint16(b[36:], uint16(h.XMin))
	binary.BigEndian.PutUint16(b[38:], uint16(h.YMin))
	binary.BigEndian.PutUint16(b[40:], uint16(h.XMax))
	binary.BigEndian.PutUint16(b[42:], uint16(h.YMax))
	binary.BigEndian.PutUint16(b[50:], uint16(h.IndexToLocFormat))
	binary.BigEndian.PutUint16(b[52:], uint16(h.GlyphDataFormat))
	return b
}
