package otquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fontmeta/ot"
	"golang.org/x/image/font/sfnt"
)

const (
	nameHeaderSize    = 6
	nameRecordSize    = 12
	langTagRecordSize = 4
)

// NameRecord is a decoded entry of table 'name'.
type NameRecord struct {
	Platform     PlatformID
	Encoding     EncodingID
	LanguageID   uint16
	NameID       sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	Length       uint16      // string length in bytes
	StringOffset uint16      // from start of string storage
	TextEncoding TextEncoding
	Raw          []byte // view into the table, not copied
	Text         string // decoded form of Raw
}

func (rec NameRecord) key() nameKey {
	return nameKey{rec.Platform, rec.Encoding, rec.LanguageID, uint16(rec.NameID)}
}

// LangTagRecord is a custom language tag of a format 1 name table.
// Language IDs 0x8000, 0x8001, … refer to these records.
type LangTagRecord struct {
	Length uint16
	Offset uint16
	Tag    string // BCP 47 language tag, decoded from UTF-16BE
}

// NameTable is the decoded table 'name'.
type NameTable struct {
	Format        uint16
	Count         uint16
	StorageOffset uint16
	Records       []NameRecord    // in file order
	LangTags      []LangTagRecord // format 1 only
	Warnings      []ot.FontWarning
}

func nameError(kind error, section, issue string, offset int) error {
	return ot.NewFontError(kind, ot.T("name"), section, issue, uint32(offset))
}

// DecodeName decodes table 'name' from its raw bytes.
//
// Errors wrap ot.ErrTruncatedInput (header, records or strings beyond the
// end of the table) or ot.ErrUnsupportedNameFormat (format other than 0 or 1).
// The decoder does not rely on records being sorted.
func DecodeName(data []byte) (*NameTable, error) {
	r := ot.NewReader(data)
	if r.Len() < nameHeaderSize {
		return nil, nameError(ot.ErrTruncatedInput, "Header",
			fmt.Sprintf("table size %d too small for name header", r.Len()), 0)
	}
	nt := &NameTable{}
	nt.Format, _ = r.U16(0)
	nt.Count, _ = r.U16(2)
	nt.StorageOffset, _ = r.U16(4)
	if nt.Format > 1 {
		return nil, nameError(ot.ErrUnsupportedNameFormat, "Header",
			fmt.Sprintf("name table format %d", nt.Format), 0)
	}
	recordsEnd := nameHeaderSize + int(nt.Count)*nameRecordSize
	if recordsEnd > r.Len() {
		return nil, nameError(ot.ErrTruncatedInput, "NameRecord",
			fmt.Sprintf("%d name records exceed table size %d", nt.Count, r.Len()), nameHeaderSize)
	}
	storage := int(nt.StorageOffset)
	nt.Records = make([]NameRecord, 0, nt.Count)
	for i := range int(nt.Count) {
		at := nameHeaderSize + i*nameRecordSize
		rec, err := decodeNameRecord(r, at, storage)
		if err != nil {
			return nil, err
		}
		var odd bool
		rec.Text, odd = DecodeNameText(rec.TextEncoding, rec.Raw)
		if odd {
			nt.warn(fmt.Sprintf("name record %s: odd length %d for UTF-16 string, last byte dropped",
				rec.key(), rec.Length), at)
		}
		nt.Records = append(nt.Records, rec)
	}
	if nt.Format == 1 {
		if err := nt.decodeLangTags(r, recordsEnd); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("name table format %d with %d records", nt.Format, len(nt.Records))
	return nt, nil
}

func decodeNameRecord(r ot.Reader, at, storage int) (NameRecord, error) {
	var rec NameRecord
	p, _ := r.U16(at)
	e, _ := r.U16(at + 2)
	rec.Platform, rec.Encoding = PlatformID(p), EncodingID(e)
	rec.LanguageID, _ = r.U16(at + 4)
	n, _ := r.U16(at + 6)
	rec.NameID = sfnt.NameID(n)
	rec.Length, _ = r.U16(at + 8)
	rec.StringOffset, _ = r.U16(at + 10)
	rec.TextEncoding = TextEncodingFor(rec.Platform, rec.Encoding)
	raw, err := r.Bytes(storage+int(rec.StringOffset), int(rec.Length))
	if err != nil {
		return rec, nameError(ot.ErrTruncatedInput, "NameRecord",
			fmt.Sprintf("string of name record %s at storage offset %d (length %d) exceeds table size %d",
				rec.key(), rec.StringOffset, rec.Length, r.Len()), at)
	}
	rec.Raw = raw
	return rec, nil
}

// decodeLangTags reads the language tag records following the name records
// of a format 1 table. Lang-tag strings are always UTF-16BE.
func (nt *NameTable) decodeLangTags(r ot.Reader, at int) error {
	count, err := r.U16(at)
	if err != nil {
		return nameError(ot.ErrTruncatedInput, "LangTagRecord",
			"missing language tag count of format 1 name table", at)
	}
	if _, err := r.Bytes(at+2, int(count)*langTagRecordSize); err != nil {
		return nameError(ot.ErrTruncatedInput, "LangTagRecord",
			fmt.Sprintf("%d language tag records exceed table size %d", count, r.Len()), at)
	}
	nt.LangTags = make([]LangTagRecord, count)
	for i := range nt.LangTags {
		lt := &nt.LangTags[i]
		recAt := at + 2 + i*langTagRecordSize
		lt.Length, _ = r.U16(recAt)
		lt.Offset, _ = r.U16(recAt + 2)
		raw, err := r.Bytes(int(nt.StorageOffset)+int(lt.Offset), int(lt.Length))
		if err != nil {
			return nameError(ot.ErrTruncatedInput, "LangTagRecord",
				fmt.Sprintf("language tag %d exceeds table size %d", i, r.Len()), recAt)
		}
		var odd bool
		lt.Tag, odd = DecodeNameText(EncUTF16BE, raw)
		if odd {
			nt.warn(fmt.Sprintf("language tag %d: odd length %d for UTF-16 string", i, lt.Length), recAt)
		}
	}
	return nil
}

func (nt *NameTable) warn(issue string, offset int) {
	tracer().Infof("name table: %s", issue)
	nt.Warnings = append(nt.Warnings, ot.FontWarning{
		Table:  ot.T("name"),
		Issue:  issue,
		Offset: uint32(offset),
	})
}

// NameTableOf decodes table 'name' of a font.
// If the font has no name table, an error wrapping ot.ErrMissingTable is
// returned; errors of the table directory entry are passed through.
func NameTableOf(otf *ot.Font) (*NameTable, error) {
	data, err := tableData(otf, ot.T("name"))
	if err != nil {
		return nil, err
	}
	return DecodeName(data)
}

func tableData(otf *ot.Font, tag ot.Tag) ([]byte, error) {
	data, err := otf.TableData(tag)
	if err != nil {
		return nil, err
	}
	b, ok := data.Unwrap()
	if !ok {
		tracer().Debugf("no %s table found in font", tag)
		return nil, ot.NewFontError(ot.ErrMissingTable, tag, "Directory", "table not present in font", 0)
	}
	return b, nil
}

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table.
//
// Only Unicode and Windows records are yielded, and empty strings are skipped.
// A name table which cannot be decoded yields nothing.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	names, err := NameTableOf(otf)
	if err != nil {
		tracer().Debugf("names range: %v", err)
	}
	return func(yield func(sfnt.NameID, string) bool) {
		if names == nil {
			return
		}
		for _, rec := range names.Records {
			if !isSupportedNameEncoding(rec.key()) || rec.Text == "" {
				continue
			}
			if !yield(rec.NameID, rec.Text) {
				return
			}
		}
	}
}

func isSupportedNameEncoding(key nameKey) bool {
	return key.Platform == PlatformIDUnicode || key.Platform == PlatformIDWindows &&
		(key.Encoding == EncodingIDWindowsBMP || key.Encoding == EncodingIDWindowsFull)
}
