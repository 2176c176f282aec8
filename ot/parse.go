package ot

import (
	"fmt"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// Accepted values of the sfnt version field.
const (
	sfntVersionTrueType uint32 = 0x00010000
	sfntVersionCFF      uint32 = 0x4f54544f // OTTO
	sfntVersionApple    uint32 = 0x74727565 // true
	sfntVersionType1    uint32 = 0x74797031 // typ1
	sfntCollection      uint32 = 0x74746366 // ttcf
)

const (
	offsetTableSize = 12
	tableRecordSize = 16
)

// Parse parses the table directory of an sfnt font from a byte slice.
// An ot.Font needs ongoing access to the font's byte data after Parse returns.
// The data is assumed immutable while the ot.Font remains in use.
//
// Errors returned are of type *FontError and wrap one of ErrTruncatedInput,
// ErrNotAFont, ErrUnsupportedContainer or ErrDuplicateTag.
// A table record pointing outside of the font data does not fail the parse:
// the error (wrapping ErrTableOutOfBounds) is kept with the record and reported
// by TableData, so that the other tables remain usable.
// Parse does not look into any table; unknown tags are accepted.
func Parse(font []byte) (*Font, error) {
	src := binarySegm(font)
	ec := &errorCollector{}
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	fontType, err := src.u32(0)
	if err != nil {
		return nil, ec.addError(ErrTruncatedInput, 0, "Header",
			fmt.Sprintf("font data of %d bytes too short for sfnt version", len(src)), 0)
	}
	switch fontType {
	case sfntVersionTrueType, sfntVersionCFF, sfntVersionApple, sfntVersionType1:
	case sfntCollection:
		return nil, ec.addError(ErrUnsupportedContainer, 0, "Header",
			"font collections (ttcf) are not supported", 0)
	default:
		return nil, ec.addError(ErrNotAFont, 0, "Header",
			fmt.Sprintf("unrecognized sfnt version 0x%08X", fontType), 0)
	}
	hdr, err := src.view(0, offsetTableSize)
	if err != nil {
		return nil, ec.addError(ErrTruncatedInput, 0, "Header",
			fmt.Sprintf("font data of %d bytes too short for offset table", len(src)), 0)
	}
	h := FontHeader{
		FontType:      fontType,
		TableCount:    u16(hdr[4:]),
		SearchRange:   u16(hdr[6:]),
		EntrySelector: u16(hdr[8:]),
		RangeShift:    u16(hdr[10:]),
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	// TableCount is a uint16, the product cannot overflow an int.
	buf, err := src.view(offsetTableSize, tableRecordSize*int(h.TableCount))
	if err != nil {
		return nil, ec.addError(ErrTruncatedInput, 0, "TableRecords",
			fmt.Sprintf("directory of %d table records exceeds font size %d", h.TableCount, len(src)),
			offsetTableSize)
	}
	otf := &Font{
		Header:  &h,
		binary:  src,
		records: make([]TableRecord, 0, h.TableCount),
		tables:  make(map[Tag]int, h.TableCount),
		broken:  make(map[Tag]error),
	}
	var prevTag Tag
	for i := 0; i < int(h.TableCount); i++ {
		at := uint32(offsetTableSize + i*tableRecordSize)
		b := buf[i*tableRecordSize : (i+1)*tableRecordSize]
		rec := TableRecord{
			Tag:      MakeTag(b[0:4]),
			Checksum: u32(b[4:8]),
			Offset:   u32(b[8:12]),
			Length:   u32(b[12:16]),
		}
		tracer().Debugf("table record %d: %s", i, rec)
		if _, dup := otf.tables[rec.Tag]; dup {
			return nil, ec.addError(ErrDuplicateTag, rec.Tag, "TableRecords",
				fmt.Sprintf("tag '%s' occurs more than once in the table directory", rec.Tag), at)
		}
		// "all tables must begin on four byte boundries"
		if rec.Offset&3 != 0 {
			ec.addWarning(rec.Tag, fmt.Sprintf("table offset %d is not 4-byte aligned", rec.Offset), at)
		}
		if i > 0 && rec.Tag < prevTag {
			ec.addWarning(rec.Tag, "table records are not sorted by tag", at)
		}
		prevTag = rec.Tag
		if !KnownTable(rec.Tag) {
			tracer().Debugf("skipping unknown table '%s'", rec.Tag)
		}
		// 64-bit arithmetic: offset+length may exceed 32 bits in a corrupt font
		if end := uint64(rec.Offset) + uint64(rec.Length); end > uint64(len(src)) {
			otf.broken[rec.Tag] = ec.addError(ErrTableOutOfBounds, rec.Tag, "Bounds",
				fmt.Sprintf("bounds [%d:%d] exceed font size %d", rec.Offset, end, len(src)), at)
		}
		otf.tables[rec.Tag] = len(otf.records)
		otf.records = append(otf.records, rec)
	}
	for _, t := range RequiredTables {
		if _, ok := otf.tables[T(t)]; !ok {
			tracer().Debugf("font lacks required table '%s'", t)
		}
	}
	verifyChecksums(otf, ec)
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// verifyChecksums compares the checksum of every table record with the
// checksum computed from the table data. A mismatch is reported as a warning.
func verifyChecksums(otf *Font, ec *errorCollector) {
	for _, rec := range otf.records {
		if otf.broken[rec.Tag] != nil {
			continue
		}
		data := otf.binary[rec.Offset : rec.Offset+rec.Length]
		sum := TableChecksum(data)
		if rec.Tag == T("head") && len(data) >= 12 {
			// checkSumAdjustment is treated as 0 for the head checksum
			sum -= u32(data[8:12])
		}
		if sum != rec.Checksum {
			ec.addWarning(rec.Tag, fmt.Sprintf("checksum mismatch: recorded 0x%08X, computed 0x%08X",
				rec.Checksum, sum), rec.Offset)
		}
	}
}
