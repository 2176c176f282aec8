package otquery

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/npillmayer/fontmeta/ot"
)

// HeadMagic is the value of field magicNumber of every valid 'head' table.
const HeadMagic uint32 = 0x5F0F3CF5

// HeadTableInfo is a typed query view over OpenType table 'head'.
// Values are decoded directly from the raw table bytes.
type HeadTableInfo struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       Fixed
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            LongDateTime
	Modified           LongDateTime
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
	Warnings           []ot.FontWarning
}

const headTableSize = 54

// DecodeHead decodes table 'head' from its raw bytes.
//
// A table shorter than 54 bytes results in an error wrapping
// ot.ErrTruncatedInput, a wrong magic number in ot.ErrHeadMagicMismatch.
// Unexpected values of version, indexToLocFormat and glyphDataFormat are
// reported as warnings.
func DecodeHead(data []byte) (*HeadTableInfo, error) {
	r := ot.NewReader(data)
	if r.Len() < headTableSize {
		return nil, ot.NewFontError(ot.ErrTruncatedInput, ot.T("head"), "Header",
			fmt.Sprintf("table size %d too small for head table of %d bytes", r.Len(), headTableSize), 0)
	}
	info := &HeadTableInfo{}
	info.MagicNumber, _ = r.U32(12)
	if info.MagicNumber != HeadMagic {
		return nil, ot.NewFontError(ot.ErrHeadMagicMismatch, ot.T("head"), "Header",
			fmt.Sprintf("magic number is 0x%08X, expected 0x%08X", info.MagicNumber, HeadMagic), 12)
	}
	info.MajorVersion, _ = r.U16(0)
	info.MinorVersion, _ = r.U16(2)
	rev, _ := r.I32(4)
	info.FontRevision = Fixed(rev)
	info.CheckSumAdjustment, _ = r.U32(8)
	info.Flags, _ = r.U16(16)
	info.UnitsPerEm, _ = r.U16(18)
	created, _ := r.I64(20)
	modified, _ := r.I64(28)
	info.Created, info.Modified = LongDateTime(created), LongDateTime(modified)
	info.XMin, _ = r.I16(36)
	info.YMin, _ = r.I16(38)
	info.XMax, _ = r.I16(40)
	info.YMax, _ = r.I16(42)
	info.MacStyle, _ = r.U16(44)
	info.LowestRecPPEM, _ = r.U16(46)
	info.FontDirectionHint, _ = r.I16(48)
	info.IndexToLocFormat, _ = r.I16(50)
	info.GlyphDataFormat, _ = r.I16(52)
	if info.MajorVersion != 1 || info.MinorVersion != 0 {
		info.warn(fmt.Sprintf("unexpected version %d.%d", info.MajorVersion, info.MinorVersion), 0)
	}
	if info.IndexToLocFormat != 0 && info.IndexToLocFormat != 1 {
		info.warn(fmt.Sprintf("indexToLocFormat is %d, expected 0 or 1", info.IndexToLocFormat), 50)
	}
	if info.GlyphDataFormat != 0 {
		info.warn(fmt.Sprintf("glyphDataFormat is %d, expected 0", info.GlyphDataFormat), 52)
	}
	tracer().Debugf("head: revision %s, units per em %d", info.FontRevision, info.UnitsPerEm)
	return info, nil
}

func (info *HeadTableInfo) warn(issue string, offset int) {
	tracer().Infof("head table: %s", issue)
	info.Warnings = append(info.Warnings, ot.FontWarning{
		Table:  ot.T("head"),
		Issue:  issue,
		Offset: uint32(offset),
	})
}

// HeadTableOf decodes table 'head' of a font.
// If the font has no head table, an error wrapping ot.ErrMissingTable is
// returned; errors of the table directory entry are passed through.
func HeadTableOf(otf *ot.Font) (*HeadTableInfo, error) {
	data, err := tableData(otf, ot.T("head"))
	if err != nil {
		return nil, err
	}
	return DecodeHead(data)
}

// HeadInfo decodes table 'head' of a font.
// Returns (info, true) on success, or (zero, false) if the table is missing
// or cannot be decoded.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	info, err := HeadTableOf(otf)
	if err != nil {
		tracer().Debugf("head info: %v", err)
		return HeadTableInfo{}, false
	}
	return *info, true
}

// --- Fixed -----------------------------------------------------------------

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

// Float returns f as a floating point number.
func (f Fixed) Float() float64 {
	return float64(f) / 65536
}

// String renders f with the fewest fractional digits (but at least one)
// which identify the 16.16 value exactly, e.g. 0x00018000 as "1.5" and
// 0x00010000 as "1.0".
func (f Fixed) String() string {
	v := f.Float()
	for digits := 1; digits <= 5; digits++ {
		s := strconv.FormatFloat(v, 'f', digits, 64)
		if p, err := strconv.ParseFloat(s, 64); err == nil && math.Round(p*65536) == float64(f) {
			return s
		}
	}
	// five digits always suffice, as 1/65536 > 1e-5
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// --- LONGDATETIME ----------------------------------------------------------

// LongDateTime counts seconds since 1904-01-01T00:00:00Z.
type LongDateTime int64

// macEpoch is the Unix time of 1904-01-01T00:00:00Z.
const macEpoch int64 = -2082844800

// Time converts l to UTC calendar time.
func (l LongDateTime) Time() time.Time {
	return time.Unix(int64(l)+macEpoch, 0).UTC()
}

// String formats l in ISO 8601 with seconds precision, e.g.
// "2024-01-01T00:00:00Z".
func (l LongDateTime) String() string {
	return l.Time().Format("2006-01-02T15:04:05Z")
}
