package ot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/npillmayer/fontmeta/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func headAndName() *fonttest.Builder {
	name := fonttest.NameTable(0, []fonttest.NameRecord{
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x409, NameID: 1, Data: fonttest.UTF16BE("Test")},
	})
	return fonttest.New().
		Add("head", fonttest.HeadTable(fonttest.Head{FontRevision: 0x00010000})).
		Add("name", name)
}

func TestParseHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	otf, err := Parse(headAndName().Bytes())
	require.NoError(t, err)
	require.Equal(t, uint16(2), otf.Header.TableCount)
	require.Equal(t, "TrueType", otf.Header.FontTypeName())
	require.Equal(t, []Tag{T("head"), T("name")}, otf.TableTags())
	require.Empty(t, otf.Warnings(), "well-formed font should not produce warnings")
	require.Empty(t, otf.Errors())
	//
	head, ok := otf.Table(T("head")).Unwrap()
	require.True(t, ok)
	off, length := head.Extent()
	require.Equal(t, uint32(12+2*16), off)
	require.Equal(t, uint32(54), length)
	data, err := otf.TableData(T("head"))
	require.NoError(t, err)
	b, ok := data.Unwrap()
	require.True(t, ok)
	require.Len(t, b, 54)
	require.Equal(t, []byte{0, 1, 0, 0}, b[:4], "head table should start with version 1.0")
}

func TestParseAbsentTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	otf, err := Parse(headAndName().Bytes())
	require.NoError(t, err)
	for _, tag := range []Tag{T("glyf"), T("cvt"), Tag(0), Tag(0xFFFFFFFF)} {
		require.True(t, otf.Table(tag).IsNone(), "expected no table for tag %s", tag)
		data, err := otf.TableData(tag)
		require.NoError(t, err, "absence must not be an error")
		require.True(t, data.IsNone())
	}
	var nilFont *Font
	require.True(t, nilFont.Table(T("head")).IsNone())
}

func TestParseOutlineFlavours(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	for _, version := range []uint32{0x00010000, 0x4f54544f, 0x74727565, 0x74797031} {
		otf, err := Parse(headAndName().Version(version).Bytes())
		require.NoError(t, err, "sfnt version 0x%08X should be accepted", version)
		require.Equal(t, version, otf.Header.FontType)
		require.NotEqual(t, "unknown", otf.Header.FontTypeName())
	}
}

func TestParseEmptyDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	otf, err := Parse([]byte{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Empty(t, otf.TableTags())
	require.True(t, otf.Table(T("head")).IsNone())
}

func TestParseContainerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := headAndName().Bytes()
	tests := []struct {
		name  string
		input []byte
		kind  error
	}{
		{"empty input", []byte{}, ErrTruncatedInput},
		{"3 bytes", []byte{0, 1, 0}, ErrTruncatedInput},
		{"magic only", []byte{0, 1, 0, 0}, ErrTruncatedInput},
		{"11 bytes", font[:11], ErrTruncatedInput},
		{"not a font", append([]byte{0xDE, 0xAD, 0xBE, 0xEF}, font[4:]...), ErrNotAFont},
		{"text file", []byte("hello, world\n"), ErrNotAFont},
		{"collection", append([]byte("ttcf"), font[4:]...), ErrUnsupportedContainer},
		{"directory overrun", font[:12+16+8], ErrTruncatedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otf, err := Parse(tt.input)
			require.Error(t, err)
			require.Nil(t, otf)
			require.True(t, errors.Is(err, tt.kind), "expected %v, have %v", tt.kind, err)
			var fe *FontError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, SeverityCritical, fe.Severity)
		})
	}
}

func TestParseNotAFontMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	_, err := Parse([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrNotAFont)
	require.Contains(t, err.Error(), "0xDEADBEEF")
}

func TestParseNumTablesOverrun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := headAndName().Bytes()
	binary.BigEndian.PutUint16(font[4:], 0xFFFF)
	_, err := Parse(font)
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestParseDuplicateTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := fonttest.New().
		Add("head", fonttest.HeadTable(fonttest.Head{})).
		Add("head", fonttest.HeadTable(fonttest.Head{})).
		Bytes()
	_, err := Parse(font)
	require.ErrorIs(t, err, ErrDuplicateTag)
	require.Contains(t, err.Error(), "head")
}

func TestParseTableOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := headAndName().DeclareLength("name", 100000).Bytes()
	otf, err := Parse(font)
	require.NoError(t, err, "a broken table record must not fail the directory")
	require.True(t, otf.Table(T("name")).IsSome(), "broken record should still be listed")
	data, err := otf.TableData(T("name"))
	require.ErrorIs(t, err, ErrTableOutOfBounds)
	require.True(t, data.IsNone())
	require.Len(t, otf.Errors(), 1)
	//
	// other tables remain usable
	data, err = otf.TableData(T("head"))
	require.NoError(t, err)
	require.True(t, data.IsSome())
}

func TestParseOffsetPlusLengthOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := headAndName().
		DeclareOffset("name", 0xFFFFFFF0).
		DeclareLength("name", 0x20).
		Bytes()
	otf, err := Parse(font)
	require.NoError(t, err)
	_, err = otf.TableData(T("name"))
	require.ErrorIs(t, err, ErrTableOutOfBounds)
}

func TestParseWarnings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	t.Run("misaligned", func(t *testing.T) {
		font := headAndName().DeclareOffset("name", 12+2*16+1).DeclareLength("name", 10).Bytes()
		otf, err := Parse(font)
		require.NoError(t, err)
		require.True(t, hasWarning(otf, T("name"), "aligned"), "%v", otf.Warnings())
		data, err := otf.TableData(T("name"))
		require.NoError(t, err)
		b, _ := data.Unwrap()
		require.Len(t, b, 10)
	})
	t.Run("unsorted", func(t *testing.T) {
		font := fonttest.New().Unsorted().
			Add("name", fonttest.NameTable(0, nil)).
			Add("head", fonttest.HeadTable(fonttest.Head{})).
			Bytes()
		otf, err := Parse(font)
		require.NoError(t, err)
		require.Equal(t, []Tag{T("name"), T("head")}, otf.TableTags())
		require.True(t, hasWarning(otf, T("head"), "sorted"), "%v", otf.Warnings())
		require.True(t, otf.Table(T("head")).IsSome())
	})
	t.Run("checksum", func(t *testing.T) {
		font := headAndName().Bytes()
		name, _ := otf(t, font).Table(T("name")).Unwrap()
		font[name.Offset+1] ^= 0xFF
		broken := otf(t, font)
		require.True(t, hasWarning(broken, T("name"), "checksum"), "%v", broken.Warnings())
	})
	t.Run("head checkSumAdjustment", func(t *testing.T) {
		font := headAndName().Bytes()
		head, _ := otf(t, font).Table(T("head")).Unwrap()
		binary.BigEndian.PutUint32(font[head.Offset+8:], 0x12345678)
		require.Empty(t, otf(t, font).Warnings(), "checkSumAdjustment must not enter the head checksum")
	})
	t.Run("unknown tag", func(t *testing.T) {
		font := headAndName().Add("zzzz", []byte{1, 2, 3}).Bytes()
		parsed := otf(t, font)
		require.Empty(t, parsed.Warnings())
		data, err := parsed.TableData(T("zzzz"))
		require.NoError(t, err)
		b, _ := data.Unwrap()
		require.Equal(t, []byte{1, 2, 3}, b)
	})
}

func otf(t *testing.T, font []byte) *Font {
	parsed, err := Parse(font)
	require.NoError(t, err)
	return parsed
}

func hasWarning(otf *Font, tag Tag, fragment string) bool {
	for _, w := range otf.Warnings() {
		if w.Table == tag && bytes.Contains([]byte(w.Issue), []byte(fragment)) {
			return true
		}
	}
	return false
}

func TestParseIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := headAndName().Bytes()
	a, b := otf(t, font), otf(t, font)
	require.Equal(t, a.Records(), b.Records())
	require.Equal(t, a.Header, b.Header)
}

func FuzzParse(f *testing.F) {
	f.Add(headAndName().Bytes())
	f.Add([]byte("ttcf"))
	f.Add([]byte{0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		otf, err := Parse(data)
		if err != nil {
			var fe *FontError
			if !errors.As(err, &fe) {
				t.Fatalf("error of unexpected type %T: %v", err, err)
			}
			return
		}
		for _, tag := range otf.TableTags() {
			if _, err := otf.TableData(tag); err != nil && !errors.Is(err, ErrTableOutOfBounds) {
				t.Fatalf("unexpected table error: %v", err)
			}
		}
	})
}
