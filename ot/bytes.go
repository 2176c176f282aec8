package ot

import "fmt"

// Reading bytes from a font's binary representation.
// All multi-byte values in an sfnt are big-endian.

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func u64(b []byte) uint64 {
	_ = b[7] // Bounds check hint to compiler
	return uint64(u32(b[0:4]))<<32 | uint64(u32(b[4:8]))
}

// --- Byte segments ---------------------------------------------------------

// binarySegm is a segment of byte data: either the complete font image or a
// view onto one of its tables. Every accessor is bounds-checked and reports
// ErrTruncatedInput instead of panicking. Offsets are relative to the start
// of the segment; there is no alignment requirement.
type binarySegm []byte

// Size returns the number of bytes in the segment.
func (b binarySegm) Size() int {
	return len(b)
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b, i.e. no data is copied.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, fmt.Errorf("%w: %d bytes at offset %d exceed segment of size %d",
			ErrTruncatedInput, n, offset, len(b))
	}
	return b[offset : offset+n], nil
}

// bytes is view under the name the byte reader operations are known by.
func (b binarySegm) bytes(offset, n int) ([]byte, error) {
	return b.view(offset, n)
}

// u8 returns the byte in b at offset i.
func (b binarySegm) u8(i int) (uint8, error) {
	buf, err := b.view(i, 1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

func (b binarySegm) i32(i int) (int32, error) {
	n, err := b.u32(i)
	return int32(n), err
}

func (b binarySegm) i64(i int) (int64, error) {
	buf, err := b.view(i, 8)
	if err != nil {
		return 0, err
	}
	return int64(u64(buf)), nil
}

// tag returns the 4 bytes at offset i as a Tag.
func (b binarySegm) tag(i int) (Tag, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return MakeTag(buf), nil
}

// --- Exported reader -------------------------------------------------------

// Reader is a random-access, bounds-checked, read-only view over a byte image.
// Table decoders outside of package ot use it to interpret table data handed
// out by Font.TableData.
type Reader struct {
	data binarySegm
}

// NewReader wraps b. b is not copied and must not change while the reader
// is in use.
func NewReader(b []byte) Reader {
	return Reader{data: binarySegm(b)}
}

// Len returns the size of the underlying image.
func (r Reader) Len() int { return r.data.Size() }

// U8 reads a byte at offset o.
func (r Reader) U8(o int) (uint8, error) { return r.data.u8(o) }

// U16 reads a big-endian uint16 at offset o.
func (r Reader) U16(o int) (uint16, error) { return r.data.u16(o) }

// U32 reads a big-endian uint32 at offset o.
func (r Reader) U32(o int) (uint32, error) { return r.data.u32(o) }

// I16 reads a big-endian int16 at offset o.
func (r Reader) I16(o int) (int16, error) { return r.data.i16(o) }

// I32 reads a big-endian int32 at offset o.
func (r Reader) I32(o int) (int32, error) { return r.data.i32(o) }

// I64 reads a big-endian int64 at offset o.
func (r Reader) I64(o int) (int64, error) { return r.data.i64(o) }

// Bytes returns a view of n bytes at offset o.
func (r Reader) Bytes(o, n int) ([]byte, error) { return r.data.bytes(o, n) }

// Tag reads 4 bytes at offset o as a Tag.
func (r Reader) Tag(o int) (Tag, error) { return r.data.tag(o) }
