package ot

// TableChecksum computes the checksum of a table as defined by the OpenType
// specification: the sum of the table's big-endian uint32 words, with the
// last word zero-padded if the table length is not a multiple of 4.
// Overflow wraps around.
func TableChecksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += u32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var last [4]byte
		copy(last[:], data)
		sum += u32(last[:])
	}
	return sum
}
