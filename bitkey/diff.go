package bitkey

import "math/bits"

// BitDiff returns the index of the first bit in which a and b differ.
// Bits are counted from the most significant bit of byte 0. If a and b are
// equal, BitDiff returns 8*len(a).
//
// a and b must be of equal length.
func BitDiff(a, b []byte) int {
	assert(len(a) == len(b), "bitkey.BitDiff: buffers differ in length")
	for i := range a {
		if x := a[i] ^ b[i]; x != 0 {
			return i*8 + bits.LeadingZeros8(x)
		}
	}
	return len(a) * 8
}

// FirstDiff returns the first bit position in which a and b differ, looking
// at their common length only. If one key is a prefix of the other (or the
// keys are equal), the common length is returned.
func FirstDiff(a, b Key) int {
	m := min(a.nbits, b.nbits)
	n := (m + 7) / 8
	d := BitDiff(a.bytes[:n], b.bytes[:n])
	return min(d, m)
}

// Compare compares two keys bit-lexicographically. A proper prefix sorts
// before its extensions. The result is -1, 0 or +1.
func Compare(a, b Key) int {
	d := FirstDiff(a, b)
	if d < a.nbits && d < b.nbits {
		if a.Bit(d) < b.Bit(d) {
			return -1
		}
		return 1
	}
	switch {
	case a.nbits < b.nbits:
		return -1
	case a.nbits > b.nbits:
		return 1
	}
	return 0
}
