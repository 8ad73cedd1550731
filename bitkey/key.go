package bitkey

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBitLength signals a bit length which does not fit the supplied buffer.
var ErrBitLength = errors.New("bitkey: bit length exceeds buffer")

// Key is an immutable bit-string.
//
// A key created by
//
//	Key{}
//
// is valid and represents the empty key (zero bits).
type Key struct {
	bytes []byte // ceil(nbits/8) bytes, insignificant trailing bits cleared
	nbits int
}

// New creates a key from the first nbits bits of buf.
//
// nbits must be in the range 0…8*len(buf); violations are programming
// errors and panic. Use Make to receive an error instead.
func New(buf []byte, nbits int) Key {
	k, err := Make(buf, nbits)
	assert(err == nil, "bitkey.New: bit length exceeds buffer")
	return k
}

// Make creates a key from the first nbits bits of buf. The buffer is copied.
func Make(buf []byte, nbits int) (Key, error) {
	if nbits < 0 || nbits > 8*len(buf) {
		tracer().Errorf("bitkey: cannot make key of %d bits from %d bytes", nbits, len(buf))
		return Key{}, fmt.Errorf("%w: %d bits from %d bytes", ErrBitLength, nbits, len(buf))
	}
	if nbits == 0 {
		return Key{}, nil
	}
	n := (nbits + 7) / 8
	b := make([]byte, n)
	copy(b, buf[:n])
	if r := nbits % 8; r != 0 {
		b[n-1] &= byte(0xff << (8 - r))
	}
	return Key{bytes: b, nbits: nbits}, nil
}

// FromBytes creates a key spanning all bits of b.
func FromBytes(b []byte) Key {
	return New(b, 8*len(b))
}

// FromString creates a key spanning all bytes of s.
func FromString(s string) Key {
	return FromBytes([]byte(s))
}

// Len returns the length of k in bits.
func (k Key) Len() int {
	return k.nbits
}

// SizeBytes returns the number of bytes needed to hold the bits of k.
func (k Key) SizeBytes() int {
	return len(k.bytes)
}

// IsEmpty reports whether k has zero bits.
func (k Key) IsEmpty() bool {
	return k.nbits == 0
}

// Bytes returns the underlying bytes of k. Clients must not modify them.
func (k Key) Bytes() []byte {
	return k.bytes
}

// Bit returns bit i of k, where bit 0 is the most significant bit of byte 0.
// i must be less than k.Len().
func (k Key) Bit(i int) uint8 {
	assert(i >= 0 && i < k.nbits, "bitkey.Bit: index out of range")
	return (k.bytes[i>>3] >> (7 - uint(i&7))) & 1
}

// Equal reports whether k and other have the same length and the same
// significant bits.
func (k Key) Equal(other Key) bool {
	if k.nbits != other.nbits {
		return false
	}
	for i := range k.bytes {
		if k.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// String returns a short representation of k: printable keys are quoted,
// others are shown in hex. The bit length follows a slash.
func (k Key) String() string {
	if k.nbits%8 == 0 && isPrintable(k.bytes) {
		return strconv.Quote(string(k.bytes)) + "/" + strconv.Itoa(k.nbits)
	}
	var sb strings.Builder
	sb.WriteString("0x")
	sb.WriteString(hex.EncodeToString(k.bytes))
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(k.nbits))
	return sb.String()
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
