/*
Package keymaker projects typed values onto order-preserving bit-string keys.

For every supported type T, a key maker is a pure function from T to
bitkey.Key such that the bit-lexicographic order of the keys equals the
natural order of the values:

  - unsigned integers encode as their big-endian bytes,
  - signed integers encode as big-endian two's complement with the sign bit
    flipped, moving negative values below non-negative ones,
  - floats encode their IEEE-754 bits, inverted for negative values and with
    the sign bit set otherwise,
  - strings and byte slices are used as they are.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package keymaker

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/npillmayer/patricia/bitkey"
	"golang.org/x/exp/constraints"
)

// Func projects a value of type T onto a bit-string key.
type Func[T any] func(T) bitkey.Key

// Integer creates the key for any integer type. The key is as wide as T.
func Integer[T constraints.Integer](v T) bitkey.Key {
	var zero T
	signed := ^zero < zero
	return encodeInt(uint64(v), int(unsafe.Sizeof(zero)), signed)
}

func encodeInt(u uint64, size int, signed bool) bitkey.Key {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	b := buf[8-size:]
	if signed {
		b[0] ^= 0x80
	}
	return bitkey.FromBytes(b)
}

// Int8 creates the key for an int8.
func Int8(v int8) bitkey.Key { return Integer(v) }

// Int16 creates the key for an int16.
func Int16(v int16) bitkey.Key { return Integer(v) }

// Int32 creates the key for an int32.
func Int32(v int32) bitkey.Key { return Integer(v) }

// Int64 creates the key for an int64.
func Int64(v int64) bitkey.Key { return Integer(v) }

// Int creates the key for an int.
func Int(v int) bitkey.Key { return Integer(v) }

// Uint8 creates the key for a uint8.
func Uint8(v uint8) bitkey.Key { return Integer(v) }

// Uint16 creates the key for a uint16.
func Uint16(v uint16) bitkey.Key { return Integer(v) }

// Uint32 creates the key for a uint32.
func Uint32(v uint32) bitkey.Key { return Integer(v) }

// Uint64 creates the key for a uint64.
func Uint64(v uint64) bitkey.Key { return Integer(v) }

// Uint creates the key for a uint.
func Uint(v uint) bitkey.Key { return Integer(v) }

// Float64 creates the key for a float64. -0 sorts before +0; NaNs with the
// sign bit clear sort above +Inf.
func Float64(v float64) bitkey.Key {
	return encodeFloat(math.Float64bits(v), 8)
}

// Float32 creates the key for a float32, ordered like Float64.
func Float32(v float32) bitkey.Key {
	return encodeFloat(uint64(math.Float32bits(v)), 4)
}

func encodeFloat(u uint64, size int) bitkey.Key {
	sign := uint64(1) << (size*8 - 1)
	if u&sign != 0 {
		u = ^u
	} else {
		u |= sign
	}
	return encodeInt(u, size, false)
}

// String creates the key for a string, spanning all of its bytes.
func String(s string) bitkey.Key {
	return bitkey.FromString(s)
}

// Bytes creates the key for a byte slice, spanning all of its bytes.
func Bytes(b []byte) bitkey.Key {
	return bitkey.FromBytes(b)
}
