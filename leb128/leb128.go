// Package leb128 encodes and decodes the LEB128 variable-length integer
// encoding used throughout the WebAssembly binary format: type and index
// counts, indices, the size prefix of every section and function body, and
// the immediates of const/branch/memory instructions.
//
// See https://webassembly.github.io/spec/core/binary/values.html#integers
package leb128

import (
	"errors"
	"fmt"
	"io"
)

// maxShift bounds the number of continuation bytes a decoder will read
// before giving up. 70 bits (10 bytes of 7 value-bits each) admits
// non-minimal encodings without admitting unbounded ones.
const maxShift = 70

// ErrOverflow is returned when a LEB128 byte stream never terminates
// within maxShift bits, or its decoded magnitude exceeds the target
// integer width.
var ErrOverflow = errors.New("leb128: overflow")

// EncodeUint32 returns the unsigned LEB128 encoding of v.
func EncodeUint32(v uint32) []byte {
	return appendUint64(nil, uint64(v))
}

// EncodeUint64 returns the unsigned LEB128 encoding of v.
func EncodeUint64(v uint64) []byte {
	return appendUint64(nil, v)
}

// EncodeInt32 returns the signed LEB128 encoding of v.
func EncodeInt32(v int32) []byte {
	return appendInt64(nil, int64(v))
}

// EncodeInt64 returns the signed LEB128 encoding of v.
func EncodeInt64(v int64) []byte {
	return appendInt64(nil, v)
}

// EncodeInt33AsInt64 returns the signed LEB128 encoding of v, which must fit
// in the 33-bit signed range used by block types and other s33 immediates.
// The value is carried in an int64 because Go has no 33-bit integer type.
func EncodeInt33AsInt64(v int64) []byte {
	return appendInt64(nil, v)
}

// SizeUint32 is the number of bytes EncodeUint32(v) would produce.
func SizeUint32(v uint32) uint32 {
	return sizeUint64(uint64(v))
}

// SizeUint64 is the number of bytes EncodeUint64(v) would produce.
func SizeUint64(v uint64) uint32 {
	return sizeUint64(v)
}

// SizeInt32 is the number of bytes EncodeInt32(v) would produce.
func SizeInt32(v int32) uint32 {
	return sizeInt64(int64(v))
}

// SizeInt64 is the number of bytes EncodeInt64(v) would produce.
func SizeInt64(v int64) uint32 {
	return sizeInt64(v)
}

// SizeInt33AsInt64 is the number of bytes EncodeInt33AsInt64(v) would produce.
func SizeInt33AsInt64(v int64) uint32 {
	return sizeInt64(v)
}

func appendUint64(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			dst = append(dst, b|0x80)
			continue
		}
		return append(dst, b)
	}
}

func sizeUint64(v uint64) uint32 {
	n := uint32(1)
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

func appendInt64(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		// v is now either all sign bits matching b's sign bit (done) or not.
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

func sizeInt64(v int64) uint32 {
	n := uint32(1)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			return n
		}
		n++
	}
}

// decodeUnsigned reads an unsigned LEB128 value of at most bitWidth bits,
// returning the value, the number of bytes consumed, and an error.
func decodeUnsigned(r io.Reader, bitWidth uint) (uint64, uint64, error) {
	var result uint64
	var shift uint
	var n uint64
	buf := [1]byte{}
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, n, err
		}
		n++
		b := buf[0]
		if shift >= maxShift {
			return 0, n, fmt.Errorf("%w: too many continuation bytes", ErrOverflow)
		}
		result |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if bitWidth < 64 && result>>bitWidth != 0 {
				return 0, n, fmt.Errorf("%w: decoded value exceeds %d bits", ErrOverflow, bitWidth)
			}
			return result, n, nil
		}
	}
}

// DecodeUint32 reads an unsigned LEB128-encoded uint32, returning the
// decoded value, the number of bytes read, and an error.
func DecodeUint32(r io.Reader) (uint32, uint64, error) {
	v, n, err := decodeUnsigned(r, 32)
	if err != nil {
		return 0, n, err
	}
	return uint32(v), n, nil
}

// DecodeUint64 reads an unsigned LEB128-encoded uint64, returning the
// decoded value, the number of bytes read, and an error.
func DecodeUint64(r io.Reader) (uint64, uint64, error) {
	return decodeUnsigned(r, 64)
}

// decodeSigned reads a signed LEB128 value, sign-extending from the final
// byte's bit 6, and fails if the result does not fit in bitWidth bits.
func decodeSigned(r io.Reader, bitWidth uint) (int64, uint64, error) {
	var result int64
	var shift uint
	var n uint64
	buf := [1]byte{}
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, n, err
		}
		n++
		b := buf[0]
		if shift >= maxShift {
			return 0, n, fmt.Errorf("%w: too many continuation bytes", ErrOverflow)
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			if bitWidth < 64 {
				// Verify the value is representable by sign-extending from
				// bitWidth and comparing, rather than masking, so both the
				// positive and negative boundaries are checked uniformly.
				hi := result >> (bitWidth - 1)
				if hi != 0 && hi != -1 {
					return 0, n, fmt.Errorf("%w: decoded value exceeds %d-bit signed range", ErrOverflow, bitWidth)
				}
			}
			return result, n, nil
		}
	}
}

// DecodeInt32 reads a signed LEB128-encoded int32, returning the decoded
// value, the number of bytes read, and an error.
func DecodeInt32(r io.Reader) (int32, uint64, error) {
	v, n, err := decodeSigned(r, 32)
	if err != nil {
		return 0, n, err
	}
	return int32(v), n, nil
}

// DecodeInt64 reads a signed LEB128-encoded int64, returning the decoded
// value, the number of bytes read, and an error.
func DecodeInt64(r io.Reader) (int64, uint64, error) {
	return decodeSigned(r, 64)
}

// DecodeInt33AsInt64 reads a signed LEB128 value in the 33-bit signed range
// used by block types (negative values name a built-in value type or void;
// non-negative values index the type section). The result is widened into
// an int64 since Go has no 33-bit integer type.
func DecodeInt33AsInt64(r io.Reader) (int64, uint64, error) {
	return decodeSigned(r, 33)
}
