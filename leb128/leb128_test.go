package leb128

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUint32(t *testing.T) {
	for _, c := range []struct {
		input    uint32
		expected []byte
	}{
		{input: 0, expected: []byte{0x00}},
		{input: 127, expected: []byte{0x7f}},
		{input: 128, expected: []byte{0x80, 0x01}},
		{input: 16384, expected: []byte{0x80, 0x80, 0x01}},
		{input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{input: math.MaxUint32, expected: []byte{0xff, 0xff, 0xff, 0xff, 0xf}},
	} {
		actual := EncodeUint32(c.input)
		require.Equal(t, c.expected, actual)
		require.Equal(t, uint32(len(c.expected)), SizeUint32(c.input))
	}
}

func TestEncodeInt32(t *testing.T) {
	for _, c := range []struct {
		input    int32
		expected []byte
	}{
		{input: 0, expected: []byte{0x00}},
		{input: 63, expected: []byte{0x3f}},
		{input: 64, expected: []byte{0xc0, 0x00}},
		{input: -1, expected: []byte{0x7f}},
		{input: -128, expected: []byte{0x80, 0x7f}},
	} {
		actual := EncodeInt32(c.input)
		require.Equal(t, c.expected, actual)
		require.Equal(t, uint32(len(c.expected)), SizeInt32(c.input))
	}
}

func TestDecodeUint32(t *testing.T) {
	for _, c := range []struct {
		name   string
		bytes  []byte
		exp    uint32
		expErr bool
	}{
		{name: "zero", bytes: []byte{0x00}, exp: 0},
		{name: "minimal one byte", bytes: []byte{0x04}, exp: 4},
		{name: "two byte", bytes: []byte{0x80, 0x7f}, exp: 16256},
		{name: "three byte", bytes: []byte{0xe5, 0x8e, 0x26}, exp: 624485},
		{name: "max uint32", bytes: []byte{0xff, 0xff, 0xff, 0xff, 0xf}, exp: math.MaxUint32},
		{name: "non-minimal zero still decodes", bytes: []byte{0x80, 0x00}, exp: 0},
		{name: "non-minimal within 70-bit guard", bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, exp: 0},
		{name: "magnitude exceeds uint32", bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x10}, expErr: true},
		{name: "truncated", bytes: []byte{0x80}, expErr: true},
	} {
		t.Run(c.name, func(t *testing.T) {
			actual, num, err := DecodeUint32(bytes.NewReader(c.bytes))
			if c.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.exp, actual)
			assert.Equal(t, uint64(len(c.bytes)), num)
		})
	}
}

func TestDecodeUint32_overlongGuard(t *testing.T) {
	// 11 continuation bytes push the shift past the 70-bit cutoff before
	// a terminating byte is seen: this must fail regardless of value.
	in := bytes.Repeat([]byte{0x80}, 11)
	in = append(in, 0x00)
	_, _, err := DecodeUint32(bytes.NewReader(in))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeUint64(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   uint64
	}{
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0x80, 0x7f}, exp: 16256},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, exp: math.MaxUint64},
	} {
		actual, num, err := DecodeUint64(bytes.NewReader(c.bytes))
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestDecodeInt32(t *testing.T) {
	for i, c := range []struct {
		bytes  []byte
		exp    int32
		expErr bool
	}{
		{bytes: []byte{0x13}, exp: 19},
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0xff, 0x00}, exp: 127},
		{bytes: []byte{0x81, 0x01}, exp: 129},
		{bytes: []byte{0x81, 0x7f}, exp: -127},
		{bytes: []byte{0xff, 0x7e}, exp: -129},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x08}, expErr: true}, // exceeds int32 positive range
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x77}, expErr: true}, // exceeds int32 negative range
	} {
		actual, num, err := DecodeInt32(bytes.NewReader(c.bytes))
		if c.expErr {
			assert.Error(t, err, i)
			continue
		}
		assert.NoError(t, err, i)
		assert.Equal(t, c.exp, actual, i)
		assert.Equal(t, uint64(len(c.bytes)), num, i)
	}
}

func TestDecodeInt64(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int64
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f},
			exp: math.MinInt64},
	} {
		actual, num, err := DecodeInt64(bytes.NewReader(c.bytes))
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestDecodeInt33AsInt64(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int64
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x40}, exp: -64},
		{bytes: []byte{0x7f}, exp: -1},
		// The bytes 0x70 (funcref blocktype, -16) and 0x6F (externref
		// blocktype, -17) are the real-world use of this range: single-byte
		// negative encodings.
		{bytes: []byte{0x70}, exp: -16},
		{bytes: []byte{0xff, 0x00}, exp: 127},
		{bytes: []byte{0x81, 0x01}, exp: 129},
	} {
		actual, num, err := DecodeInt33AsInt64(bytes.NewReader(c.bytes))
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

// Round trip across the boundary values named in spec.md §8's LEB128
// properties, plus min/max for each width.
func TestRoundTrip(t *testing.T) {
	u32s := []uint32{0, 1, 127, 128, 16384, math.MaxUint32}
	for _, v := range u32s {
		enc := EncodeUint32(v)
		require.Equal(t, uint32(len(enc)), SizeUint32(v))
		dec, n, err := DecodeUint32(bytes.NewReader(enc))
		require.NoError(t, err)
		require.Equal(t, v, dec)
		require.Equal(t, uint64(len(enc)), n)
	}

	i32s := []int32{0, 1, -1, math.MinInt32, math.MaxInt32, 63, -128}
	for _, v := range i32s {
		enc := EncodeInt32(v)
		require.Equal(t, uint32(len(enc)), SizeInt32(v))
		dec, n, err := DecodeInt32(bytes.NewReader(enc))
		require.NoError(t, err)
		require.Equal(t, v, dec)
		require.Equal(t, uint64(len(enc)), n)
	}

	u64s := []uint64{0, 1, math.MaxUint64}
	for _, v := range u64s {
		enc := EncodeUint64(v)
		require.Equal(t, uint32(len(enc)), SizeUint64(v))
		dec, n, err := DecodeUint64(bytes.NewReader(enc))
		require.NoError(t, err)
		require.Equal(t, v, dec)
		require.Equal(t, uint64(len(enc)), n)
	}

	i64s := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}
	for _, v := range i64s {
		enc := EncodeInt64(v)
		require.Equal(t, uint32(len(enc)), SizeInt64(v))
		dec, n, err := DecodeInt64(bytes.NewReader(enc))
		require.NoError(t, err)
		require.Equal(t, v, dec)
		require.Equal(t, uint64(len(enc)), n)
	}

	i33s := []int64{0, 1, -1, -(1 << 32), (1 << 32) - 1}
	for _, v := range i33s {
		enc := EncodeInt33AsInt64(v)
		require.Equal(t, uint32(len(enc)), SizeInt33AsInt64(v))
		dec, n, err := DecodeInt33AsInt64(bytes.NewReader(enc))
		require.NoError(t, err)
		require.Equal(t, v, dec)
		require.Equal(t, uint64(len(enc)), n)
	}
}
