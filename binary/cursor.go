package binary

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

// cursor is the buffered, position-tracking byte reader spec.md §6 names
// as an external collaborator ("the raw byte cursor... is assumed to
// exist"). Since the pack carries no standalone cursor library for this
// exact shape, this wraps the standard library's bytes.Reader — precisely
// what the teacher's own leb128 codec decodes from (see
// leb128.DecodeUint32(io.Reader)) — rather than hand-rolling a byte-slice
// index by hand.
type cursor struct {
	r   *bytes.Reader
	buf []byte
}

func newCursor(b []byte) *cursor {
	return &cursor{r: bytes.NewReader(b), buf: b}
}

func (c *cursor) remaining() int {
	pos, _ := c.r.Seek(0, io.SeekCurrent)
	return len(c.buf) - int(pos)
}

func (c *cursor) readU8() (byte, error) {
	b, err := c.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, io.ErrUnexpectedEOF, "read %d bytes", n)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(c.r, out); err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read %d bytes", n)
	}
	return out, nil
}

func (c *cursor) readU32LE() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readF32LE() (float32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (c *cursor) readF64LE() (float64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// readU32Leb, readI32Leb, readU64Leb, and readI64Leb delegate to the
// leb128 package, which reads from any io.Reader; the cursor's remaining
// bound is enforced separately since LEB128 decode reads byte-by-byte.
func (c *cursor) readU32Leb() (uint32, error) {
	v, n, err := leb128.DecodeUint32(c.r)
	return v, c.afterLeb(n, err)
}

func (c *cursor) readI32Leb() (int32, error) {
	v, n, err := leb128.DecodeInt32(c.r)
	return v, c.afterLeb(n, err)
}

func (c *cursor) readU64Leb() (uint64, error) {
	v, n, err := leb128.DecodeUint64(c.r)
	return v, c.afterLeb(n, err)
}

func (c *cursor) readI64Leb() (int64, error) {
	v, n, err := leb128.DecodeInt64(c.r)
	return v, c.afterLeb(n, err)
}

func (c *cursor) readI33Leb() (int64, error) {
	v, n, err := leb128.DecodeInt33AsInt64(c.r)
	return v, c.afterLeb(n, err)
}

// readName reads a length-prefixed UTF-8 string: a U32 byte count then
// that many bytes, interpreted without further validation.
func (c *cursor) readName() (string, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return "", err
	}
	b, err := c.readBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// afterLeb classifies an error from the leb128 package as either a
// bounded-overflow failure or a plain short read, per spec.md §7.
func (c *cursor) afterLeb(_ uint64, err error) error {
	if err == nil {
		return nil
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return wrapf(lebErrorKind(err), err, "read LEB128 integer")
}
