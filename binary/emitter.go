package binary

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/wasmpatch/wasmpatch/leb128"
)

// emitter is the write side of the cursor contract named in spec.md §6: a
// growable byte buffer with little-endian fixed-width writes and LEB128
// writes. bytes.Buffer already provides append-only growth; this adds the
// binary-format-specific helpers.
type emitter struct {
	buf bytes.Buffer
}

func newEmitter() *emitter { return &emitter{} }

func (e *emitter) bytes() []byte { return e.buf.Bytes() }

func (e *emitter) writeU8(b byte) { e.buf.WriteByte(b) }

func (e *emitter) writeBytes(b []byte) { e.buf.Write(b) }

func (e *emitter) writeU32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *emitter) writeF32LE(v float32) {
	e.writeU32LE(math.Float32bits(v))
}

func (e *emitter) writeF64LE(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	e.buf.Write(b[:])
}

func (e *emitter) writeU32Leb(v uint32)    { e.buf.Write(leb128.EncodeUint32(v)) }
func (e *emitter) writeI32Leb(v int32)     { e.buf.Write(leb128.EncodeInt32(v)) }
func (e *emitter) writeU64Leb(v uint64)    { e.buf.Write(leb128.EncodeUint64(v)) }
func (e *emitter) writeI64Leb(v int64)     { e.buf.Write(leb128.EncodeInt64(v)) }
func (e *emitter) writeI33Leb(v int64)     { e.buf.Write(leb128.EncodeInt33AsInt64(v)) }

// writeName writes a length-prefixed UTF-8 string: a U32 byte count then
// the bytes themselves. Every name, module name, and export/import name in
// the format uses this shape.
func (e *emitter) writeName(s string) {
	e.writeU32Leb(uint32(len(s)))
	e.buf.WriteString(s)
}

func sizeName(s string) uint32 {
	return leb128.SizeUint32(uint32(len(s))) + uint32(len(s))
}
