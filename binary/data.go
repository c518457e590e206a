package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeDataSection(c *cursor) (*wasm.DataSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read data segment count")
	}
	segs := make([]wasm.DataSegment, 0, n)
	for i := uint32(0); i < n; i++ {
		seg, err := decodeDataSegment(c)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return &wasm.DataSection{Segments: segs}, nil
}

func decodeDataSegment(c *cursor) (wasm.DataSegment, error) {
	flag, err := c.readU8()
	if err != nil {
		return wasm.DataSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read data segment flag")
	}

	seg := wasm.DataSegment{Flag: flag}
	switch flag {
	case 0:
		if seg.Offset, err = decodeConstExpr(c); err != nil {
			return wasm.DataSegment{}, err
		}
	case 1:
		// passive: no offset, no memory index
	case 2:
		if seg.MemoryIndex, err = c.readU32Leb(); err != nil {
			return wasm.DataSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read data segment memory index")
		}
		if seg.Offset, err = decodeConstExpr(c); err != nil {
			return wasm.DataSegment{}, err
		}
	default:
		return wasm.DataSegment{}, errf(wasm.ErrorKindUnknownDataFlag, "unknown data segment flag %d", flag)
	}

	n, err := c.readU32Leb()
	if err != nil {
		return wasm.DataSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read data segment length")
	}
	init, err := c.readBytes(int(n))
	if err != nil {
		return wasm.DataSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read data segment bytes")
	}
	seg.Init = init
	return seg, nil
}

func encodeDataSection(e *emitter, s *wasm.DataSection) {
	e.writeU32Leb(uint32(len(s.Segments)))
	for _, seg := range s.Segments {
		encodeDataSegment(e, seg)
	}
}

func sizeDataSection(s *wasm.DataSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Segments)))
	for _, seg := range s.Segments {
		size += sizeDataSegment(seg)
	}
	return size
}

func encodeDataSegment(e *emitter, seg wasm.DataSegment) {
	e.writeU8(seg.Flag)
	switch seg.Flag {
	case 0:
		encodeConstExpr(e, seg.Offset)
	case 2:
		e.writeU32Leb(seg.MemoryIndex)
		encodeConstExpr(e, seg.Offset)
	}
	e.writeU32Leb(uint32(len(seg.Init)))
	e.writeBytes(seg.Init)
}

func sizeDataSegment(seg wasm.DataSegment) uint32 {
	size := uint32(1)
	switch seg.Flag {
	case 0:
		size += sizeConstExpr(seg.Offset)
	case 2:
		size += leb128.SizeUint32(seg.MemoryIndex) + sizeConstExpr(seg.Offset)
	}
	size += leb128.SizeUint32(uint32(len(seg.Init))) + uint32(len(seg.Init))
	return size
}
