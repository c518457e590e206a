package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeElementSection(c *cursor) (*wasm.ElementSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read element segment count")
	}
	segs := make([]wasm.ElementSegment, 0, n)
	for i := uint32(0); i < n; i++ {
		seg, err := decodeElementSegment(c)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return &wasm.ElementSection{Segments: segs}, nil
}

// decodeElementSegment implements the eight-way flag layout of spec.md §6
// verbatim, including its swap (relative to the flags other element-
// segment encoders use elsewhere) of which flags carry a funcidx list vs.
// a const-expr list: FuncIndices for flags 0, 4, 5, 6, 7; Inits for flags
// 1, 2, 3.
func decodeElementSegment(c *cursor) (wasm.ElementSegment, error) {
	flag, err := c.readU8()
	if err != nil {
		return wasm.ElementSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read element segment flag")
	}

	seg := wasm.ElementSegment{Flag: flag}

	switch flag {
	case 0:
		seg.RefType = wasm.RefTypeFuncref
		if seg.Offset, err = decodeConstExpr(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.FuncIndices, err = decodeIndexVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 1:
		if seg.RefType, err = decodeValueType(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.Inits, err = decodeConstExprVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 2:
		if seg.TableIndex, err = c.readU32Leb(); err != nil {
			return wasm.ElementSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read element table index")
		}
		if seg.Offset, err = decodeConstExpr(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.RefType, err = decodeValueType(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.Inits, err = decodeConstExprVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 3:
		if seg.RefType, err = decodeValueType(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.Inits, err = decodeConstExprVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 4:
		seg.RefType = wasm.RefTypeFuncref
		if seg.Offset, err = decodeConstExpr(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.FuncIndices, err = decodeIndexVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 5:
		if seg.RefType, err = decodeValueType(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.FuncIndices, err = decodeIndexVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 6:
		if seg.TableIndex, err = c.readU32Leb(); err != nil {
			return wasm.ElementSegment{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read element table index")
		}
		if seg.Offset, err = decodeConstExpr(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.RefType, err = decodeValueType(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.FuncIndices, err = decodeIndexVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	case 7:
		if seg.RefType, err = decodeValueType(c); err != nil {
			return wasm.ElementSegment{}, err
		}
		if seg.FuncIndices, err = decodeIndexVec(c); err != nil {
			return wasm.ElementSegment{}, err
		}
	default:
		return wasm.ElementSegment{}, errf(wasm.ErrorKindUnknownElementFlag, "unknown element segment flag %d", flag)
	}

	return seg, nil
}

func decodeIndexVec(c *cursor) ([]wasm.Index, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read index count")
	}
	out := make([]wasm.Index, 0, n)
	for i := uint32(0); i < n; i++ {
		idx, err := c.readU32Leb()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read index %d", i)
		}
		out = append(out, idx)
	}
	return out, nil
}

func decodeConstExprVec(c *cursor) ([][]wasm.Instruction, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read const-expr count")
	}
	out := make([][]wasm.Instruction, 0, n)
	for i := uint32(0); i < n; i++ {
		expr, err := decodeConstExpr(c)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func encodeElementSection(e *emitter, s *wasm.ElementSection) {
	e.writeU32Leb(uint32(len(s.Segments)))
	for _, seg := range s.Segments {
		encodeElementSegment(e, seg)
	}
}

func sizeElementSection(s *wasm.ElementSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Segments)))
	for _, seg := range s.Segments {
		size += sizeElementSegment(seg)
	}
	return size
}

func encodeElementSegment(e *emitter, seg wasm.ElementSegment) {
	e.writeU8(seg.Flag)
	switch seg.Flag {
	case 0, 4:
		encodeConstExpr(e, seg.Offset)
		encodeIndexVec(e, seg.FuncIndices)
	case 1, 3:
		encodeValueType(e, seg.RefType)
		encodeConstExprVec(e, seg.Inits)
	case 2:
		e.writeU32Leb(seg.TableIndex)
		encodeConstExpr(e, seg.Offset)
		encodeValueType(e, seg.RefType)
		encodeConstExprVec(e, seg.Inits)
	case 5, 7:
		encodeValueType(e, seg.RefType)
		encodeIndexVec(e, seg.FuncIndices)
	case 6:
		e.writeU32Leb(seg.TableIndex)
		encodeConstExpr(e, seg.Offset)
		encodeValueType(e, seg.RefType)
		encodeIndexVec(e, seg.FuncIndices)
	}
}

func sizeElementSegment(seg wasm.ElementSegment) uint32 {
	size := uint32(1) // flag
	switch seg.Flag {
	case 0, 4:
		size += sizeConstExpr(seg.Offset) + sizeIndexVec(seg.FuncIndices)
	case 1, 3:
		size += 1 + sizeConstExprVec(seg.Inits)
	case 2:
		size += leb128.SizeUint32(seg.TableIndex) + sizeConstExpr(seg.Offset) + 1 + sizeConstExprVec(seg.Inits)
	case 5, 7:
		size += 1 + sizeIndexVec(seg.FuncIndices)
	case 6:
		size += leb128.SizeUint32(seg.TableIndex) + sizeConstExpr(seg.Offset) + 1 + sizeIndexVec(seg.FuncIndices)
	}
	return size
}

func encodeIndexVec(e *emitter, idxs []wasm.Index) {
	e.writeU32Leb(uint32(len(idxs)))
	for _, idx := range idxs {
		e.writeU32Leb(idx)
	}
}

func sizeIndexVec(idxs []wasm.Index) uint32 {
	size := leb128.SizeUint32(uint32(len(idxs)))
	for _, idx := range idxs {
		size += leb128.SizeUint32(idx)
	}
	return size
}

func encodeConstExprVec(e *emitter, exprs [][]wasm.Instruction) {
	e.writeU32Leb(uint32(len(exprs)))
	for _, expr := range exprs {
		encodeConstExpr(e, expr)
	}
}

func sizeConstExprVec(exprs [][]wasm.Instruction) uint32 {
	size := leb128.SizeUint32(uint32(len(exprs)))
	for _, expr := range exprs {
		size += sizeConstExpr(expr)
	}
	return size
}
