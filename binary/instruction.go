package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

// fixedImmediates returns the ordered immediate shape for every opcode
// whose immediates do not depend on a value read earlier in the same
// instruction. br_table, select-typed, try_table, and the 0xFC-prefixed
// instructions have variable shape and are handled separately in
// decodeInstruction; encodeInstruction and sizeInstruction treat every
// opcode alike by replaying Params. This table is the
// "static table" spec.md §4.3 recommends over branching code for the bulk
// of the opcode space.
func fixedImmediates(op byte) (shape []wasm.ImmediateKind, known bool) {
	u32 := wasm.ImmediateU32
	switch {
	case op == wasm.OpcodeUnreachable, op == wasm.OpcodeNop:
		return nil, true
	case op == wasm.OpcodeBlock, op == wasm.OpcodeLoop, op == wasm.OpcodeIf:
		return []wasm.ImmediateKind{wasm.ImmediateI33}, true
	case op == wasm.OpcodeElse:
		return nil, true
	case op == wasm.OpcodeThrow:
		return []wasm.ImmediateKind{u32}, true
	case op == wasm.ReservedNoImm:
		return nil, true // reserved, no immediates
	case op == wasm.OpcodeEnd, op == wasm.OpcodeReturn:
		return nil, true
	case op == wasm.OpcodeBr, op == wasm.OpcodeBrIf:
		return []wasm.ImmediateKind{u32}, true
	case op == wasm.OpcodeCall, op == wasm.OpcodeReturnCall:
		return []wasm.ImmediateKind{u32}, true
	case op == wasm.OpcodeCallIndirect, op == wasm.OpcodeReturnCallIndirect:
		return []wasm.ImmediateKind{u32, u32}, true
	case op == wasm.ReservedU32Low, op == wasm.ReservedU32High:
		return []wasm.ImmediateKind{u32}, true
	case op == wasm.OpcodeDrop, op == wasm.OpcodeSelect:
		return nil, true
	case op >= wasm.LocalGlobalLow && op <= wasm.LocalGlobalHigh:
		return []wasm.ImmediateKind{u32}, true // local/global get/set/tee, table.get/table.set
	case op >= wasm.MemLoadStoreLow && op <= wasm.MemLoadStoreHigh:
		return []wasm.ImmediateKind{u32, u32}, true // align, offset
	case op == wasm.OpcodeMemorySize, op == wasm.OpcodeMemoryGrow:
		return []wasm.ImmediateKind{u32}, true
	case op == wasm.OpcodeI32Const:
		return []wasm.ImmediateKind{wasm.ImmediateI32}, true
	case op == wasm.OpcodeI64Const:
		return []wasm.ImmediateKind{wasm.ImmediateI64}, true
	case op == wasm.OpcodeF32Const:
		return []wasm.ImmediateKind{wasm.ImmediateF32}, true
	case op == wasm.OpcodeF64Const:
		return []wasm.ImmediateKind{wasm.ImmediateF64}, true
	case op >= wasm.NumericOpsLow && op <= wasm.NumericOpsHigh:
		return nil, true // numeric ops and sign-extension ops
	case op == wasm.OpcodeRefNull:
		return []wasm.ImmediateKind{wasm.ImmediateI33}, true
	case op == wasm.OpcodeRefIsNull:
		return nil, true
	case op == wasm.OpcodeRefFunc:
		return []wasm.ImmediateKind{u32}, true
	case op == wasm.RefMiscNoImmLow, op == wasm.RefMiscNoImmHigh:
		return nil, true
	case op == wasm.RefMiscU32Low, op == wasm.RefMiscU32High:
		return []wasm.ImmediateKind{u32}, true
	default:
		return nil, false
	}
}

// miscImmediates is the 0xFC-prefix sub-opcode immediate table from
// spec.md §4.3.
func miscImmediates(sub uint32) (shape []wasm.ImmediateKind, known bool) {
	u32 := wasm.ImmediateU32
	switch {
	case sub <= 0x07:
		return nil, true
	case sub == 0x08:
		return []wasm.ImmediateKind{u32, u32}, true
	case sub == 0x09:
		return []wasm.ImmediateKind{u32}, true
	case sub == 0x0A:
		return []wasm.ImmediateKind{u32, u32}, true
	case sub == 0x0B:
		return []wasm.ImmediateKind{u32}, true
	case sub == 0x0C:
		return []wasm.ImmediateKind{u32, u32}, true
	case sub == 0x0D:
		return []wasm.ImmediateKind{u32}, true
	case sub == 0x0E:
		return []wasm.ImmediateKind{u32, u32}, true
	case sub == 0x0F:
		return []wasm.ImmediateKind{u32}, true
	case sub == 0x10:
		return []wasm.ImmediateKind{u32}, true
	case sub == 0x11:
		return []wasm.ImmediateKind{u32}, true
	default:
		return nil, false
	}
}

func decodeImmediate(c *cursor, kind wasm.ImmediateKind) (wasm.Immediate, error) {
	switch kind {
	case wasm.ImmediateU8:
		v, err := c.readU8()
		return wasm.ImmU8(v), err
	case wasm.ImmediateU32:
		v, err := c.readU32Leb()
		return wasm.ImmU32(v), err
	case wasm.ImmediateI32:
		v, err := c.readI32Leb()
		return wasm.ImmI32(v), err
	case wasm.ImmediateI33:
		v, err := c.readI33Leb()
		return wasm.ImmI33(v), err
	case wasm.ImmediateU64:
		v, err := c.readU64Leb()
		return wasm.ImmU64(v), err
	case wasm.ImmediateI64:
		v, err := c.readI64Leb()
		return wasm.ImmI64(v), err
	case wasm.ImmediateF32:
		v, err := c.readF32LE()
		return wasm.ImmF32(v), err
	case wasm.ImmediateF64:
		v, err := c.readF64LE()
		return wasm.ImmF64(v), err
	default:
		return wasm.Immediate{}, errf(wasm.ErrorKindUnknownOpcode, "unknown immediate kind %d", kind)
	}
}

func encodeImmediate(e *emitter, imm wasm.Immediate) {
	switch imm.Kind {
	case wasm.ImmediateU8:
		e.writeU8(imm.U8)
	case wasm.ImmediateU32:
		e.writeU32Leb(imm.U32)
	case wasm.ImmediateI32:
		e.writeI32Leb(imm.I32)
	case wasm.ImmediateI33:
		e.writeI33Leb(imm.I33)
	case wasm.ImmediateU64:
		e.writeU64Leb(imm.U64)
	case wasm.ImmediateI64:
		e.writeI64Leb(imm.I64)
	case wasm.ImmediateF32:
		e.writeF32LE(imm.F32)
	case wasm.ImmediateF64:
		e.writeF64LE(imm.F64)
	}
}

func sizeImmediate(imm wasm.Immediate) uint32 {
	switch imm.Kind {
	case wasm.ImmediateU8:
		return 1
	case wasm.ImmediateU32:
		return leb128.SizeUint32(imm.U32)
	case wasm.ImmediateI32:
		return leb128.SizeInt32(imm.I32)
	case wasm.ImmediateI33:
		return leb128.SizeInt33AsInt64(imm.I33)
	case wasm.ImmediateU64:
		return leb128.SizeUint64(imm.U64)
	case wasm.ImmediateI64:
		return leb128.SizeInt64(imm.I64)
	case wasm.ImmediateF32:
		return 4
	case wasm.ImmediateF64:
		return 8
	default:
		return 0
	}
}

// decodeInstruction reads one opcode byte and its immediates.
func decodeInstruction(c *cursor) (wasm.Instruction, error) {
	op, err := c.readU8()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read opcode")
	}

	if shape, ok := fixedImmediates(op); ok {
		params, err := decodeImmediates(c, shape)
		return wasm.Instruction{Opcode: op, Params: params}, err
	}

	switch op {
	case wasm.OpcodeBrTable:
		return decodeBrTable(c)
	case wasm.OpcodeSelectVec:
		return decodeSelectVec(c)
	case wasm.OpcodeTryTable:
		return decodeTryTable(c)
	case wasm.OpcodePrefixMisc:
		return decodeMisc(c)
	default:
		return wasm.Instruction{}, errf(wasm.ErrorKindUnknownOpcode, "unknown opcode %#x", op)
	}
}

func decodeImmediates(c *cursor, shape []wasm.ImmediateKind) ([]wasm.Immediate, error) {
	if len(shape) == 0 {
		return nil, nil
	}
	params := make([]wasm.Immediate, 0, len(shape))
	for _, k := range shape {
		imm, err := decodeImmediate(c, k)
		if err != nil {
			return nil, err
		}
		params = append(params, imm)
	}
	return params, nil
}

func decodeBrTable(c *cursor) (wasm.Instruction, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read br_table label count")
	}
	params := make([]wasm.Immediate, 0, n+2)
	params = append(params, wasm.ImmU32(n))
	for i := uint32(0); i < n; i++ {
		label, err := c.readU32Leb()
		if err != nil {
			return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read br_table label %d", i)
		}
		params = append(params, wasm.ImmU32(label))
	}
	fallback, err := c.readU32Leb()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read br_table fallback label")
	}
	params = append(params, wasm.ImmU32(fallback))
	return wasm.Instruction{Opcode: wasm.OpcodeBrTable, Params: params}, nil
}

func decodeSelectVec(c *cursor) (wasm.Instruction, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read select type count")
	}
	params := make([]wasm.Immediate, 0, n+1)
	params = append(params, wasm.ImmU32(n))
	for i := uint32(0); i < n; i++ {
		vt, err := c.readU32Leb()
		if err != nil {
			return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read select value type %d", i)
		}
		params = append(params, wasm.ImmU32(vt))
	}
	return wasm.Instruction{Opcode: wasm.OpcodeSelectVec, Params: params}, nil
}

func decodeTryTable(c *cursor) (wasm.Instruction, error) {
	blockType, err := c.readI33Leb()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read try_table blocktype")
	}
	n, err := c.readU32Leb()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read try_table catch count")
	}
	params := make([]wasm.Immediate, 0, n*3+2)
	params = append(params, wasm.ImmI33(blockType), wasm.ImmU32(n))
	for i := uint32(0); i < n; i++ {
		kind, err := c.readU8()
		if err != nil {
			return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read try_table catch %d kind", i)
		}
		params = append(params, wasm.ImmU8(kind))
		if kind < 2 {
			tagIdx, err := c.readU32Leb()
			if err != nil {
				return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read try_table catch %d tag index", i)
			}
			params = append(params, wasm.ImmU32(tagIdx))
		}
		label, err := c.readU32Leb()
		if err != nil {
			return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read try_table catch %d label index", i)
		}
		params = append(params, wasm.ImmU32(label))
	}
	return wasm.Instruction{Opcode: wasm.OpcodeTryTable, Params: params}, nil
}

func decodeMisc(c *cursor) (wasm.Instruction, error) {
	sub, err := c.readU32Leb()
	if err != nil {
		return wasm.Instruction{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read misc sub-opcode")
	}
	shape, ok := miscImmediates(sub)
	if !ok {
		return wasm.Instruction{}, errf(wasm.ErrorKindUnknownOpcode, "unknown misc sub-opcode %#x", sub)
	}
	rest, err := decodeImmediates(c, shape)
	if err != nil {
		return wasm.Instruction{}, err
	}
	params := make([]wasm.Immediate, 0, len(rest)+1)
	params = append(params, wasm.ImmU32(sub))
	params = append(params, rest...)
	return wasm.Instruction{Opcode: wasm.OpcodePrefixMisc, Params: params}, nil
}

// encodeInstruction writes op's byte and then each immediate in order. The
// shape was already fixed at decode time (or by whatever constructed the
// Instruction by hand), so encoding never re-derives it: it just replays
// Params.
func encodeInstruction(e *emitter, ins wasm.Instruction) {
	e.writeU8(ins.Opcode)
	for _, p := range ins.Params {
		encodeImmediate(e, p)
	}
}

func sizeInstruction(ins wasm.Instruction) uint32 {
	size := uint32(1)
	for _, p := range ins.Params {
		size += sizeImmediate(p)
	}
	return size
}

// decodeConstExpr reads instructions until (and including) an OpcodeEnd,
// as used by global initializers and element/data segment offsets.
func decodeConstExpr(c *cursor) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	for {
		ins, err := decodeInstruction(c)
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
		if ins.IsEnd() {
			return out, nil
		}
	}
}

func encodeConstExpr(e *emitter, ins []wasm.Instruction) {
	for _, i := range ins {
		encodeInstruction(e, i)
	}
}

func sizeConstExpr(ins []wasm.Instruction) uint32 {
	var size uint32
	for _, i := range ins {
		size += sizeInstruction(i)
	}
	return size
}

// decodeInstructions reads instructions until the cursor's remaining bytes
// are exhausted, as used by a function body's instruction stream, which
// occupies exactly the rest of its size-prefixed frame.
func decodeInstructions(c *cursor) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	for c.remaining() > 0 {
		ins, err := decodeInstruction(c)
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, nil
}
