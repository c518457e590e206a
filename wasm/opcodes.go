package wasm

// Opcode is the first byte of an instruction. Multi-byte instructions
// (the 0xFC "misc" prefix) are represented as a single Instruction whose
// Opcode is OpcodePrefixMisc and whose first Param carries the sub-opcode
// as an ImmediateU32; see the instruction table in package binary.
type Opcode = byte

const (
	OpcodeUnreachable Opcode = 0x00
	OpcodeNop         Opcode = 0x01
	OpcodeBlock       Opcode = 0x02
	OpcodeLoop        Opcode = 0x03
	OpcodeIf          Opcode = 0x04
	OpcodeElse        Opcode = 0x05
	OpcodeThrow       Opcode = 0x08
	OpcodeEnd         Opcode = 0x0B
	OpcodeReturn      Opcode = 0x0F
	OpcodeBr          Opcode = 0x0C
	OpcodeBrIf        Opcode = 0x0D
	OpcodeBrTable     Opcode = 0x0E

	OpcodeCall               Opcode = 0x10
	OpcodeCallIndirect       Opcode = 0x11
	OpcodeReturnCall         Opcode = 0x12
	OpcodeReturnCallIndirect Opcode = 0x13

	OpcodeDrop       Opcode = 0x1A
	OpcodeSelect     Opcode = 0x1B
	OpcodeSelectVec  Opcode = 0x1C
	OpcodeTryTable   Opcode = 0x1F

	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24

	OpcodeMemorySize Opcode = 0x3F
	OpcodeMemoryGrow Opcode = 0x40

	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44

	OpcodeRefNull   Opcode = 0xD0
	OpcodeRefIsNull Opcode = 0xD1
	OpcodeRefFunc   Opcode = 0xD2

	OpcodePrefixMisc Opcode = 0xFC
)

// These Low/High pairs (and ReservedNoImm) name the opcodes whose immediate
// shape is uniform across the whole range, per spec.md §4.3. The
// instruction table in package binary dispatches on them.
const (
	MemLoadStoreLow  = 0x28
	MemLoadStoreHigh = 0x3E

	NumericOpsLow  = 0x45
	NumericOpsHigh = 0xC4

	ReservedU32Low, ReservedU32High = 0x14, 0x15 // two single-U32 opcodes
	ReservedNoImm                   = 0x0A       // reserved, no immediates

	LocalGlobalLow, LocalGlobalHigh = 0x20, 0x26

	RefMiscNoImmLow, RefMiscNoImmHigh = 0xD3, 0xD4 // no immediates
	RefMiscU32Low, RefMiscU32High     = 0xD5, 0xD6 // one U32 immediate
)

// OpcodeName returns a short mnemonic for op for use in error messages and
// debugging. Memory loads/stores and numeric ops share the group names
// "memory-access" and "numeric-op"; anything else this codec does not
// name falls back to a hex literal.
func OpcodeName(op Opcode) string {
	switch op {
	case OpcodeUnreachable:
		return "unreachable"
	case OpcodeNop:
		return "nop"
	case OpcodeBlock:
		return "block"
	case OpcodeLoop:
		return "loop"
	case OpcodeIf:
		return "if"
	case OpcodeElse:
		return "else"
	case OpcodeThrow:
		return "throw"
	case OpcodeEnd:
		return "end"
	case OpcodeReturn:
		return "return"
	case OpcodeBr:
		return "br"
	case OpcodeBrIf:
		return "br_if"
	case OpcodeBrTable:
		return "br_table"
	case OpcodeCall:
		return "call"
	case OpcodeCallIndirect:
		return "call_indirect"
	case OpcodeReturnCall:
		return "return_call"
	case OpcodeReturnCallIndirect:
		return "return_call_indirect"
	case OpcodeDrop:
		return "drop"
	case OpcodeSelect:
		return "select"
	case OpcodeSelectVec:
		return "select(vec)"
	case OpcodeTryTable:
		return "try_table"
	case OpcodeLocalGet:
		return "local.get"
	case OpcodeLocalSet:
		return "local.set"
	case OpcodeLocalTee:
		return "local.tee"
	case OpcodeGlobalGet:
		return "global.get"
	case OpcodeGlobalSet:
		return "global.set"
	case OpcodeMemorySize:
		return "memory.size"
	case OpcodeMemoryGrow:
		return "memory.grow"
	case OpcodeI32Const:
		return "i32.const"
	case OpcodeI64Const:
		return "i64.const"
	case OpcodeF32Const:
		return "f32.const"
	case OpcodeF64Const:
		return "f64.const"
	case OpcodeRefNull:
		return "ref.null"
	case OpcodeRefIsNull:
		return "ref.is_null"
	case OpcodeRefFunc:
		return "ref.func"
	case OpcodePrefixMisc:
		return "misc-prefix(0xfc)"
	default:
		switch {
		case op >= MemLoadStoreLow && op <= MemLoadStoreHigh:
			return "memory-access"
		case op >= NumericOpsLow && op <= NumericOpsHigh:
			return "numeric-op"
		}
		return byteHex(op)
	}
}

func byteHex(b byte) string {
	const hexdigits = "0123456789abcdef"
	return "0x" + string([]byte{hexdigits[b>>4], hexdigits[b&0xf]})
}
