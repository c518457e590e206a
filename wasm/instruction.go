package wasm

// ImmediateKind tags which field of an Immediate is populated. Using a flat
// tagged union instead of one Go type per opcode keeps the instruction
// codec table-driven: each opcode's entry names a sequence of
// ImmediateKind values, and the decoder's loop is the same for all of
// them. See spec.md §9 "Instruction immediate heterogeneity".
type ImmediateKind byte

const (
	ImmediateU8 ImmediateKind = iota
	ImmediateU32
	ImmediateI32
	ImmediateI33 // signed, widened to int64; used only for blocktype/ref.null
	ImmediateU64
	ImmediateI64
	ImmediateF32
	ImmediateF64
)

// Immediate is one operand of an Instruction. Exactly one of the typed
// fields is meaningful, selected by Kind.
type Immediate struct {
	Kind ImmediateKind
	U8   byte
	U32  uint32
	I32  int32
	I33  int64 // widened s33, see ImmediateI33
	U64  uint64
	I64  int64
	F32  float32
	F64  float64
}

func ImmU8(v byte) Immediate       { return Immediate{Kind: ImmediateU8, U8: v} }
func ImmU32(v uint32) Immediate    { return Immediate{Kind: ImmediateU32, U32: v} }
func ImmI32(v int32) Immediate     { return Immediate{Kind: ImmediateI32, I32: v} }
func ImmI33(v int64) Immediate     { return Immediate{Kind: ImmediateI33, I33: v} }
func ImmU64(v uint64) Immediate    { return Immediate{Kind: ImmediateU64, U64: v} }
func ImmI64(v int64) Immediate     { return Immediate{Kind: ImmediateI64, I64: v} }
func ImmF32(v float32) Immediate   { return Immediate{Kind: ImmediateF32, F32: v} }
func ImmF64(v float64) Immediate   { return Immediate{Kind: ImmediateF64, F64: v} }

// Instruction is one decoded operation: an opcode byte plus its immediates
// in wire order. A 0xFC-prefixed instruction stores its sub-opcode as the
// first Param (an ImmediateU32), matching how it is framed on the wire.
type Instruction struct {
	Opcode byte
	Params []Immediate
}

// IsEnd reports whether i terminates a const-expr or function body
// instruction stream.
func (i Instruction) IsEnd() bool {
	return i.Opcode == OpcodeEnd
}

// BlockTypeEmpty is the blocktype immediate value of block/loop/if/
// try_table when the block has no params and no results ("void"). Other
// negative values name a single built-in value type; non-negative values
// index the type section. See spec.md GLOSSARY "blocktype".
const BlockTypeEmpty int64 = -64
