package wasm

// TableDescriptor is one entry of the table section: the element type
// tables hold and their size limits.
type TableDescriptor struct {
	RefType RefType
	Limits  Limits
}

// MemoryDescriptor is one entry of the memory section: its size limits, in
// 64KiB pages.
type MemoryDescriptor struct {
	Limits Limits
}

// GlobalDescriptor is one entry of the global section: its value type,
// mutability, and initializer expression. Init always ends with (and
// includes) an OpcodeEnd instruction.
//
// Mutable is a raw byte, not a bool: spec.md §3 types it as mutable: u8,
// so a shape-valid byte other than 0/1 round-trips unchanged instead of
// collapsing to 0x01.
type GlobalDescriptor struct {
	ValType ValueType
	Mutable byte
	Init    []Instruction
}

// ExportDescriptor is one entry of the export section: the name other
// modules import by, which index space it names, and the index within
// that space.
type ExportDescriptor struct {
	Name  string
	Kind  ExternKind
	Index Index
}

// ElementSegment is one entry of the element section. Flag selects which
// of the fields below are meaningful, per the eight-way layout in
// spec.md §6:
//
//   - TableIndex is meaningful only for Flag 2 and 6 (explicit table);
//     other active flags (0, 4) target table 0 implicitly.
//   - Offset (a const-expr) is present for the active flags: 0, 2, 4, 6.
//   - RefType is present on the wire for every flag except 0 and 4, which
//     imply Funcref.
//   - Exactly one of FuncIndices or Inits is populated, per Flag:
//     FuncIndices for 0, 4, 5, 6, 7; Inits (each itself a const-expr) for
//     1, 2, 3.
type ElementSegment struct {
	Flag        byte
	TableIndex  Index
	Offset      []Instruction
	RefType     RefType
	FuncIndices []Index
	Inits       [][]Instruction
}

// DataSegment is one entry of the data section. Flag 0 is active against
// memory 0 (Offset set, MemoryIndex unused); Flag 1 is passive (neither
// Offset nor MemoryIndex set); Flag 2 is active against an explicit
// memory (both set).
type DataSegment struct {
	Flag        byte
	MemoryIndex Index
	Offset      []Instruction
	Init        []byte
}

// Local declares a run of consecutive function-body locals sharing one
// value type, as they are grouped on the wire.
type Local struct {
	Count   uint32
	ValType ValueType
}

// FunctionBody is one entry of the code section: the function's locals,
// grouped in runs, followed by its instruction stream. Instructions
// occupy exactly the remainder of the body's size-prefixed frame; the
// terminating OpcodeEnd is the last element of Instructions, not implicit.
type FunctionBody struct {
	Locals       []Local
	Instructions []Instruction
}
