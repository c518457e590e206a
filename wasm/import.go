package wasm

// ImportBody is the sum type of an ImportDescriptor's payload, one variant
// per ExternKind.
type ImportBody interface {
	importKind() ExternKind
}

// FunctionImport imports a function, typed by an index into the type
// section.
type FunctionImport struct {
	TypeIndex Index
}

func (FunctionImport) importKind() ExternKind { return ExternKindFunc }

// TableImport imports a table.
type TableImport struct {
	RefType RefType
	Limits  Limits
}

func (TableImport) importKind() ExternKind { return ExternKindTable }

// MemoryImport imports a linear memory.
type MemoryImport struct {
	Limits Limits
}

func (MemoryImport) importKind() ExternKind { return ExternKindMemory }

// GlobalImport imports a mutable or immutable global. Mutable is a raw
// byte (spec.md §3: mutable: u8), not a bool; see GlobalDescriptor.
type GlobalImport struct {
	ValType ValueType
	Mutable byte
}

func (GlobalImport) importKind() ExternKind { return ExternKindGlobal }

// ImportDescriptor is one entry of the import section: the two-level name
// (module, name) under which the host must supply the value, and what
// kind of value is expected.
type ImportDescriptor struct {
	Module string
	Name   string
	Body   ImportBody
}
