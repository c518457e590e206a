package wasm

// SectionID is the single byte that precedes every section's size prefix
// and identifies its shape.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#sections
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0x00
	SectionIDType      SectionID = 0x01
	SectionIDImport    SectionID = 0x02
	SectionIDFunction  SectionID = 0x03
	SectionIDTable     SectionID = 0x04
	SectionIDMemory    SectionID = 0x05
	SectionIDGlobal    SectionID = 0x06
	SectionIDExport    SectionID = 0x07
	SectionIDStart     SectionID = 0x08
	SectionIDElement   SectionID = 0x09
	SectionIDCode      SectionID = 0x0A
	SectionIDData      SectionID = 0x0B
	SectionIDDataCount SectionID = 0x0C
	SectionIDTag       SectionID = 0x0D
)

// Section is the sum type of everything that can appear in a module body.
// Decoders build one Section value per (kind, size, payload) frame on the
// wire; encoders walk Module.Sections in order and re-frame each one.
// Implementations are intentionally exhaustive structs, not interfaces
// wrapping pointers into raw bytes: a host program edits the fields
// directly (e.g. StartSection.FuncIndex) and the encoder recomputes sizes
// from the edited value, per spec.md §3 Lifecycle.
type Section interface {
	// ID returns the section's kind byte. For an UnknownSection this is
	// whatever byte was present on the wire, not one of the SectionID
	// constants above.
	ID() SectionID
}

// CustomSection carries a name and an opaque, uninterpreted payload. The
// codec never inspects Data; see spec.md §1 "does not interpret
// custom-section contents".
type CustomSection struct {
	Name string
	Data []byte
}

func (*CustomSection) ID() SectionID { return SectionIDCustom }

// TypeSection lists function, struct, and array type declarations.
type TypeSection struct {
	Types []TypeDescriptor
}

func (*TypeSection) ID() SectionID { return SectionIDType }

// ImportSection lists everything the module expects the host to supply.
type ImportSection struct {
	Imports []ImportDescriptor
}

func (*ImportSection) ID() SectionID { return SectionIDImport }

// FunctionSection assigns a type index to every locally defined function,
// in the order their bodies appear in the code section.
type FunctionSection struct {
	TypeIndices []Index
}

func (*FunctionSection) ID() SectionID { return SectionIDFunction }

// TableSection lists locally defined tables.
type TableSection struct {
	Tables []TableDescriptor
}

func (*TableSection) ID() SectionID { return SectionIDTable }

// MemorySection lists locally defined linear memories.
type MemorySection struct {
	Memories []MemoryDescriptor
}

func (*MemorySection) ID() SectionID { return SectionIDMemory }

// GlobalSection lists locally defined globals and their initializers.
type GlobalSection struct {
	Globals []GlobalDescriptor
}

func (*GlobalSection) ID() SectionID { return SectionIDGlobal }

// ExportSection lists the names the module makes available to its host.
type ExportSection struct {
	Exports []ExportDescriptor
}

func (*ExportSection) ID() SectionID { return SectionIDExport }

// StartSection names the function invoked automatically once instantiation
// completes.
type StartSection struct {
	FuncIndex Index
}

func (*StartSection) ID() SectionID { return SectionIDStart }

// ElementSection lists table initializer segments.
type ElementSection struct {
	Segments []ElementSegment
}

func (*ElementSection) ID() SectionID { return SectionIDElement }

// CodeSection lists function bodies, one per entry of FunctionSection, in
// the same order.
type CodeSection struct {
	Bodies []FunctionBody
}

func (*CodeSection) ID() SectionID { return SectionIDCode }

// DataSection lists linear memory initializer segments.
type DataSection struct {
	Segments []DataSegment
}

func (*DataSection) ID() SectionID { return SectionIDData }

// DataCountSection declares how many data segments the module has, ahead
// of the code and data sections, so a streaming decoder can validate
// memory.init / data.drop instructions without a second pass. The codec
// itself does not validate; it only preserves the count.
type DataCountSection struct {
	Count uint32
}

func (*DataCountSection) ID() SectionID { return SectionIDDataCount }

// TagSection lists exception tag declarations (exception-handling
// proposal).
type TagSection struct {
	Tags []TagDescriptor
}

func (*TagSection) ID() SectionID { return SectionIDTag }

// UnknownSection preserves a section whose kind byte this codec does not
// recognize, verbatim, so that round-tripping a module from a newer
// toolchain does not lose data.
type UnknownSection struct {
	Kind    byte
	Payload []byte
}

func (u *UnknownSection) ID() SectionID { return u.Kind }
