package wasm

// Type-body kind bytes. FuncType's 0x60 doubles as the TypeDescriptor
// prefix when there is no recursion-group wrapper; StructType and
// ArrayType only ever appear as a kind byte following a GC prefix or a
// bare (non-0x60) TypeDescriptor prefix. See spec.md §3 TypeDescriptor.
const (
	TypeKindFunc   byte = 0x60
	TypeKindStruct byte = 0x5E
	TypeKindArray  byte = 0x5F
)

// Recursion-group prefixes introduced by the GC proposal. A TypeDescriptor
// whose Prefix is one of these carries a count-prefixed list of SubTypes
// before its kind byte and Body.
const (
	TypePrefixRec byte = 0x4E
	TypePrefixSub byte = 0x4D
)

// TypeBody is the sum type of a TypeDescriptor's payload: FuncType,
// StructType, or ArrayType.
type TypeBody interface {
	typeKind() byte
}

// FuncType is a function signature: ordered parameter and result value
// types. The empty FuncType{} (no params, no results) is common and
// round-trips as two zero-length vectors.
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

func (FuncType) typeKind() byte { return TypeKindFunc }

// StructField is one field of a StructType: its value type and whether it
// is mutable.
type StructField struct {
	ValType ValueType
	Mutable bool
}

// StructType is a GC proposal struct type: an ordered list of fields.
type StructType struct {
	Fields []StructField
}

func (StructType) typeKind() byte { return TypeKindStruct }

// ArrayType is a GC proposal array type: a single element type and its
// mutability.
type ArrayType struct {
	ValType ValueType
	Mutable bool
}

func (ArrayType) typeKind() byte { return TypeKindArray }

// TypeDescriptor is one entry of the type section. Prefix selects the
// shape: 0x60 is a bare FuncType with no SubTypes and no separate kind
// byte; 0x4E/0x4D (GC recursion groups) carry a vector of SubTypes before
// the kind byte and Body; any other Prefix byte still reads a kind byte
// and Body with no SubTypes, preserving the source's permissive behavior
// even though no known producer emits such a prefix (see spec.md §9,
// Open Question 1 — implementers should preserve this).
type TypeDescriptor struct {
	Prefix   byte
	SubTypes []uint32
	Body     TypeBody
}

// TagDescriptor declares one entry of the tag section (exception-handling
// proposal): the tag's attribute byte (always 0 for "exception" in the
// current proposal, but preserved verbatim) and the function type it uses
// to describe its payload.
type TagDescriptor struct {
	Attribute byte
	TypeIndex Index
}
