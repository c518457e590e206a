// Package wasm defines the structured, in-memory representation of a
// WebAssembly binary module: the section variants, their element types,
// and the instruction stream that composes globals, element/data segment
// offsets, and function bodies. It owns no decoding or encoding logic of
// its own — see package binary for the codec that builds and consumes
// these types. Holding them apart keeps the data model free to be
// constructed and mutated directly by a host program (rewrite a start
// index, patch a custom section) without going through the wire format.
package wasm

import "fmt"

// ValueType is a single-byte encoding of a numeric, vector, or reference
// type, used for function params/results, locals, globals, and struct or
// array fields.
//
// See https://webassembly.github.io/spec/core/binary/types.html#value-types
type ValueType byte

const (
	ValueTypeI32       ValueType = 0x7f
	ValueTypeI64       ValueType = 0x7e
	ValueTypeF32       ValueType = 0x7d
	ValueTypeF64       ValueType = 0x7c
	ValueTypeV128      ValueType = 0x7b
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// String renders v as its WebAssembly text-format mnemonic, falling back
// to a hex literal for anything not in the known set.
func (v ValueType) String() string {
	switch v {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	default:
		return fmt.Sprintf("%#x", byte(v))
	}
}

// RefType is the subset of ValueType usable as a table element type or an
// element-segment item type.
type RefType = ValueType

const (
	RefTypeFuncref   = ValueTypeFuncref
	RefTypeExternref = ValueTypeExternref
)

// ExternKind classifies an import or export: which index space it names.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#binary-importdesc
type ExternKind byte

const (
	ExternKindFunc ExternKind = iota
	ExternKindTable
	ExternKindMemory
	ExternKindGlobal
)

func (k ExternKind) String() string {
	switch k {
	case ExternKindFunc:
		return "func"
	case ExternKindTable:
		return "table"
	case ExternKindMemory:
		return "memory"
	case ExternKindGlobal:
		return "global"
	default:
		return fmt.Sprintf("%#x", byte(k))
	}
}

// Index is an unsigned index into a module index space (type, function,
// table, memory, global, element, data, or tag).
type Index = uint32

// Limits describes the (min, optional max) page/element count shared by
// table and memory descriptors, whether declared locally or imported.
//
// See https://webassembly.github.io/spec/core/binary/types.html#limits
type Limits struct {
	Min uint32
	Max *uint32 // nil when no maximum was present on the wire
}
