package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeImportSection(c *cursor) (*wasm.ImportSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read import count")
	}
	imports := make([]wasm.ImportDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		imp, err := decodeImportDescriptor(c)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	return &wasm.ImportSection{Imports: imports}, nil
}

func decodeImportDescriptor(c *cursor) (wasm.ImportDescriptor, error) {
	module, err := c.readName()
	if err != nil {
		return wasm.ImportDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read import module name")
	}
	name, err := c.readName()
	if err != nil {
		return wasm.ImportDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read import name")
	}
	kind, err := c.readU8()
	if err != nil {
		return wasm.ImportDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read import kind")
	}
	body, err := decodeImportBody(c, kind)
	if err != nil {
		return wasm.ImportDescriptor{}, err
	}
	return wasm.ImportDescriptor{Module: module, Name: name, Body: body}, nil
}

func decodeImportBody(c *cursor, kind byte) (wasm.ImportBody, error) {
	switch wasm.ExternKind(kind) {
	case wasm.ExternKindFunc:
		idx, err := c.readU32Leb()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read function import type index")
		}
		return wasm.FunctionImport{TypeIndex: idx}, nil
	case wasm.ExternKindTable:
		rt, err := decodeValueType(c)
		if err != nil {
			return nil, err
		}
		lim, err := decodeLimits(c)
		if err != nil {
			return nil, err
		}
		return wasm.TableImport{RefType: rt, Limits: lim}, nil
	case wasm.ExternKindMemory:
		lim, err := decodeLimits(c)
		if err != nil {
			return nil, err
		}
		return wasm.MemoryImport{Limits: lim}, nil
	case wasm.ExternKindGlobal:
		vt, err := decodeValueType(c)
		if err != nil {
			return nil, err
		}
		mut, err := c.readU8()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read global import mutable flag")
		}
		return wasm.GlobalImport{ValType: vt, Mutable: mut}, nil
	default:
		return nil, errf(wasm.ErrorKindUnknownImportKind, "unknown import kind %#x", kind)
	}
}

func encodeImportSection(e *emitter, s *wasm.ImportSection) {
	e.writeU32Leb(uint32(len(s.Imports)))
	for _, imp := range s.Imports {
		encodeImportDescriptor(e, imp)
	}
}

func sizeImportSection(s *wasm.ImportSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Imports)))
	for _, imp := range s.Imports {
		size += sizeImportDescriptor(imp)
	}
	return size
}

func encodeImportDescriptor(e *emitter, imp wasm.ImportDescriptor) {
	e.writeName(imp.Module)
	e.writeName(imp.Name)
	e.writeU8(byte(importBodyKind(imp.Body)))
	encodeImportBody(e, imp.Body)
}

func sizeImportDescriptor(imp wasm.ImportDescriptor) uint32 {
	return sizeName(imp.Module) + sizeName(imp.Name) + 1 + sizeImportBody(imp.Body)
}

func importBodyKind(body wasm.ImportBody) wasm.ExternKind {
	switch body.(type) {
	case wasm.FunctionImport:
		return wasm.ExternKindFunc
	case wasm.TableImport:
		return wasm.ExternKindTable
	case wasm.MemoryImport:
		return wasm.ExternKindMemory
	case wasm.GlobalImport:
		return wasm.ExternKindGlobal
	default:
		return 0
	}
}

func encodeImportBody(e *emitter, body wasm.ImportBody) {
	switch b := body.(type) {
	case wasm.FunctionImport:
		e.writeU32Leb(b.TypeIndex)
	case wasm.TableImport:
		encodeValueType(e, b.RefType)
		encodeLimits(e, b.Limits)
	case wasm.MemoryImport:
		encodeLimits(e, b.Limits)
	case wasm.GlobalImport:
		encodeValueType(e, b.ValType)
		e.writeU8(b.Mutable)
	}
}

func sizeImportBody(body wasm.ImportBody) uint32 {
	switch b := body.(type) {
	case wasm.FunctionImport:
		return leb128.SizeUint32(b.TypeIndex)
	case wasm.TableImport:
		return 1 + sizeLimits(b.Limits)
	case wasm.MemoryImport:
		return sizeLimits(b.Limits)
	case wasm.GlobalImport:
		return 2
	default:
		return 0
	}
}
