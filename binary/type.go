package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeTypeSection(c *cursor) (*wasm.TypeSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read type count")
	}
	types := make([]wasm.TypeDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		td, err := decodeTypeDescriptor(c)
		if err != nil {
			return nil, err
		}
		types = append(types, td)
	}
	return &wasm.TypeSection{Types: types}, nil
}

// decodeTypeDescriptor follows spec.md §3's three-way prefix split: a bare
// 0x60 FuncType with no subtypes and no separate kind byte; a 0x4E/0x4D
// recursion-group prefix carrying a vector of subtype indices ahead of the
// kind byte; or any other prefix byte, which still reads a kind byte and
// body with no subtypes (preserved verbatim per Open Question 1, even
// though no known producer emits it).
func decodeTypeDescriptor(c *cursor) (wasm.TypeDescriptor, error) {
	prefix, err := c.readU8()
	if err != nil {
		return wasm.TypeDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read type prefix")
	}

	if prefix == wasm.TypeKindFunc {
		body, err := decodeFuncType(c)
		if err != nil {
			return wasm.TypeDescriptor{}, err
		}
		return wasm.TypeDescriptor{Prefix: prefix, Body: body}, nil
	}

	var subTypes []uint32
	if prefix == wasm.TypePrefixRec || prefix == wasm.TypePrefixSub {
		n, err := c.readU32Leb()
		if err != nil {
			return wasm.TypeDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read subtype count")
		}
		subTypes = make([]uint32, 0, n)
		for i := uint32(0); i < n; i++ {
			st, err := c.readU32Leb()
			if err != nil {
				return wasm.TypeDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read subtype %d", i)
			}
			subTypes = append(subTypes, st)
		}
	}

	kind, err := c.readU8()
	if err != nil {
		return wasm.TypeDescriptor{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read type kind")
	}
	body, err := decodeTypeBody(c, kind)
	if err != nil {
		return wasm.TypeDescriptor{}, err
	}
	return wasm.TypeDescriptor{Prefix: prefix, SubTypes: subTypes, Body: body}, nil
}

func decodeTypeBody(c *cursor, kind byte) (wasm.TypeBody, error) {
	switch kind {
	case wasm.TypeKindFunc:
		return decodeFuncType(c)
	case wasm.TypeKindStruct:
		return decodeStructType(c)
	case wasm.TypeKindArray:
		return decodeArrayType(c)
	default:
		return nil, errf(wasm.ErrorKindUnknownTypeKind, "unknown type kind %#x", kind)
	}
}

func decodeFuncType(c *cursor) (wasm.FuncType, error) {
	params, err := decodeValueTypeVec(c)
	if err != nil {
		return wasm.FuncType{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read func params")
	}
	results, err := decodeValueTypeVec(c)
	if err != nil {
		return wasm.FuncType{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read func results")
	}
	return wasm.FuncType{Params: params, Results: results}, nil
}

func decodeValueTypeVec(c *cursor) ([]wasm.ValueType, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, err
	}
	var out []wasm.ValueType // stays nil for a zero-length vector
	for i := uint32(0); i < n; i++ {
		vt, err := decodeValueType(c)
		if err != nil {
			return nil, err
		}
		out = append(out, vt)
	}
	return out, nil
}

func decodeStructType(c *cursor) (wasm.StructType, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return wasm.StructType{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read struct field count")
	}
	fields := make([]wasm.StructField, 0, n)
	for i := uint32(0); i < n; i++ {
		vt, err := decodeValueType(c)
		if err != nil {
			return wasm.StructType{}, err
		}
		mut, err := decodeBool(c)
		if err != nil {
			return wasm.StructType{}, err
		}
		fields = append(fields, wasm.StructField{ValType: vt, Mutable: mut})
	}
	return wasm.StructType{Fields: fields}, nil
}

func decodeArrayType(c *cursor) (wasm.ArrayType, error) {
	vt, err := decodeValueType(c)
	if err != nil {
		return wasm.ArrayType{}, err
	}
	mut, err := decodeBool(c)
	if err != nil {
		return wasm.ArrayType{}, err
	}
	return wasm.ArrayType{ValType: vt, Mutable: mut}, nil
}

func encodeTypeSection(e *emitter, s *wasm.TypeSection) {
	e.writeU32Leb(uint32(len(s.Types)))
	for _, td := range s.Types {
		encodeTypeDescriptor(e, td)
	}
}

func sizeTypeSection(s *wasm.TypeSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Types)))
	for _, td := range s.Types {
		size += sizeTypeDescriptor(td)
	}
	return size
}

func encodeTypeDescriptor(e *emitter, td wasm.TypeDescriptor) {
	e.writeU8(td.Prefix)
	if td.Prefix == wasm.TypeKindFunc {
		encodeTypeBody(e, td.Body)
		return
	}
	if td.Prefix == wasm.TypePrefixRec || td.Prefix == wasm.TypePrefixSub {
		e.writeU32Leb(uint32(len(td.SubTypes)))
		for _, st := range td.SubTypes {
			e.writeU32Leb(st)
		}
	}
	e.writeU8(typeBodyKind(td.Body))
	encodeTypeBody(e, td.Body)
}

func sizeTypeDescriptor(td wasm.TypeDescriptor) uint32 {
	size := uint32(1) // prefix
	if td.Prefix == wasm.TypeKindFunc {
		return size + sizeTypeBody(td.Body)
	}
	if td.Prefix == wasm.TypePrefixRec || td.Prefix == wasm.TypePrefixSub {
		size += leb128.SizeUint32(uint32(len(td.SubTypes)))
		for _, st := range td.SubTypes {
			size += leb128.SizeUint32(st)
		}
	}
	size++ // kind byte
	return size + sizeTypeBody(td.Body)
}

func typeBodyKind(body wasm.TypeBody) byte {
	switch body.(type) {
	case wasm.FuncType:
		return wasm.TypeKindFunc
	case wasm.StructType:
		return wasm.TypeKindStruct
	case wasm.ArrayType:
		return wasm.TypeKindArray
	default:
		return 0
	}
}

func encodeTypeBody(e *emitter, body wasm.TypeBody) {
	switch b := body.(type) {
	case wasm.FuncType:
		encodeValueTypeVec(e, b.Params)
		encodeValueTypeVec(e, b.Results)
	case wasm.StructType:
		e.writeU32Leb(uint32(len(b.Fields)))
		for _, f := range b.Fields {
			encodeValueType(e, f.ValType)
			encodeBool(e, f.Mutable)
		}
	case wasm.ArrayType:
		encodeValueType(e, b.ValType)
		encodeBool(e, b.Mutable)
	}
}

func sizeTypeBody(body wasm.TypeBody) uint32 {
	switch b := body.(type) {
	case wasm.FuncType:
		return sizeValueTypeVec(b.Params) + sizeValueTypeVec(b.Results)
	case wasm.StructType:
		size := leb128.SizeUint32(uint32(len(b.Fields)))
		size += uint32(len(b.Fields)) * 2 // valtype byte + mutable byte
		return size
	case wasm.ArrayType:
		return 2
	default:
		return 0
	}
}

func encodeValueTypeVec(e *emitter, vts []wasm.ValueType) {
	e.writeU32Leb(uint32(len(vts)))
	for _, vt := range vts {
		encodeValueType(e, vt)
	}
}

func sizeValueTypeVec(vts []wasm.ValueType) uint32 {
	return leb128.SizeUint32(uint32(len(vts))) + uint32(len(vts))
}
