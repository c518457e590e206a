package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmpatch/wasmpatch/wasm"
)

func TestDecodeTypeDescriptor_bareFunc(t *testing.T) {
	// 0x60, 1 param i32, 1 result i64
	c := newCursor([]byte{0x60, 0x01, 0x7F, 0x01, 0x7E})
	td, err := decodeTypeDescriptor(c)
	require.NoError(t, err)
	require.Equal(t, byte(0x60), td.Prefix)
	require.Empty(t, td.SubTypes)
	ft, ok := td.Body.(wasm.FuncType)
	require.True(t, ok)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32}, ft.Params)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI64}, ft.Results)

	e := newEmitter()
	encodeTypeDescriptor(e, td)
	require.Equal(t, c.buf, e.bytes())
	require.EqualValues(t, len(e.bytes()), sizeTypeDescriptor(td))
}

func TestDecodeTypeDescriptor_recursionGroup(t *testing.T) {
	// 0x4E, 1 subtype (index 3), kind 0x60, empty func
	c := newCursor([]byte{0x4E, 0x01, 0x03, 0x60, 0x00, 0x00})
	td, err := decodeTypeDescriptor(c)
	require.NoError(t, err)
	require.Equal(t, byte(0x4E), td.Prefix)
	require.Equal(t, []uint32{3}, td.SubTypes)
	_, ok := td.Body.(wasm.FuncType)
	require.True(t, ok)

	e := newEmitter()
	encodeTypeDescriptor(e, td)
	require.Equal(t, c.buf, e.bytes())
}

func TestDecodeTypeDescriptor_structType(t *testing.T) {
	// non-0x60, non-GC prefix byte, kind 0x5E (struct), 1 field: i32, mutable
	c := newCursor([]byte{0x00, 0x5E, 0x01, 0x7F, 0x01})
	td, err := decodeTypeDescriptor(c)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), td.Prefix)
	require.Empty(t, td.SubTypes)
	st, ok := td.Body.(wasm.StructType)
	require.True(t, ok)
	require.Len(t, st.Fields, 1)
	require.Equal(t, wasm.ValueTypeI32, st.Fields[0].ValType)
	require.True(t, st.Fields[0].Mutable)
}

func TestDecodeTypeDescriptor_arrayType(t *testing.T) {
	c := newCursor([]byte{0x00, 0x5F, 0x7E, 0x00})
	td, err := decodeTypeDescriptor(c)
	require.NoError(t, err)
	at, ok := td.Body.(wasm.ArrayType)
	require.True(t, ok)
	require.Equal(t, wasm.ValueTypeI64, at.ValType)
	require.False(t, at.Mutable)
}

func TestDecodeTypeDescriptor_unknownKind(t *testing.T) {
	c := newCursor([]byte{0x00, 0x99})
	_, err := decodeTypeDescriptor(c)
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindUnknownTypeKind, de.Kind)
}

func TestTypeSection_roundTrip(t *testing.T) {
	src := &wasm.TypeSection{Types: []wasm.TypeDescriptor{
		{Prefix: wasm.TypeKindFunc, Body: wasm.FuncType{Params: []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}}},
		{Prefix: wasm.TypeKindFunc, Body: wasm.FuncType{}},
	}}
	e := newEmitter()
	encodeTypeSection(e, src)
	require.EqualValues(t, len(e.bytes()), sizeTypeSection(src))

	got, err := decodeTypeSection(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, src, got)
}
