package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmpatch/wasmpatch/wasm"
)

func TestDataCountSection_roundTrip(t *testing.T) {
	src := &wasm.DataCountSection{Count: 4}
	e := newEmitter()
	encodeDataCountSection(e, src)
	require.EqualValues(t, len(e.bytes()), sizeDataCountSection(src))

	got, err := decodeDataCountSection(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestTagSection_roundTrip(t *testing.T) {
	src := &wasm.TagSection{Tags: []wasm.TagDescriptor{{Attribute: 0, TypeIndex: 2}}}
	e := newEmitter()
	encodeTagSection(e, src)
	require.EqualValues(t, len(e.bytes()), sizeTagSection(src))

	got, err := decodeTagSection(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestCustomSection_roundTrip(t *testing.T) {
	src := &wasm.CustomSection{Name: "name", Data: []byte{0xAA, 0xBB}}
	e := newEmitter()
	encodeCustomSection(e, src)
	require.EqualValues(t, len(e.bytes()), sizeCustomSection(src))

	got, err := decodeCustomSection(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestUnknownSection_roundTrip(t *testing.T) {
	src := &wasm.UnknownSection{Kind: 0x7F, Payload: []byte{1, 2, 3}}
	e := newEmitter()
	encodeUnknownSection(e, src)
	require.EqualValues(t, len(e.bytes()), sizeUnknownSection(src))

	got, err := decodeUnknownSection(newCursor(e.bytes()), src.Kind)
	require.NoError(t, err)
	require.Equal(t, src, got)
	require.Equal(t, src.Kind, got.ID())
}

func TestSectionPayload_dispatch_agreesOnSize(t *testing.T) {
	sections := []wasm.Section{
		&wasm.TypeSection{Types: []wasm.TypeDescriptor{{Prefix: wasm.TypeKindFunc, Body: wasm.FuncType{}}}},
		&wasm.StartSection{FuncIndex: 9},
		&wasm.CustomSection{Name: "x", Data: []byte{1}},
	}
	for _, sec := range sections {
		e := newEmitter()
		encodeSectionPayload(e, sec)
		require.EqualValues(t, len(e.bytes()), sizeSectionPayload(sec))
	}
}
