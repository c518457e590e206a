package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmpatch/wasmpatch/wasm"
)

func TestGlobalSection_roundTrip(t *testing.T) {
	src := &wasm.GlobalSection{Globals: []wasm.GlobalDescriptor{
		{
			ValType: wasm.ValueTypeI32,
			Mutable: 1,
			Init: []wasm.Instruction{
				{Opcode: wasm.OpcodeI32Const, Params: []wasm.Immediate{wasm.ImmI32(42)}},
				{Opcode: wasm.OpcodeEnd},
			},
		},
	}}
	e := newEmitter()
	encodeGlobalSection(e, src)
	require.EqualValues(t, len(e.bytes()), sizeGlobalSection(src))

	got, err := decodeGlobalSection(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, src, got)
}

// TestGlobalSection_mutableByteNotCoercedToBool checks that an
// already-minimal but non-canonical mutable flag (anything other than
// 0x00/0x01) round-trips byte-for-byte rather than collapsing to 0x01.
func TestGlobalSection_mutableByteNotCoercedToBool(t *testing.T) {
	src := &wasm.GlobalSection{Globals: []wasm.GlobalDescriptor{
		{ValType: wasm.ValueTypeI32, Mutable: 0x2A, Init: []wasm.Instruction{{Opcode: wasm.OpcodeEnd}}},
	}}
	e := newEmitter()
	encodeGlobalSection(e, src)

	got, err := decodeGlobalSection(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, byte(0x2A), got.Globals[0].Mutable)
}
