package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmpatch/wasmpatch/wasm"
)

func TestDataSegment_flag0(t *testing.T) {
	src := wasm.DataSegment{Flag: 0, Offset: constI32(0), Init: []byte{0xAA, 0xBB}}
	roundTripDataSegment(t, src)
}

func TestDataSegment_flag1(t *testing.T) {
	src := wasm.DataSegment{Flag: 1, Init: []byte{0x01}}
	roundTripDataSegment(t, src)
}

func TestDataSegment_flag2(t *testing.T) {
	src := wasm.DataSegment{Flag: 2, MemoryIndex: 1, Offset: constI32(4), Init: []byte{}}
	roundTripDataSegment(t, src)
}

func TestDataSegment_unknownFlag(t *testing.T) {
	c := newCursor([]byte{0x03})
	_, err := decodeDataSegment(c)
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindUnknownDataFlag, de.Kind)
}

func roundTripDataSegment(t *testing.T, src wasm.DataSegment) {
	t.Helper()
	e := newEmitter()
	encodeDataSegment(e, src)
	require.EqualValues(t, len(e.bytes()), sizeDataSegment(src))

	got, err := decodeDataSegment(newCursor(e.bytes()))
	require.NoError(t, err)
	require.Equal(t, src, got)
}
