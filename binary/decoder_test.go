package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmpatch/wasmpatch/wasm"
)

// TestDecodeModule_minimalEmpty is boundary scenario S1: magic+version,
// no sections.
func TestDecodeModule_minimalEmpty(t *testing.T) {
	input := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	m, err := DecodeModule(input)
	require.NoError(t, err)
	require.Empty(t, m.Sections)
}

// TestDecodeModule_startSection is boundary scenario S2.
func TestDecodeModule_startSection(t *testing.T) {
	input := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, 0x08, 0x01, 0x03}
	m, err := DecodeModule(input)
	require.NoError(t, err)
	require.Len(t, m.Sections, 1)
	require.Equal(t, uint32(3), m.Start().FuncIndex)
}

// TestDecodeModule_customSection is boundary scenario S3.
func TestDecodeModule_customSection(t *testing.T) {
	input := []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		0x00, 0x07, 0x04, 0x6E, 0x61, 0x6D, 0x65, 0xAA, 0xBB,
	}
	m, err := DecodeModule(input)
	require.NoError(t, err)
	cs := m.FindCustom("name")
	require.NotNil(t, cs)
	require.Equal(t, []byte{0xAA, 0xBB}, cs.Data)
}

func TestDecodeModule_invalidMagic(t *testing.T) {
	_, err := DecodeModule([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x00, 0x00, 0x00})
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindInvalidMagic, de.Kind)
}

func TestDecodeModule_unsupportedVersion(t *testing.T) {
	_, err := DecodeModule([]byte{0x00, 0x61, 0x73, 0x6D, 0x02, 0x00, 0x00, 0x00})
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindUnsupportedVersion, de.Kind)
}

func TestDecodeModule_truncated(t *testing.T) {
	_, err := DecodeModule([]byte{0x00, 0x61, 0x73})
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindUnexpectedEnd, de.Kind)
}

// TestDecodeModule_unknownOpcode is boundary scenario S6: an unknown
// opcode inside a code section's function body fails with UnknownOpcode.
func TestDecodeModule_unknownOpcode(t *testing.T) {
	// code section: 1 body, size=2, 0 locals, opcode 0x06 (unassigned)
	input := []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		0x0A, 0x04, 0x01, 0x02, 0x00, 0x06,
	}
	_, err := DecodeModule(input)
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindUnknownOpcode, de.Kind)
}

func TestDecodeModule_sectionUnderconsumption(t *testing.T) {
	// start section payload declared as 2 bytes but a single-byte u32 LEB
	// (0x00) only consumes 1, leaving a trailing byte inside the frame.
	input := []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		0x08, 0x02, 0x00, 0x00,
	}
	_, err := DecodeModule(input)
	require.Error(t, err)
}

// TestDecodeModule_lebOverflowClassificationSurvivesWrapping checks that
// an overlong LEB128 encoding inside a section payload is still reported
// as LebOverflow at the top level, not reclassified to UnexpectedEnd by
// one of the "read ..." context wrappers in between.
func TestDecodeModule_lebOverflowClassificationSurvivesWrapping(t *testing.T) {
	overlong := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	input := append([]byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, 0x08, byte(len(overlong))}, overlong...)
	_, err := DecodeModule(input)
	require.Error(t, err)
	var de *wasm.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, wasm.ErrorKindLebOverflow, de.Kind)
}

func TestDecodeModule_preservesUnknownSection(t *testing.T) {
	input := []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		0x20, 0x02, 0xAA, 0xBB, // kind 0x20 is not one of the 14 known kinds
	}
	m, err := DecodeModule(input)
	require.NoError(t, err)
	require.Len(t, m.Sections, 1)
	us, ok := m.Sections[0].(*wasm.UnknownSection)
	require.True(t, ok)
	require.Equal(t, byte(0x20), us.Kind)
	require.Equal(t, []byte{0xAA, 0xBB}, us.Payload)
}
