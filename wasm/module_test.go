package wasm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "i32", ValueTypeI32.String())
	assert.Equal(t, "funcref", ValueTypeFuncref.String())
	assert.Equal(t, "0xff", ValueType(0xff).String())
}

func TestExternKindString(t *testing.T) {
	assert.Equal(t, "func", ExternKindFunc.String())
	assert.Equal(t, "global", ExternKindGlobal.String())
}

func TestOpcodeName(t *testing.T) {
	assert.Equal(t, "local.get", OpcodeName(OpcodeLocalGet))
	assert.Equal(t, "end", OpcodeName(OpcodeEnd))
	assert.Equal(t, "numeric-op", OpcodeName(0x6a)) // i32.add
	assert.Equal(t, "0x09", OpcodeName(0x09))        // unassigned, reserved
}

func TestModuleFind(t *testing.T) {
	zero := uint32(3)
	m := &Module{Sections: []Section{
		&TypeSection{Types: []TypeDescriptor{{Prefix: TypeKindFunc, Body: FuncType{}}}},
		&CustomSection{Name: "producers", Data: []byte{1}},
		&CustomSection{Name: "name", Data: []byte{2}},
		&StartSection{FuncIndex: zero},
	}}

	require.NotNil(t, m.Find(SectionIDType))
	require.Nil(t, m.Find(SectionIDTag))

	customs := m.FindAll(SectionIDCustom)
	require.Len(t, customs, 2)

	require.Equal(t, []byte{2}, m.FindCustom("name").Data)
	require.Nil(t, m.FindCustom("missing"))

	require.Equal(t, zero, m.Start().FuncIndex)
}

func TestModuleStart_absent(t *testing.T) {
	m := &Module{}
	require.Nil(t, m.Start())
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("EOF")
	err := WrapDecodeError(ErrorKindUnexpectedEnd, "read section size", cause)
	require.Equal(t, "read section size: EOF", err.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, ErrorKindUnexpectedEnd, err.Kind)
	require.Equal(t, "UnexpectedEnd", err.Kind.String())

	plain := NewDecodeError(ErrorKindInvalidMagic, "invalid magic number")
	require.Equal(t, "invalid magic number", plain.Error())
	require.Nil(t, plain.Unwrap())
}
