package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeGlobalSection(c *cursor) (*wasm.GlobalSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read global count")
	}
	globals := make([]wasm.GlobalDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		vt, err := decodeValueType(c)
		if err != nil {
			return nil, err
		}
		mut, err := c.readU8()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read global mutable flag")
		}
		init, err := decodeConstExpr(c)
		if err != nil {
			return nil, err
		}
		globals = append(globals, wasm.GlobalDescriptor{ValType: vt, Mutable: mut, Init: init})
	}
	return &wasm.GlobalSection{Globals: globals}, nil
}

func encodeGlobalSection(e *emitter, s *wasm.GlobalSection) {
	e.writeU32Leb(uint32(len(s.Globals)))
	for _, g := range s.Globals {
		encodeValueType(e, g.ValType)
		e.writeU8(g.Mutable)
		encodeConstExpr(e, g.Init)
	}
}

func sizeGlobalSection(s *wasm.GlobalSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Globals)))
	for _, g := range s.Globals {
		size += 2 + sizeConstExpr(g.Init)
	}
	return size
}
