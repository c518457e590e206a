package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeStartSection(c *cursor) (*wasm.StartSection, error) {
	idx, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read start function index")
	}
	return &wasm.StartSection{FuncIndex: idx}, nil
}

func encodeStartSection(e *emitter, s *wasm.StartSection) {
	e.writeU32Leb(s.FuncIndex)
}

func sizeStartSection(s *wasm.StartSection) uint32 {
	return leb128.SizeUint32(s.FuncIndex)
}
