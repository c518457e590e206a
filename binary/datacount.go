package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeDataCountSection(c *cursor) (*wasm.DataCountSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read data count")
	}
	return &wasm.DataCountSection{Count: n}, nil
}

func encodeDataCountSection(e *emitter, s *wasm.DataCountSection) {
	e.writeU32Leb(s.Count)
}

func sizeDataCountSection(s *wasm.DataCountSection) uint32 {
	return leb128.SizeUint32(s.Count)
}
