package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeFunctionSection(c *cursor) (*wasm.FunctionSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read function count")
	}
	indices := make([]wasm.Index, 0, n)
	for i := uint32(0); i < n; i++ {
		idx, err := c.readU32Leb()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read function type index %d", i)
		}
		indices = append(indices, idx)
	}
	return &wasm.FunctionSection{TypeIndices: indices}, nil
}

func encodeFunctionSection(e *emitter, s *wasm.FunctionSection) {
	e.writeU32Leb(uint32(len(s.TypeIndices)))
	for _, idx := range s.TypeIndices {
		e.writeU32Leb(idx)
	}
}

func sizeFunctionSection(s *wasm.FunctionSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.TypeIndices)))
	for _, idx := range s.TypeIndices {
		size += leb128.SizeUint32(idx)
	}
	return size
}
