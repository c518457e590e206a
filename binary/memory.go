package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeMemorySection(c *cursor) (*wasm.MemorySection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read memory count")
	}
	memories := make([]wasm.MemoryDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		lim, err := decodeLimits(c)
		if err != nil {
			return nil, err
		}
		memories = append(memories, wasm.MemoryDescriptor{Limits: lim})
	}
	return &wasm.MemorySection{Memories: memories}, nil
}

func encodeMemorySection(e *emitter, s *wasm.MemorySection) {
	e.writeU32Leb(uint32(len(s.Memories)))
	for _, m := range s.Memories {
		encodeLimits(e, m.Limits)
	}
}

func sizeMemorySection(s *wasm.MemorySection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Memories)))
	for _, m := range s.Memories {
		size += sizeLimits(m.Limits)
	}
	return size
}
