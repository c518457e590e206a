package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeTagSection(c *cursor) (*wasm.TagSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read tag count")
	}
	tags := make([]wasm.TagDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		attr, err := c.readU8()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read tag attribute")
		}
		idx, err := c.readU32Leb()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read tag type index")
		}
		tags = append(tags, wasm.TagDescriptor{Attribute: attr, TypeIndex: idx})
	}
	return &wasm.TagSection{Tags: tags}, nil
}

func encodeTagSection(e *emitter, s *wasm.TagSection) {
	e.writeU32Leb(uint32(len(s.Tags)))
	for _, t := range s.Tags {
		e.writeU8(t.Attribute)
		e.writeU32Leb(t.TypeIndex)
	}
}

func sizeTagSection(s *wasm.TagSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Tags)))
	for _, t := range s.Tags {
		size += 1 + leb128.SizeUint32(t.TypeIndex)
	}
	return size
}
