package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeExportSection(c *cursor) (*wasm.ExportSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read export count")
	}
	exports := make([]wasm.ExportDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		name, err := c.readName()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read export name")
		}
		kind, err := c.readU8()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read export kind")
		}
		idx, err := c.readU32Leb()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read export index")
		}
		exports = append(exports, wasm.ExportDescriptor{Name: name, Kind: wasm.ExternKind(kind), Index: idx})
	}
	return &wasm.ExportSection{Exports: exports}, nil
}

func encodeExportSection(e *emitter, s *wasm.ExportSection) {
	e.writeU32Leb(uint32(len(s.Exports)))
	for _, exp := range s.Exports {
		e.writeName(exp.Name)
		e.writeU8(byte(exp.Kind))
		e.writeU32Leb(exp.Index)
	}
}

func sizeExportSection(s *wasm.ExportSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Exports)))
	for _, exp := range s.Exports {
		size += sizeName(exp.Name) + 1 + leb128.SizeUint32(exp.Index)
	}
	return size
}
