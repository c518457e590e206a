package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeTableSection(c *cursor) (*wasm.TableSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read table count")
	}
	tables := make([]wasm.TableDescriptor, 0, n)
	for i := uint32(0); i < n; i++ {
		rt, err := decodeValueType(c)
		if err != nil {
			return nil, err
		}
		lim, err := decodeLimits(c)
		if err != nil {
			return nil, err
		}
		tables = append(tables, wasm.TableDescriptor{RefType: rt, Limits: lim})
	}
	return &wasm.TableSection{Tables: tables}, nil
}

func encodeTableSection(e *emitter, s *wasm.TableSection) {
	e.writeU32Leb(uint32(len(s.Tables)))
	for _, t := range s.Tables {
		encodeValueType(e, t.RefType)
		encodeLimits(e, t.Limits)
	}
}

func sizeTableSection(s *wasm.TableSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Tables)))
	for _, t := range s.Tables {
		size += 1 + sizeLimits(t.Limits)
	}
	return size
}
