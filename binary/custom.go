package binary

import "github.com/wasmpatch/wasmpatch/wasm"

// decodeCustomSection reads the length-prefixed name and treats the rest
// of the section's framed payload as opaque data, per spec.md §4.4: the
// codec never interprets custom-section contents.
func decodeCustomSection(c *cursor) (*wasm.CustomSection, error) {
	name, err := c.readName()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read custom section name")
	}
	data, err := c.readBytes(c.remaining())
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read custom section data")
	}
	return &wasm.CustomSection{Name: name, Data: data}, nil
}

func encodeCustomSection(e *emitter, s *wasm.CustomSection) {
	e.writeName(s.Name)
	e.writeBytes(s.Data)
}

func sizeCustomSection(s *wasm.CustomSection) uint32 {
	return sizeName(s.Name) + uint32(len(s.Data))
}
