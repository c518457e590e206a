package binary

import "github.com/wasmpatch/wasmpatch/wasm"

// decodeUnknownSection preserves a section whose kind byte this codec
// does not recognize, bytes verbatim, so decoding and re-encoding a
// module produced by a newer toolchain does not silently drop data.
func decodeUnknownSection(c *cursor, kind byte) (*wasm.UnknownSection, error) {
	payload, err := c.readBytes(c.remaining())
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read unknown section payload")
	}
	return &wasm.UnknownSection{Kind: kind, Payload: payload}, nil
}

func encodeUnknownSection(e *emitter, s *wasm.UnknownSection) {
	e.writeBytes(s.Payload)
}

func sizeUnknownSection(s *wasm.UnknownSection) uint32 {
	return uint32(len(s.Payload))
}
