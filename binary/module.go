// Package binary implements the decoder and encoder for the WebAssembly
// binary module format: magic+version framing, the fourteen section
// kinds, and the opcode-dispatched instruction stream they embed. It
// consumes and produces the data types declared in package wasm; it owns
// no data model of its own.
package binary

import "github.com/wasmpatch/wasmpatch/wasm"

// DecodeModule parses a complete .wasm byte stream into a Module. It
// validates only the magic number, version, and the grammar shape of
// every section and instruction it reads; it never validates indices,
// types, or control-flow structure against each other (out of scope, see
// spec.md §1).
func DecodeModule(b []byte) (*wasm.Module, error) {
	c := newCursor(b)

	magic, err := c.readBytes(4)
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read magic")
	}
	if string(magic) != string(wasm.Magic) {
		return nil, errf(wasm.ErrorKindInvalidMagic, "invalid magic number %x", magic)
	}

	version, err := c.readBytes(4)
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read version")
	}
	if string(version) != string(wasm.Version) {
		return nil, errf(wasm.ErrorKindUnsupportedVersion, "unsupported version %x", version)
	}

	var sections []wasm.Section
	for c.remaining() > 0 {
		kind, err := c.readU8()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read section kind")
		}
		size, err := c.readU32Leb()
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read section size")
		}
		payload, err := c.readBytes(int(size))
		if err != nil {
			return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read section payload")
		}

		sec, err := decodeSection(kind, payload)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}

	return &wasm.Module{Sections: sections}, nil
}

// decodeSection dispatches on kind and decodes payload in full: every
// branch is expected to consume exactly len(payload) bytes, except the
// ones spec.md §4.4 defines as consuming the remainder of their slice
// (Custom and Unknown, whose decoders read everything left in payload).
func decodeSection(kind byte, payload []byte) (wasm.Section, error) {
	c := newCursor(payload)

	var (
		sec wasm.Section
		err error
	)
	switch kind {
	case wasm.SectionIDCustom:
		sec, err = decodeCustomSection(c)
	case wasm.SectionIDType:
		sec, err = decodeTypeSection(c)
	case wasm.SectionIDImport:
		sec, err = decodeImportSection(c)
	case wasm.SectionIDFunction:
		sec, err = decodeFunctionSection(c)
	case wasm.SectionIDTable:
		sec, err = decodeTableSection(c)
	case wasm.SectionIDMemory:
		sec, err = decodeMemorySection(c)
	case wasm.SectionIDGlobal:
		sec, err = decodeGlobalSection(c)
	case wasm.SectionIDExport:
		sec, err = decodeExportSection(c)
	case wasm.SectionIDStart:
		sec, err = decodeStartSection(c)
	case wasm.SectionIDElement:
		sec, err = decodeElementSection(c)
	case wasm.SectionIDCode:
		sec, err = decodeCodeSection(c)
	case wasm.SectionIDData:
		sec, err = decodeDataSection(c)
	case wasm.SectionIDDataCount:
		sec, err = decodeDataCountSection(c)
	case wasm.SectionIDTag:
		sec, err = decodeTagSection(c)
	default:
		sec, err = decodeUnknownSection(c, kind)
	}
	if err != nil {
		return nil, err
	}

	if c.remaining() != 0 {
		return nil, errf(wasm.ErrorKindUnexpectedEnd, "section kind %#x: %d trailing bytes after decode", kind, c.remaining())
	}
	return sec, nil
}

// EncodeModule serializes m back to bytes: magic, version, then every
// section in Module.Sections order, each re-framed from its current
// (possibly host-mutated) field values. Size prefixes are always
// recomputed; nothing is cached from a prior decode.
func EncodeModule(m *wasm.Module) []byte {
	e := newEmitter()
	e.writeBytes(wasm.Magic)
	e.writeBytes(wasm.Version)

	for _, sec := range m.Sections {
		encodeSectionFrame(e, sec)
	}
	return e.bytes()
}

func encodeSectionFrame(e *emitter, sec wasm.Section) {
	payload := newEmitter()
	encodeSectionPayload(payload, sec)

	e.writeU8(sec.ID())
	e.writeU32Leb(uint32(payload.buf.Len()))
	e.writeBytes(payload.bytes())
}

func encodeSectionPayload(e *emitter, sec wasm.Section) {
	switch s := sec.(type) {
	case *wasm.CustomSection:
		encodeCustomSection(e, s)
	case *wasm.TypeSection:
		encodeTypeSection(e, s)
	case *wasm.ImportSection:
		encodeImportSection(e, s)
	case *wasm.FunctionSection:
		encodeFunctionSection(e, s)
	case *wasm.TableSection:
		encodeTableSection(e, s)
	case *wasm.MemorySection:
		encodeMemorySection(e, s)
	case *wasm.GlobalSection:
		encodeGlobalSection(e, s)
	case *wasm.ExportSection:
		encodeExportSection(e, s)
	case *wasm.StartSection:
		encodeStartSection(e, s)
	case *wasm.ElementSection:
		encodeElementSection(e, s)
	case *wasm.CodeSection:
		encodeCodeSection(e, s)
	case *wasm.DataSection:
		encodeDataSection(e, s)
	case *wasm.DataCountSection:
		encodeDataCountSection(e, s)
	case *wasm.TagSection:
		encodeTagSection(e, s)
	case *wasm.UnknownSection:
		encodeUnknownSection(e, s)
	}
}

// sizeSectionPayload mirrors encodeSectionPayload's dispatch for callers
// that need a section's encoded length without paying for an intermediate
// buffer (EncodeModule does not use this directly since computing the
// frame size by encoding into a scratch emitter is simpler and just as
// correct, but the unexported per-section size functions stay available
// inside the package for tests to assert Size() agrees with Write(), per
// spec.md §9).
func sizeSectionPayload(sec wasm.Section) uint32 {
	switch s := sec.(type) {
	case *wasm.CustomSection:
		return sizeCustomSection(s)
	case *wasm.TypeSection:
		return sizeTypeSection(s)
	case *wasm.ImportSection:
		return sizeImportSection(s)
	case *wasm.FunctionSection:
		return sizeFunctionSection(s)
	case *wasm.TableSection:
		return sizeTableSection(s)
	case *wasm.MemorySection:
		return sizeMemorySection(s)
	case *wasm.GlobalSection:
		return sizeGlobalSection(s)
	case *wasm.ExportSection:
		return sizeExportSection(s)
	case *wasm.StartSection:
		return sizeStartSection(s)
	case *wasm.ElementSection:
		return sizeElementSection(s)
	case *wasm.CodeSection:
		return sizeCodeSection(s)
	case *wasm.DataSection:
		return sizeDataSection(s)
	case *wasm.DataCountSection:
		return sizeDataCountSection(s)
	case *wasm.TagSection:
		return sizeTagSection(s)
	case *wasm.UnknownSection:
		return sizeUnknownSection(s)
	default:
		return 0
	}
}
