package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

func decodeCodeSection(c *cursor) (*wasm.CodeSection, error) {
	n, err := c.readU32Leb()
	if err != nil {
		return nil, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read code entry count")
	}
	bodies := make([]wasm.FunctionBody, 0, n)
	for i := uint32(0); i < n; i++ {
		body, err := decodeFunctionBody(c)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return &wasm.CodeSection{Bodies: bodies}, nil
}

// decodeFunctionBody reads the body's own size prefix, carves out exactly
// that many bytes into a sub-cursor, and decodes locals followed by
// instructions consuming the remainder of that sub-cursor — mirroring how
// the module layer frames sections, one level down.
func decodeFunctionBody(c *cursor) (wasm.FunctionBody, error) {
	size, err := c.readU32Leb()
	if err != nil {
		return wasm.FunctionBody{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read function body size")
	}
	payload, err := c.readBytes(int(size))
	if err != nil {
		return wasm.FunctionBody{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read function body payload")
	}
	sub := newCursor(payload)

	n, err := sub.readU32Leb()
	if err != nil {
		return wasm.FunctionBody{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read local group count")
	}
	var locals []wasm.Local // stays nil when there are no local groups
	for i := uint32(0); i < n; i++ {
		count, err := sub.readU32Leb()
		if err != nil {
			return wasm.FunctionBody{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read local group %d count", i)
		}
		vt, err := decodeValueType(sub)
		if err != nil {
			return wasm.FunctionBody{}, err
		}
		locals = append(locals, wasm.Local{Count: count, ValType: vt})
	}

	instrs, err := decodeInstructions(sub)
	if err != nil {
		return wasm.FunctionBody{}, err
	}
	return wasm.FunctionBody{Locals: locals, Instructions: instrs}, nil
}

func encodeCodeSection(e *emitter, s *wasm.CodeSection) {
	e.writeU32Leb(uint32(len(s.Bodies)))
	for _, b := range s.Bodies {
		encodeFunctionBody(e, b)
	}
}

func sizeCodeSection(s *wasm.CodeSection) uint32 {
	size := leb128.SizeUint32(uint32(len(s.Bodies)))
	for _, b := range s.Bodies {
		bodySize := sizeFunctionBody(b)
		size += leb128.SizeUint32(bodySize) + bodySize
	}
	return size
}

func encodeFunctionBody(e *emitter, b wasm.FunctionBody) {
	e.writeU32Leb(sizeFunctionBody(b))
	e.writeU32Leb(uint32(len(b.Locals)))
	for _, l := range b.Locals {
		e.writeU32Leb(l.Count)
		encodeValueType(e, l.ValType)
	}
	for _, ins := range b.Instructions {
		encodeInstruction(e, ins)
	}
}

func sizeFunctionBody(b wasm.FunctionBody) uint32 {
	size := leb128.SizeUint32(uint32(len(b.Locals)))
	for _, l := range b.Locals {
		size += leb128.SizeUint32(l.Count) + 1
	}
	for _, ins := range b.Instructions {
		size += sizeInstruction(ins)
	}
	return size
}
