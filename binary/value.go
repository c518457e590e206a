package binary

import (
	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

// decodeValueType and decodeLimits are shared by every section whose
// descriptor carries a value type or a (min, max) limits pair: table,
// memory, global, and their import counterparts.

func decodeValueType(c *cursor) (wasm.ValueType, error) {
	b, err := c.readU8()
	if err != nil {
		return 0, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read value type")
	}
	return wasm.ValueType(b), nil
}

func encodeValueType(e *emitter, v wasm.ValueType) {
	e.writeU8(byte(v))
}

func decodeBool(c *cursor) (bool, error) {
	b, err := c.readU8()
	if err != nil {
		return false, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read bool flag")
	}
	return b != 0, nil
}

func encodeBool(e *emitter, v bool) {
	if v {
		e.writeU8(1)
	} else {
		e.writeU8(0)
	}
}

// decodeLimits reads the shared (flag, min, optional max) shape used by
// table and memory descriptors and their import counterparts. Only bit 0
// of flag is interpreted, per spec.md §9 Open Question 3: shared/64-bit
// memory proposals are not distinguished here.
func decodeLimits(c *cursor) (wasm.Limits, error) {
	flag, err := c.readU8()
	if err != nil {
		return wasm.Limits{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read limits flag")
	}
	min, err := c.readU32Leb()
	if err != nil {
		return wasm.Limits{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read limits min")
	}
	lim := wasm.Limits{Min: min}
	if flag&1 != 0 {
		max, err := c.readU32Leb()
		if err != nil {
			return wasm.Limits{}, wrapf(wasm.ErrorKindUnexpectedEnd, err, "read limits max")
		}
		lim.Max = &max
	}
	return lim, nil
}

func encodeLimits(e *emitter, lim wasm.Limits) {
	if lim.Max != nil {
		e.writeU8(1)
		e.writeU32Leb(lim.Min)
		e.writeU32Leb(*lim.Max)
		return
	}
	e.writeU8(0)
	e.writeU32Leb(lim.Min)
}

func sizeLimits(lim wasm.Limits) uint32 {
	size := uint32(1) + leb128.SizeUint32(lim.Min)
	if lim.Max != nil {
		size += leb128.SizeUint32(*lim.Max)
	}
	return size
}
