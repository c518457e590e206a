package binary

import (
	"errors"
	"fmt"

	"github.com/wasmpatch/wasmpatch/leb128"
	"github.com/wasmpatch/wasmpatch/wasm"
)

// errf builds a *wasm.DecodeError with no wrapped cause, for shape
// mismatches the codec itself detects (bad magic, unknown opcode, ...).
func errf(kind wasm.ErrorKind, format string, args ...interface{}) error {
	return wasm.NewDecodeError(kind, fmt.Sprintf(format, args...))
}

// wrapf builds a *wasm.DecodeError around an upstream cause (typically an
// io error from the cursor or a LEB128 overflow), prefixed with context
// about what the codec was trying to read. Mirrors the teacher's
// "section %s: %w" style of contextual error wrapping.
//
// If cause is already a classified *wasm.DecodeError (as every cursor
// read already is), its Kind wins over the kind argument: a LebOverflow
// surfacing three call frames up through several "read X" wrappers must
// stay LebOverflow, not collapse into whatever generic UnexpectedEnd its
// nearest caller happened to pass.
func wrapf(kind wasm.ErrorKind, cause error, format string, args ...interface{}) error {
	if de, ok := cause.(*wasm.DecodeError); ok {
		kind = de.Kind
	}
	return wasm.WrapDecodeError(kind, fmt.Sprintf(format, args...), cause)
}

// lebErrorKind classifies an error surfaced while decoding a LEB128 value:
// overflow is reported distinctly from a plain short read.
func lebErrorKind(err error) wasm.ErrorKind {
	if errors.Is(err, leb128.ErrOverflow) {
		return wasm.ErrorKindLebOverflow
	}
	return wasm.ErrorKindUnexpectedEnd
}
