package wasm

import "fmt"

// ErrorKind classifies a DecodeError the way spec.md §7 enumerates: each
// value names one of the ways a byte stream can fail to match the grammar.
// None of them indicate a semantic validation failure — the codec accepts
// any byte sequence whose shape matches the grammar even when index or
// type references are nonsensical.
type ErrorKind int

const (
	_ ErrorKind = iota
	ErrorKindInvalidMagic
	ErrorKindUnsupportedVersion
	ErrorKindUnexpectedEnd
	ErrorKindLebOverflow
	ErrorKindUnknownOpcode
	ErrorKindUnknownImportKind
	ErrorKindUnknownElementFlag
	ErrorKindUnknownDataFlag
	ErrorKindUnknownTypeKind
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidMagic:
		return "InvalidMagic"
	case ErrorKindUnsupportedVersion:
		return "UnsupportedVersion"
	case ErrorKindUnexpectedEnd:
		return "UnexpectedEnd"
	case ErrorKindLebOverflow:
		return "LebOverflow"
	case ErrorKindUnknownOpcode:
		return "UnknownOpcode"
	case ErrorKindUnknownImportKind:
		return "UnknownImportKind"
	case ErrorKindUnknownElementFlag:
		return "UnknownElementFlag"
	case ErrorKindUnknownDataFlag:
		return "UnknownDataFlag"
	case ErrorKindUnknownTypeKind:
		return "UnknownTypeKind"
	default:
		return "Unknown"
	}
}

// DecodeError is returned by every failing decode, carrying the classified
// Kind alongside the contextual message built by the codec (which section,
// which index, which byte). Callers that only care about the class of
// failure (e.g. "is this even a Wasm file?") can switch on Kind; callers
// that want the full trail can print the error directly.
type DecodeError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped cause, if any
}

func NewDecodeError(kind ErrorKind, msg string) *DecodeError {
	return &DecodeError{Kind: kind, msg: msg}
}

func WrapDecodeError(kind ErrorKind, msg string, cause error) *DecodeError {
	return &DecodeError{Kind: kind, msg: msg, err: cause}
}

func (e *DecodeError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *DecodeError) Unwrap() error { return e.err }
