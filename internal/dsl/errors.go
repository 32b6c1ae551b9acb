package dsl

import "fmt"

// Compile error codes. The UI shows Error() verbatim, so details carry the
// offending name or shape.
const (
	ErrInvalidRoot     = "E_INVALID_ROOT"
	ErrUnsupportedNode = "E_UNSUPPORTED_NODE"
	ErrUnknownVar      = "E_UNKNOWN_VAR"
	ErrInvalidArg      = "E_INVALID_ARG"
	ErrSchema          = "E_SCHEMA"
)

var knownCodes = map[string]struct{}{
	ErrInvalidRoot:     {},
	ErrUnsupportedNode: {},
	ErrUnknownVar:      {},
	ErrInvalidArg:      {},
	ErrSchema:          {},
}

func IsKnownCode(code string) bool {
	_, ok := knownCodes[code]
	return ok
}

// CompileError is the typed failure every malformed program compiles to.
type CompileError struct {
	Code   string
	Detail string
}

func (e *CompileError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func compileErrf(code, format string, args ...any) *CompileError {
	return &CompileError{Code: code, Detail: fmt.Sprintf(format, args...)}
}
