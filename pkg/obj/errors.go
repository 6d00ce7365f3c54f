package obj

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable wraps failures to open or read the input.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrWrongFileFormat is matched by every format validation failure.
	ErrWrongFileFormat = errors.New("wrong file format")

	ErrMalformedVertex       = errors.New("malformed vertex")
	ErrMalformedFace         = errors.New("malformed face")
	ErrDanglingFaceReference = errors.New("face references a vertex that is not defined yet")
)

// FormatError describes why a line of the input was rejected. errors.Is
// matches both its Kind and ErrWrongFileFormat.
type FormatError struct {
	Line int
	Kind error
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid input file: line %d: %v: %s", e.Line, e.Kind, e.Msg)
}

func (e *FormatError) Unwrap() []error {
	return []error{e.Kind, ErrWrongFileFormat}
}

func formatErrorf(line int, kind error, format string, args ...any) error {
	return &FormatError{Line: line, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
