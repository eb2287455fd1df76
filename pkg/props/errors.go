package props

import (
	"errors"
	"fmt"
)

// Sentinel errors for builder validation.
var (
	// ErrInvalidValue is returned when a value is outside its allowed set or
	// has the wrong shape.
	ErrInvalidValue = errors.New("invalid value")

	// ErrArity is returned when a collection has the wrong number of elements.
	ErrArity = errors.New("wrong number of elements")

	// ErrIndexOutOfRange is returned by positional insert and pop operations.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Error wraps a builder error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed (e.g., "Table", "Code.SetLanguage")
	Err error  // Underlying error
	Msg string // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid wraps a validation failure from op. It returns nil if cause is nil.
func Invalid(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Op: op, Err: ErrInvalidValue, Msg: cause.Error()}
}

// Invalidf reports an invalid value for op.
func Invalidf(op, format string, args ...interface{}) error {
	return &Error{Op: op, Err: ErrInvalidValue, Msg: fmt.Sprintf(format, args...)}
}

// Arityf reports a count constraint violated by op.
func Arityf(op, format string, args ...interface{}) error {
	return &Error{Op: op, Err: ErrArity, Msg: fmt.Sprintf(format, args...)}
}

// OutOfRange reports index i outside [0, n) for op.
func OutOfRange(op string, i, n int) error {
	return &Error{Op: op, Err: ErrIndexOutOfRange, Msg: fmt.Sprintf("index %d, length %d", i, n)}
}
