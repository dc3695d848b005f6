package strval

import (
	"errors"
	"fmt"
)

// Sentinel errors for string operations.
var (
	// ErrBadValue indicates a required string argument is nil (unset).
	ErrBadValue = errors.New("bad value")

	// ErrOutOfMemory indicates the allocator could not satisfy a request.
	ErrOutOfMemory = errors.New("out of memory")
)

// Error wraps a failure with the operation that raised it.
type Error struct {
	Op  string // Operation that failed ("strip", "concat")
	Err error  // ErrBadValue or ErrOutOfMemory
	Msg string // Human-readable detail, e.g. "Input string is nil."
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Msg)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// BadValue returns an ErrBadValue failure for op.
func BadValue(op, msg string) *Error {
	return &Error{Op: op, Err: ErrBadValue, Msg: msg}
}

// NoMemory returns an ErrOutOfMemory failure for op.
func NoMemory(op string) *Error {
	return &Error{Op: op, Err: ErrOutOfMemory}
}

// IsBadValue reports whether err is a BadValue failure.
func IsBadValue(err error) bool {
	return errors.Is(err, ErrBadValue)
}

// IsOutOfMemory reports whether err is an allocation failure.
func IsOutOfMemory(err error) bool {
	return errors.Is(err, ErrOutOfMemory)
}

// Kind classifies err as "ErrBadValue", "ErrNoMemory" or "" when it is
// neither. The names match what scripts see in error reports.
func Kind(err error) string {
	switch {
	case IsBadValue(err):
		return "ErrBadValue"
	case IsOutOfMemory(err):
		return "ErrNoMemory"
	default:
		return ""
	}
}
