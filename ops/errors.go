package ops

import "errors"

// Sentinel errors for the operation table.
var (
	// ErrUnknownOp indicates no operation is registered under the name.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrArity indicates the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)
