package tree

import "errors"

var (
	// ErrOutOfRange signals a caller-facing bad index on an indexed operation.
	ErrOutOfRange = errors.New("tree: index out of range")
	// ErrInvalidArgument signals that a structural builder was given input
	// that would violate a B-tree invariant.
	ErrInvalidArgument = errors.New("tree: invalid argument")
	// ErrUnexpected signals an internal invariant violation. Callers never
	// recover from it; it indicates a bug in this package.
	ErrUnexpected = errors.New("tree: unexpected internal state")
)
