package rope

import "github.com/thlorenz/grope/internal/tree"

// Sentinel errors surfaced by every rope operation. They alias the
// internal tree package's errors directly, the way cords.go surfaces
// ErrIndexOutOfBounds/ErrIllegalArguments at the top level while btree keeps
// its own sentinels underneath.
var (
	// ErrOutOfRange is returned for a caller-facing bad index.
	ErrOutOfRange = tree.ErrOutOfRange
	// ErrInvalidArgument is returned when an argument would violate a
	// structural invariant.
	ErrInvalidArgument = tree.ErrInvalidArgument
	// ErrUnexpected is returned for an internal invariant violation. It
	// indicates a bug in this module, not bad input.
	ErrUnexpected = tree.ErrUnexpected
)
