package tree

import "fmt"

const (
	// DefaultMaxLeaf is the maximum number of runes stored in one leaf.
	DefaultMaxLeaf = 2048
	// DefaultMinChildren is the default lower fan-out bound checked by
	// Validate. The builders in this package do not enforce it: internal
	// nodes with fewer children, down to one, are legal.
	DefaultMinChildren = 4
	// DefaultMaxChildren is the maximum fan-out of an internal node.
	DefaultMaxChildren = 8
)

// Config carries the tunable structural thresholds of a tree. The zero
// value is not valid; use WithDefaults or Validate a fully populated value.
type Config struct {
	MaxLeaf     int
	MinChildren int
	MaxChildren int
}

// WithDefaults returns the default configuration
// (MAX_LEAF=2048, MIN_CHILDREN=4, MAX_CHILDREN=8).
func WithDefaults() Config {
	return Config{
		MaxLeaf:     DefaultMaxLeaf,
		MinChildren: DefaultMinChildren,
		MaxChildren: DefaultMaxChildren,
	}
}

// Validate reports whether cfg describes usable thresholds.
func (cfg Config) Validate() error {
	if cfg.MaxLeaf <= 0 {
		return fmt.Errorf("%w: MaxLeaf must be positive", ErrInvalidArgument)
	}
	if cfg.MaxChildren < 2 {
		return fmt.Errorf("%w: MaxChildren must be at least 2", ErrInvalidArgument)
	}
	if cfg.MinChildren < 1 || cfg.MinChildren > cfg.MaxChildren {
		return fmt.Errorf("%w: MinChildren must be in [1, MaxChildren]", ErrInvalidArgument)
	}
	return nil
}
