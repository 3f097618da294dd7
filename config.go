package rope

import "github.com/thlorenz/grope/internal/tree"

// Config carries the tunable structural thresholds of a Rope: the maximum
// number of runes per leaf, and the minimum/maximum fan-out of an internal
// node. The zero value is not valid; use DefaultConfig or populate every
// field and call Validate.
type Config struct {
	MaxLeaf     int
	MinChildren int
	MaxChildren int
}

// DefaultConfig returns the thresholds every top-level constructor uses
// unless NewWithConfig is called explicitly: MaxLeaf=2048, MinChildren=4,
// MaxChildren=8.
func DefaultConfig() Config {
	d := tree.WithDefaults()
	return Config{MaxLeaf: d.MaxLeaf, MinChildren: d.MinChildren, MaxChildren: d.MaxChildren}
}

// Validate reports whether cfg describes usable thresholds.
func (cfg Config) Validate() error {
	return cfg.toTree().Validate()
}

func (cfg Config) toTree() tree.Config {
	return tree.Config{MaxLeaf: cfg.MaxLeaf, MinChildren: cfg.MinChildren, MaxChildren: cfg.MaxChildren}
}
