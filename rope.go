package rope

/*
BSD 3-Clause License

Please refer to the License file in the repository root.
*/

import "github.com/thlorenz/grope/internal/tree"

// Rope stores immutable text in a persistent, balanced B-tree of string
// fragments. The zero value behaves as the empty rope.
type Rope struct {
	tree *tree.Tree
}

// Empty returns the empty rope under the default configuration.
func Empty() Rope {
	return Rope{tree: tree.Empty(tree.WithDefaults())}
}

// New builds a Rope holding s, under the default configuration.
func New(s string) (Rope, error) {
	return NewWithConfig(DefaultConfig(), s)
}

// NewWithConfig builds a Rope holding s, under cfg. Tests that need to
// exercise splitting and rebalancing without multi-kilobyte fixtures should
// use a cfg with small thresholds instead of DefaultConfig.
func NewWithConfig(cfg Config, s string) (Rope, error) {
	if err := cfg.Validate(); err != nil {
		return Rope{}, err
	}
	t, err := tree.New(cfg.toTree(), s)
	if err != nil {
		return Rope{}, err
	}
	return Rope{tree: t}, nil
}

// Len returns the number of runes held by r.
func (r Rope) Len() int {
	if r.tree == nil {
		return 0
	}
	return r.tree.Len()
}

// IsEmpty reports whether r holds no runes.
func (r Rope) IsEmpty() bool {
	return r.tree == nil || r.tree.IsEmpty()
}

// String materializes r's full character sequence as a Go string.
func (r Rope) String() string {
	if r.tree == nil {
		return ""
	}
	return r.tree.String()
}

// CollectLeaves returns r's underlying text fragments, in order.
func (r Rope) CollectLeaves() []string {
	if r.tree == nil {
		return nil
	}
	return r.tree.CollectLeaves()
}

// Check validates every structural invariant r's underlying tree must hold.
// It is intended for tests, not production control flow.
func (r Rope) Check() error {
	if r.tree == nil {
		return nil
	}
	return r.tree.Check()
}

func (r Rope) ensureInit() Rope {
	if r.tree == nil {
		return Empty()
	}
	return r
}
