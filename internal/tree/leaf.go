package tree

import "fmt"

// Leaf is a bounded fragment of the rope's character sequence.
//
// A leaf is immutable; every operation below returns a new leaf (or, for
// expandableAdd, a sequence of new leaves). lineCount is carried through
// Slice, Add, DeleteAt and an unsplit ExpandableAdd, summed by leaf
// concatenation, and never interpreted by this package — it is reserved
// metadata for collaborators layered on top of the rope. Fragments produced
// by splitIntoLeaves (including a splitting ExpandableAdd) start with a
// lineCount of zero.
type Leaf struct {
	value     []rune
	lineCount int
}

// newLeaf wraps value as a Leaf. It does not copy; callers must pass a
// slice that is not aliased elsewhere.
func newLeaf(value []rune) Leaf {
	return Leaf{value: value}
}

// LeafFromString builds a single leaf from s, without any capacity check.
// Callers that must respect MaxLeaf should use splitIntoLeaves instead.
func LeafFromString(s string) Leaf {
	return newLeaf([]rune(s))
}

// Len returns the number of runes in the leaf.
func (l Leaf) Len() int { return len(l.value) }

// IsEmpty reports whether the leaf holds no runes.
func (l Leaf) IsEmpty() bool { return len(l.value) == 0 }

// IsLegal reports whether the leaf respects the maximum leaf capacity.
func (l Leaf) IsLegal(cfg Config) bool { return l.Len() <= cfg.MaxLeaf }

// At returns the rune at local index i.
func (l Leaf) At(i int) (rune, bool) {
	if i < 0 || i >= len(l.value) {
		return 0, false
	}
	return l.value[i], true
}

// String materializes the leaf's runes as a Go string.
func (l Leaf) String() string { return string(l.value) }

// Slice returns the sub-leaf covering local range [lo, hi).
func (l Leaf) Slice(lo, hi int) (Leaf, error) {
	if lo < 0 || hi < lo || hi > len(l.value) {
		return Leaf{}, fmt.Errorf("%w: leaf slice [%d,%d) out of [0,%d]", ErrOutOfRange, lo, hi, len(l.value))
	}
	out := make([]rune, hi-lo)
	copy(out, l.value[lo:hi])
	return Leaf{value: out, lineCount: l.lineCount}, nil
}

// Add inserts s at local index i, respecting MaxLeaf.
//
// It fails ErrOutOfRange if i is not in [0, Len()], and ErrInvalidArgument if
// the result would exceed cfg.MaxLeaf.
func (l Leaf) Add(cfg Config, i int, s []rune) (Leaf, error) {
	if i < 0 || i > len(l.value) {
		return Leaf{}, fmt.Errorf("%w: leaf insert at %d out of [0,%d]", ErrOutOfRange, i, len(l.value))
	}
	if len(l.value)+len(s) > cfg.MaxLeaf {
		return Leaf{}, fmt.Errorf("%w: leaf insert would exceed MaxLeaf=%d", ErrInvalidArgument, cfg.MaxLeaf)
	}
	out := spliceRunes(l.value, i, s)
	return Leaf{value: out, lineCount: l.lineCount}, nil
}

// ExpandableAdd inserts s at local index i without any capacity check, and
// splits the result into MaxLeaf-sized fragments if it overflows.
//
// It fails ErrOutOfRange if i is not in [0, Len()].
func (l Leaf) ExpandableAdd(cfg Config, i int, s []rune) ([]Leaf, error) {
	if i < 0 || i > len(l.value) {
		return nil, fmt.Errorf("%w: leaf insert at %d out of [0,%d]", ErrOutOfRange, i, len(l.value))
	}
	out := spliceRunes(l.value, i, s)
	if len(out) <= cfg.MaxLeaf {
		return []Leaf{{value: out, lineCount: l.lineCount}}, nil
	}
	return splitIntoLeaves(cfg, out), nil
}

// DeleteAt removes the rune at local index i.
//
// It fails ErrOutOfRange if i is not in [0, Len()).
func (l Leaf) DeleteAt(i int) (Leaf, error) {
	if i < 0 || i >= len(l.value) {
		return Leaf{}, fmt.Errorf("%w: leaf delete at %d out of [0,%d)", ErrOutOfRange, i, len(l.value))
	}
	out := make([]rune, 0, len(l.value)-1)
	out = append(out, l.value[:i]...)
	out = append(out, l.value[i+1:]...)
	return Leaf{value: out, lineCount: l.lineCount}, nil
}

// concatLeaves returns a leaf holding a's runes followed by b's.
func concatLeaves(a, b Leaf) Leaf {
	out := make([]rune, 0, len(a.value)+len(b.value))
	out = append(out, a.value...)
	out = append(out, b.value...)
	return Leaf{value: out, lineCount: a.lineCount + b.lineCount}
}

// spliceRunes returns a new slice with s inserted at index i of src.
func spliceRunes(src []rune, i int, s []rune) []rune {
	out := make([]rune, 0, len(src)+len(s))
	out = append(out, src[:i]...)
	out = append(out, s...)
	out = append(out, src[i:]...)
	return out
}

// splitIntoLeaves partitions value into consecutive fragments of at most
// cfg.MaxLeaf runes, preserving order. Every fragment produced is legal.
func splitIntoLeaves(cfg Config, value []rune) []Leaf {
	if len(value) == 0 {
		return []Leaf{{}}
	}
	leaves := make([]Leaf, 0, (len(value)+cfg.MaxLeaf-1)/cfg.MaxLeaf)
	for start := 0; start < len(value); start += cfg.MaxLeaf {
		end := start + cfg.MaxLeaf
		if end > len(value) {
			end = len(value)
		}
		frag := make([]rune, end-start)
		copy(frag, value[start:end])
		leaves = append(leaves, Leaf{value: frag})
	}
	return leaves
}
