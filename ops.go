package rope

import "github.com/thlorenz/grope/internal/tree"

// Get returns the rune at absolute index i and whether i was in range.
func (r Rope) Get(i int) (rune, bool) {
	r = r.ensureInit()
	return r.tree.Get(i)
}

// IndexOf returns the absolute index of the first occurrence of c, or -1 if
// c does not occur in r.
func (r Rope) IndexOf(c rune) int {
	r = r.ensureInit()
	return r.tree.IndexOf(c)
}

// Insert returns a new Rope with s inserted at absolute index i. i may
// equal r.Len() to append.
func (r Rope) Insert(i int, s string) (Rope, error) {
	r = r.ensureInit()
	t, err := r.tree.Insert(i, s)
	if err != nil {
		return Rope{}, err
	}
	return Rope{tree: t}, nil
}

// Delete returns a new Rope with the rune at absolute index i removed.
func (r Rope) Delete(i int) (Rope, error) {
	r = r.ensureInit()
	t, err := r.tree.DeleteAt(i)
	if err != nil {
		return Rope{}, err
	}
	return Rope{tree: t}, nil
}

// SubRope returns the half-open range [lo, hi) of r as a new Rope.
// SubRope(i, i) is the empty rope for any valid i.
func (r Rope) SubRope(lo, hi int) (Rope, error) {
	r = r.ensureInit()
	t, err := r.tree.SubRope(lo, hi)
	if err != nil {
		return Rope{}, err
	}
	return Rope{tree: t}, nil
}

// RemoveRange returns a new Rope with [lo, hi) removed.
func (r Rope) RemoveRange(lo, hi int) (Rope, error) {
	r = r.ensureInit()
	t, err := r.tree.RemoveRange(lo, hi)
	if err != nil {
		return Rope{}, err
	}
	return Rope{tree: t}, nil
}

// Cut removes [lo, hi) from r and returns both the resulting Rope and the
// removed substring in one call, for the common "cut selection" editing
// operation. It is composed of SubRope followed by RemoveRange.
func (r Rope) Cut(lo, hi int) (Rope, string, error) {
	r = r.ensureInit()
	t, removed, err := r.tree.Cut(lo, hi)
	if err != nil {
		return Rope{}, "", err
	}
	return Rope{tree: t}, removed, nil
}

// Concat returns a new Rope holding r's characters followed by each of
// others', in order. Empty operands are skipped.
func (r Rope) Concat(others ...Rope) (Rope, error) {
	r = r.ensureInit()
	trees := make([]*tree.Tree, 0, len(others)+1)
	trees = append(trees, r.tree)
	for _, other := range others {
		trees = append(trees, other.ensureInit().tree)
	}
	t, err := tree.ConcatAll(r.tree.Config(), trees...)
	if err != nil {
		return Rope{}, err
	}
	result := Rope{tree: t}
	return result, nil
}
