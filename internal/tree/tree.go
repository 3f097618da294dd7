package tree

import "fmt"

// Tree is the persistent, balanced B-tree of string leaves that backs a
// rope (C7). Every mutating method returns a new Tree sharing untouched
// structure with its receiver; the receiver itself is never modified.
type Tree struct {
	cfg  Config
	root node
}

// Empty returns the empty tree under cfg.
func Empty(cfg Config) *Tree {
	return &Tree{cfg: cfg, root: emptyNode}
}

// New builds a tree holding s, split into MaxLeaf-sized leaves and merged
// into a balanced shape (C8).
func New(cfg Config, s string) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	chars := []rune(s)
	if len(chars) == 0 {
		return Empty(cfg), nil
	}
	root, err := buildFromRunes(cfg, chars)
	if err != nil {
		return nil, err
	}
	return &Tree{cfg: cfg, root: root}, nil
}

func buildFromRunes(cfg Config, chars []rune) (node, error) {
	leaves := splitIntoLeaves(cfg, chars)
	return buildFromLeaves(cfg, leaves)
}

func buildFromLeaves(cfg Config, leaves []Leaf) (node, error) {
	nodes := make([]node, len(leaves))
	for i, l := range leaves {
		nodes[i] = &leafNode{leaf: l}
	}
	return merge(cfg, nodes)
}

// Config returns the structural configuration this tree was built with.
func (t *Tree) Config() Config { return t.cfg }

// Len returns the number of runes held by the tree.
func (t *Tree) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.size()
}

// IsEmpty reports whether the tree holds no runes.
func (t *Tree) IsEmpty() bool {
	return t.root == nil || t.root.isEmpty()
}

// Height returns the height of the tree's root, used by tests and
// invariant checks.
func (t *Tree) Height() int { return t.root.height() }

// Check validates every structural invariant of §3/§8 and returns the
// first violation found, or nil if the tree is balanced.
func (t *Tree) Check() error {
	return Check(t.root, t.cfg)
}

func (t *Tree) withRoot(root node) *Tree {
	return &Tree{cfg: t.cfg, root: root}
}

// Get returns the rune at absolute index i.
func (t *Tree) Get(i int) (rune, bool) {
	if i < 0 || i >= t.Len() {
		return 0, false
	}
	path, localIndex, err := locate(t.root, i)
	if err != nil {
		return 0, false
	}
	leaf, ok := path[len(path)-1].(*leafNode)
	if !ok {
		return 0, false
	}
	return leaf.leaf.At(localIndex)
}

// IndexOf returns the absolute index of the first occurrence of c, scanning
// leaves left to right, or -1 if c does not occur.
func (t *Tree) IndexOf(c rune) int {
	idx := 0
	for _, leaf := range collectNonEmptyLeaves(t.root) {
		for _, r := range leaf.value {
			if r == c {
				return idx
			}
			idx++
		}
	}
	return -1
}

// CollectLeaves returns the tree's leaf fragments, in order, materialized
// as strings.
func (t *Tree) CollectLeaves() []string {
	leaves := collectNonEmptyLeaves(t.root)
	out := make([]string, len(leaves))
	for i, l := range leaves {
		out[i] = l.String()
	}
	return out
}

// String materializes the tree's full character sequence.
func (t *Tree) String() string {
	var out []rune
	for _, leaf := range collectNonEmptyLeaves(t.root) {
		out = append(out, leaf.value...)
	}
	return string(out)
}

// Iterator returns a history-aware iterator over the tree's characters,
// starting at absolute index from.
func (t *Tree) Iterator(from int) (*HistoryIterator, error) {
	return newHistoryIterator(t.root, t.Len(), from)
}

// Insert returns a new tree with s inserted at absolute index i (§4.5). i
// may equal Len() to append. Inserting into the empty tree requires i == 0.
func (t *Tree) Insert(i int, s string) (*Tree, error) {
	if i < 0 || i > t.Len() {
		return nil, fmt.Errorf("%w: insert at %d out of [0,%d]", ErrOutOfRange, i, t.Len())
	}
	chars := []rune(s)
	if len(chars) == 0 {
		return t, nil
	}
	if t.IsEmpty() {
		if i != 0 {
			return nil, fmt.Errorf("%w: insert into empty tree requires index 0", ErrOutOfRange)
		}
		root, err := buildFromRunes(t.cfg, chars)
		if err != nil {
			return nil, err
		}
		return t.withRoot(root), nil
	}

	appendAtEnd := i == t.Len()
	locateIndex := i
	if appendAtEnd {
		locateIndex = i - 1
	}
	loc, err := locateOnce(t.root, locateIndex)
	if err != nil {
		return nil, err
	}
	leaf := loc.leaf()
	localIndex := loc.localIndex
	if appendAtEnd {
		localIndex++
	}

	// Fast path: the leaf absorbs s without exceeding MaxLeaf.
	if leaf.leaf.Len()+len(chars) <= t.cfg.MaxLeaf {
		newLeaf, err := leaf.leaf.Add(t.cfg, localIndex, chars)
		if err != nil {
			return nil, err
		}
		root, err := rebuildSpine(t.cfg, loc, node(leaf), node(&leafNode{leaf: newLeaf}))
		if err != nil {
			return nil, err
		}
		return t.withRoot(root), nil
	}

	// The leaf must split into several fragments.
	fragments, err := leaf.leaf.ExpandableAdd(t.cfg, localIndex, chars)
	if err != nil {
		return nil, err
	}
	fragNodes := make([]node, len(fragments))
	for k, f := range fragments {
		fragNodes[k] = &leafNode{leaf: f}
	}

	if loc.isRoot() {
		root, err := merge(t.cfg, fragNodes)
		if err != nil {
			return nil, err
		}
		return t.withRoot(root), nil
	}

	parent := loc.parent()
	pos, found := positionOf(parent, node(leaf))
	assert(found, "insert: leaf is not a child of the parent its own locate path just recorded")

	var newParent *internalNode
	if len(parent.children)-1+len(fragNodes) <= t.cfg.MaxChildren {
		children := make([]node, 0, len(parent.children)-1+len(fragNodes))
		children = append(children, parent.children[:pos]...)
		children = append(children, fragNodes...)
		children = append(children, parent.children[pos+1:]...)
		newParent, err = createParent(t.cfg, children...)
		if err != nil {
			return nil, err
		}
	} else {
		merged, err := merge(t.cfg, fragNodes)
		if err != nil {
			return nil, err
		}
		newParent, err = setChild(t.cfg, parent, pos, merged)
		if err != nil {
			return nil, err
		}
	}

	root, err := rebuildSpine(t.cfg, loc, node(parent), node(newParent))
	if err != nil {
		return nil, err
	}
	return t.withRoot(root), nil
}

// DeleteAt returns a new tree with the rune at absolute index i removed.
func (t *Tree) DeleteAt(i int) (*Tree, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("%w: delete at %d out of [0,%d)", ErrOutOfRange, i, t.Len())
	}
	loc, err := locateOnce(t.root, i)
	if err != nil {
		return nil, err
	}
	leaf := loc.leaf()
	newLeaf, err := leaf.leaf.DeleteAt(loc.localIndex)
	if err != nil {
		return nil, err
	}
	var replacement node
	if newLeaf.IsEmpty() {
		replacement = emptyNode
	} else {
		replacement = &leafNode{leaf: newLeaf}
	}
	if loc.isRoot() {
		return t.withRoot(replacement), nil
	}
	root, err := rebuildSpineForDelete(t.cfg, loc, node(leaf), replacement)
	if err != nil {
		return nil, err
	}
	if root == nil || root.isEmpty() {
		root = emptyNode
	}
	return t.withRoot(root), nil
}

// SubRope returns a new tree holding the half-open range [lo, hi) of t. Per
// §4.5, subRope(i, i) is the empty tree for any valid i.
func (t *Tree) SubRope(lo, hi int) (*Tree, error) {
	length := t.Len()
	if lo < 0 || hi < lo || hi > length {
		return nil, fmt.Errorf("%w: subRope [%d,%d) out of [0,%d]", ErrOutOfRange, lo, hi, length)
	}
	if lo == hi {
		return Empty(t.cfg), nil
	}
	if leaf, ok := t.root.(*leafNode); ok {
		sliced, err := leaf.leaf.Slice(lo, hi)
		if err != nil {
			return nil, err
		}
		return t.withRoot(&leafNode{leaf: sliced}), nil
	}

	loPath, loLocal, err := locate(t.root, lo)
	if err != nil {
		return nil, err
	}
	hiPath, hiLocal, err := locate(t.root, hi-1)
	if err != nil {
		return nil, err
	}
	loLeaf := loPath[len(loPath)-1].(*leafNode)
	hiLeaf := hiPath[len(hiPath)-1].(*leafNode)

	if loLeaf == hiLeaf {
		sliced, err := loLeaf.leaf.Slice(loLocal, hiLocal+1)
		if err != nil {
			return nil, err
		}
		return t.withRoot(&leafNode{leaf: sliced}), nil
	}

	lcaPos := lcaIndex(loPath, hiPath)
	lca := loPath[lcaPos]
	leaves := collectNonEmptyLeaves(lca)

	loIdx := indexOfLeafByIdentity(leaves, loLeaf, lca)
	hiIdx := indexOfLeafByIdentity(leaves, hiLeaf, lca)
	if loIdx < 0 || hiIdx < 0 || loIdx > hiIdx {
		return nil, fmt.Errorf("%w: subRope could not locate boundary leaves", ErrUnexpected)
	}

	newLeaves := make([]Leaf, 0, hiIdx-loIdx+1)
	for k := loIdx; k <= hiIdx; k++ {
		l := leaves[k]
		switch {
		case k == loIdx && k == hiIdx:
			sliced, err := l.Slice(loLocal, hiLocal+1)
			if err != nil {
				return nil, err
			}
			newLeaves = append(newLeaves, sliced)
		case k == loIdx:
			sliced, err := l.Slice(loLocal, l.Len())
			if err != nil {
				return nil, err
			}
			newLeaves = append(newLeaves, sliced)
		case k == hiIdx:
			sliced, err := l.Slice(0, hiLocal+1)
			if err != nil {
				return nil, err
			}
			newLeaves = append(newLeaves, sliced)
		default:
			newLeaves = append(newLeaves, l)
		}
	}

	root, err := buildFromLeaves(t.cfg, newLeaves)
	if err != nil {
		return nil, err
	}
	return t.withRoot(root), nil
}

// RemoveRange returns a new tree with [lo, hi) removed (§4.5).
func (t *Tree) RemoveRange(lo, hi int) (*Tree, error) {
	length := t.Len()
	if lo < 0 || hi < lo || hi > length {
		return nil, fmt.Errorf("%w: removeRange [%d,%d) out of [0,%d]", ErrOutOfRange, lo, hi, length)
	}
	if lo == hi {
		return t, nil
	}
	if lo == 0 {
		return t.SubRope(hi, length)
	}
	left, err := t.SubRope(0, lo)
	if err != nil {
		return nil, err
	}
	right, err := t.SubRope(hi, length)
	if err != nil {
		return nil, err
	}
	return left.Concat(right)
}

// Cut removes [lo, hi) and returns both the resulting tree and the removed
// substring in one call.
func (t *Tree) Cut(lo, hi int) (*Tree, string, error) {
	removed, err := t.SubRope(lo, hi)
	if err != nil {
		return nil, "", err
	}
	rest, err := t.RemoveRange(lo, hi)
	if err != nil {
		return nil, "", err
	}
	return rest, removed.String(), nil
}

// Concat returns a new tree holding t's characters followed by other's
// (§4.5). Concatenating with an empty tree returns the non-empty operand
// unchanged. When the two roots differ in height, the shorter side is
// grafted into the taller one (§4.1's concatNodes) rather than simply
// wrapped, so every leaf still ends up at the same depth; height grows by
// at most one, exactly when grafting overflows a level.
func (t *Tree) Concat(other *Tree) (*Tree, error) {
	if other == nil || other.IsEmpty() {
		return t, nil
	}
	if t.IsEmpty() {
		return other, nil
	}
	left, right, err := concatNodes(t.cfg, t.root, other.root)
	if err != nil {
		return nil, err
	}
	if right == nil {
		tracer().Debugf("concat: grafted into a single root of height %d", left.height())
		return t.withRoot(left), nil
	}
	root, err := createParent(t.cfg, left, right)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("concat: grafting overflowed, grew root to height %d", root.height())
	return t.withRoot(root), nil
}

// ConcatAll folds Concat left to right over trees, skipping empty operands.
func ConcatAll(cfg Config, trees ...*Tree) (*Tree, error) {
	result := Empty(cfg)
	for _, tr := range trees {
		next, err := result.Concat(tr)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

func lcaIndex(a, b []node) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	last := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			break
		}
		last = i
	}
	return last
}

// indexOfLeafByIdentity returns the position of target within leaves, which
// were collected in order from lca; it re-walks lca alongside leaves to
// compare leaf *nodes* by identity rather than by value, since two leaves
// can hold equal content without being the same node.
func indexOfLeafByIdentity(leaves []Leaf, target *leafNode, lca node) int {
	idx := 0
	found := -1
	var walk func(node)
	walk = func(n node) {
		if n == nil || n.isEmpty() || found >= 0 {
			return
		}
		switch v := n.(type) {
		case *leafNode:
			if v == target {
				found = idx
			}
			idx++
		case *internalNode:
			for _, c := range v.children {
				walk(c)
			}
		}
	}
	walk(lca)
	return found
}
