package tree

import "fmt"

// HistoryIterator is the history-aware descent iterator (§4.4, C6): it
// wraps locate, records the path of the most recent successful lookup, and
// exposes that path as a findParent lookup so a caller driving forward
// traversal can reconstruct any visited ancestor without re-walking from
// root. It reports exhaustion once nextIndex reaches total and then stays
// CLOSED.
type HistoryIterator struct {
	root      node
	total     int
	nextIndex int
	closed    bool
	pending   *pendingChar
}

type pendingChar struct {
	ch   rune
	path []node
}

// newHistoryIterator starts a history-aware iterator at absolute index
// from, over a tree of the given total length.
func newHistoryIterator(root node, total, from int) (*HistoryIterator, error) {
	if from < 0 || from > total {
		return nil, fmt.Errorf("%w: iterator start %d out of [0,%d]", ErrOutOfRange, from, total)
	}
	return &HistoryIterator{root: root, total: total, nextIndex: from}, nil
}

// HasNext reports whether Next would succeed, locating the next character
// if it hasn't already been located.
func (it *HistoryIterator) HasNext() bool {
	if it.closed {
		return false
	}
	if it.pending != nil {
		return true
	}
	if it.nextIndex >= it.total {
		it.closed = true
		tracer().Debugf("HistoryIterator: closed at index %d", it.nextIndex)
		return false
	}
	path, localIndex, err := locate(it.root, it.nextIndex)
	if err != nil {
		it.closed = true
		return false
	}
	leaf, ok := path[len(path)-1].(*leafNode)
	if !ok {
		it.closed = true
		return false
	}
	ch, ok := leaf.leaf.At(localIndex)
	if !ok {
		it.closed = true
		return false
	}
	it.pending = &pendingChar{ch: ch, path: path}
	return true
}

// Next returns the character located by the most recent successful HasNext
// and advances the iterator. It fails ErrUnexpected if called without one,
// since that indicates a caller bug, not bad input.
func (it *HistoryIterator) Next() (rune, error) {
	if it.pending == nil {
		return 0, fmt.Errorf("%w: next called without a successful hasNext", ErrUnexpected)
	}
	ch := it.pending.ch
	it.pending = nil
	it.nextIndex++
	return ch, nil
}

// findParent reports the parent of child within the path of the most
// recently located character, by identity.
func (it *HistoryIterator) findParent(child node) (node, bool) {
	if it.pending == nil {
		return nil, false
	}
	return findParentInPath(it.pending.path, child)
}
