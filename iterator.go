package rope

import "github.com/thlorenz/grope/internal/tree"

// CharIterator walks a Rope's characters in order, starting at a chosen
// absolute index. Under the hood each character is found by a fresh descent
// from the root; the descent path of the character located by the latest
// HasNext is kept only until the matching Next.
type CharIterator struct {
	inner *tree.HistoryIterator
}

// Iterator returns a CharIterator over r's characters, starting at absolute
// index from.
func (r Rope) Iterator(from int) (CharIterator, error) {
	r = r.ensureInit()
	inner, err := r.tree.Iterator(from)
	if err != nil {
		return CharIterator{}, err
	}
	tracer().Debugf("rope: starting character iterator at index %d", from)
	return CharIterator{inner: inner}, nil
}

// HasNext reports whether Next would succeed.
func (it CharIterator) HasNext() bool {
	if it.inner == nil {
		return false
	}
	return it.inner.HasNext()
}

// Next returns the next character and advances the iterator.
func (it CharIterator) Next() (rune, error) {
	if it.inner == nil {
		return 0, ErrUnexpected
	}
	return it.inner.Next()
}

// ForEach walks every remaining character from it, calling fn with its
// absolute index and value, stopping early if fn returns false.
func (r Rope) ForEach(from int, fn func(index int, ch rune) bool) error {
	it, err := r.Iterator(from)
	if err != nil {
		return err
	}
	idx := from
	for it.HasNext() {
		ch, err := it.Next()
		if err != nil {
			return err
		}
		if !fn(idx, ch) {
			return nil
		}
		idx++
	}
	return nil
}
