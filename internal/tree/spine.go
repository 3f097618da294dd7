package tree

import "fmt"

// locator is anything that can answer "who is this node's parent", as
// recorded by the most recent descent (§4.4). Both singleElementLocator and
// HistoryIterator satisfy it.
type locator interface {
	findParent(child node) (node, bool)
}

// rebuildSpine walks upward from the replaced pair (old, next), substituting
// next for old by identity in each successive parent, until it reaches a
// node with no recorded parent — the new root (§4.6).
func rebuildSpine(cfg Config, loc locator, old, next node) (node, error) {
	for {
		parent, ok := loc.findParent(old)
		if !ok {
			tracer().Debugf("spine rebuilt: new root at height %d", next.height())
			return next, nil
		}
		parentNode, ok := parent.(*internalNode)
		if !ok {
			return nil, fmt.Errorf("%w: spine rebuild expected an internal parent", ErrUnexpected)
		}
		replaced, err := replaceChild(cfg, parentNode, old, next)
		if err != nil {
			return nil, err
		}
		old, next = parent, replaced
	}
}

// rebuildSpineForDelete is rebuildSpine's delete variant: whenever next is
// the empty sentinel, it removes the corresponding slot from the parent
// instead of substituting the sentinel into it, collapsing empty nodes as it
// unwinds (§4.6).
func rebuildSpineForDelete(cfg Config, loc locator, old, next node) (node, error) {
	for {
		parent, ok := loc.findParent(old)
		if !ok {
			tracer().Debugf("spine rebuilt: new root at height %d", next.height())
			return next, nil
		}
		parentNode, ok := parent.(*internalNode)
		if !ok {
			return nil, fmt.Errorf("%w: spine rebuild expected an internal parent", ErrUnexpected)
		}
		if next.isEmpty() {
			pos, found := positionOf(parentNode, old)
			if !found {
				return nil, fmt.Errorf("%w: delete spine rebuild could not find child slot", ErrUnexpected)
			}
			collapsed, err := deleteChildAt(cfg, parentNode, pos)
			if err != nil {
				return nil, err
			}
			old, next = parent, collapsed
			continue
		}
		replaced, err := replaceChild(cfg, parentNode, old, next)
		if err != nil {
			return nil, err
		}
		old, next = parent, replaced
	}
}
