package tree

import "fmt"

// locate walks from root to the leaf containing absolute index, returning
// the full path (root first, leaf last) and the index local to that leaf
// (§4.3 "getImpl"). At each internal node it wraps the node in a
// childrenCursor and subtracts each visited child's size from the running
// remainder until a child containing the target is found; the first child
// visited at every level is exactly the one §3 defines the node's weight
// over, so the very first comparison at each level is a weight check, and
// the remaining comparisons generalize it across the rest of the fan-out.
//
// locate never mutates the tree; the returned path is the record a caller
// needs to later rebuild the spine from leaf to root (§4.6) or to resume
// traversal (§4.4).
func locate(root node, index int) (path []node, localIndex int, err error) {
	if index < 0 {
		return nil, 0, fmt.Errorf("%w: negative index %d", ErrOutOfRange, index)
	}
	path = make([]node, 0, root.height()+1)
	path = append(path, root)
	cur := root
	remaining := index
	for {
		switch v := cur.(type) {
		case *leafNode:
			tracer().Debugf("locate: reached leaf at local index %d", remaining)
			return path, remaining, nil
		case *internalNode:
			if v.isEmpty() {
				return nil, 0, fmt.Errorf("%w: index %d not found in empty node", ErrOutOfRange, index)
			}
			cursor := newChildrenCursor(v)
			found := false
			for cursor.hasNext() {
				childIdx := cursor.cursor
				child, _ := cursor.nextChild()
				sz := child.size()
				if remaining < sz {
					cur = child
					path = append(path, child)
					found = true
					tracer().Debugf("locate: cursor advanced into child %d/%d", childIdx, len(v.children))
					break
				}
				remaining -= sz
			}
			if !found {
				return nil, 0, fmt.Errorf("%w: index %d not found", ErrOutOfRange, index)
			}
		default:
			return nil, 0, fmt.Errorf("%w: locate encountered an unknown node type", ErrUnexpected)
		}
	}
}

// singleElementLocator is the result of locating exactly one index (§4.4
// "SingleElement variant"). Mutating operations that need one
// locate-then-rebuild round trip use it instead of the general
// HistoryIterator, since they never resume traversal afterwards.
type singleElementLocator struct {
	path       []node
	localIndex int
}

// locateOnce locates index and packages the result for a single
// locate-then-rebuild round trip.
func locateOnce(root node, index int) (*singleElementLocator, error) {
	path, localIndex, err := locate(root, index)
	if err != nil {
		return nil, err
	}
	return &singleElementLocator{path: path, localIndex: localIndex}, nil
}

// leaf returns the leaf this locator found.
func (s *singleElementLocator) leaf() *leafNode {
	return s.path[len(s.path)-1].(*leafNode)
}

// isRoot reports whether the located leaf is itself the tree's root, i.e.
// has no parent to rebuild into.
func (s *singleElementLocator) isRoot() bool {
	return len(s.path) == 1
}

// parent returns the immediate parent of the located leaf.
func (s *singleElementLocator) parent() *internalNode {
	return s.path[len(s.path)-2].(*internalNode)
}

// findParent reports the parent of child within this locator's path, by
// identity. It returns false for the root and for any node not on the path.
func (s *singleElementLocator) findParent(child node) (node, bool) {
	return findParentInPath(s.path, child)
}

func findParentInPath(path []node, child node) (node, bool) {
	for i, n := range path {
		if n == child {
			if i == 0 {
				return nil, false
			}
			return path[i-1], true
		}
	}
	return nil, false
}
