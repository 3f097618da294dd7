package tree

import "fmt"

// Check validates every structural invariant a balanced tree must hold
// (§3, §8) and returns the first violation it finds, or nil.
//
//  1. every leaf's length is at most cfg.MaxLeaf
//  2. every internal node has 1..cfg.MaxChildren children
//  3. every internal node's weight equals the total leaf length under its
//     leftmost child
//  4. every child of an internal node has strictly smaller height than its
//     parent
//  5. every leaf sits at the same depth from the root, i.e. root.height()
//     (§3 "All leaves reside at the same depth")
func Check(root node, cfg Config) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrUnexpected)
	}
	if root.isEmpty() {
		return nil
	}
	if err := checkNode(root, cfg); err != nil {
		return err
	}
	return checkUniformDepth(root, root.height(), 0)
}

// checkUniformDepth walks n, verifying that every leaf reached sits exactly
// depth == rootHeight below the root — the depth-uniformity half of
// "balanced" that checkNode's per-parent height comparison alone does not
// guarantee, since that check only requires strictly-decreasing height
// along a single path, not equal height across siblings.
func checkUniformDepth(n node, rootHeight, depth int) error {
	switch v := n.(type) {
	case *leafNode:
		if depth != rootHeight {
			return fmt.Errorf("%w: leaf at depth %d, want %d (root height)", ErrUnexpected, depth, rootHeight)
		}
		return nil
	case *internalNode:
		for _, c := range v.children {
			if err := checkUniformDepth(c, rootHeight, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown node type", ErrUnexpected)
	}
}

func checkNode(n node, cfg Config) error {
	switch v := n.(type) {
	case *leafNode:
		if !v.leaf.IsLegal(cfg) {
			return fmt.Errorf("%w: leaf of length %d exceeds MaxLeaf=%d", ErrUnexpected, v.leaf.Len(), cfg.MaxLeaf)
		}
		return nil
	case *internalNode:
		if len(v.children) == 0 || len(v.children) > cfg.MaxChildren {
			return fmt.Errorf("%w: internal node has %d children, want 1..%d", ErrUnexpected, len(v.children), cfg.MaxChildren)
		}
		if got, want := v.w, v.children[0].size(); got != want {
			return fmt.Errorf("%w: internal node weight %d does not match leftmost subtree size %d", ErrUnexpected, got, want)
		}
		for i, c := range v.children {
			if c.height() >= v.h {
				return fmt.Errorf("%w: child %d has height %d, want < parent height %d", ErrUnexpected, i, c.height(), v.h)
			}
			if err := checkNode(c, cfg); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown node type", ErrUnexpected)
	}
}
