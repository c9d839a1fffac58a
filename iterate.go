package wbtree

import "iter"

// InOrder returns an iterator over all nodes of the subtree rooted at root,
// in comparator order. A nil root yields nothing.
func InOrder[K any](root Node[K]) iter.Seq[Node[K]] {
	return func(yield func(Node[K]) bool) {
		for p := FirstInOrder(root); p != nil; {
			if !yield(p.Tip()) {
				return
			}
			if !p.HasNext() {
				return
			}
			p, _ = p.Next()
		}
	}
}

// Keys returns an iterator over all keys of the subtree rooted at root, in
// comparator order.
func Keys[K any](root Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range InOrder(root) {
			if !yield(n.Key()) {
				return
			}
		}
	}
}
