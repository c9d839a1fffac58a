package wbtree

import "fmt"

// Check validates the structural invariants of the subtree rooted at root:
// every node's count cache must equal 1 plus the child counts, and an
// in-order traversal must yield keys in strictly increasing comparator
// order.
//
// The checker is intentionally strict and meant for tests and debugging; it
// visits every node.
func Check[K any](cmp Comparator[K], root Node[K]) error {
	if cmp == nil {
		return fmt.Errorf("%w: nil comparator", ErrInvariantViolated)
	}
	_, err := checkNode(cmp, root, nil, nil)
	return err
}

func checkNode[K any](cmp Comparator[K], n Node[K], lower, upper *K) (int64, error) {
	if n == nil {
		return 0, nil
	}
	key := n.Key()
	if lower != nil && cmp(key, *lower) <= 0 {
		return 0, fmt.Errorf("%w: key %v not above left bound %v",
			ErrInvariantViolated, key, *lower)
	}
	if upper != nil && cmp(key, *upper) >= 0 {
		return 0, fmt.Errorf("%w: key %v not below right bound %v",
			ErrInvariantViolated, key, *upper)
	}
	lc, err := checkNode(cmp, n.Child(Left), lower, &key)
	if err != nil {
		return 0, err
	}
	rc, err := checkNode(cmp, n.Child(Right), &key, upper)
	if err != nil {
		return 0, err
	}
	if n.Count() != 1+lc+rc {
		return 0, fmt.Errorf("%w: node %v caches count %d, subtree holds %d",
			ErrInvariantViolated, key, n.Count(), 1+lc+rc)
	}
	return n.Count(), nil
}
