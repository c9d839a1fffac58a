package wbtree

// BalancePolicy restructures subtrees after a local change. Implementations
// must produce results whose in-order sequence is identical to their inputs;
// this contract is what decouples the configured policy from the tree
// contents.
type BalancePolicy[K any] interface {
	// Balance builds a locally rebalanced subtree with in-order sequence
	// left, source, right.
	Balance(f NodeFactory[K], source Node[K], left, right Node[K]) Node[K]
	// Combine merges two already-balanced subtrees, every key of left
	// comparing smaller than every key of right, into one balanced subtree
	// with in-order sequence left then right. Returns nil when both inputs
	// are nil.
	Combine(f NodeFactory[K], left, right Node[K]) Node[K]
}

const (
	// SingleRotateRatio is Adams' primary weight-balance ratio: a subtree
	// gets rotated when one child holds at least this many times the
	// entries of the other.
	SingleRotateRatio = 4
	// SecondRotateRatio decides whether the child being promoted by a
	// rotation is itself skewed enough to need a secondary rotation first.
	SecondRotateRatio = 2
)

// NoRebalance performs no restructuring. Balance defers to the factory
// directly; Combine promotes the larger side's root and recursively folds
// the remainder into the facing child, O(n) worst case. Intended for
// bulk-build scenarios where the shape is already correct.
type NoRebalance[K any] struct{}

// Balance rebuilds the node without restructuring.
func (NoRebalance[K]) Balance(f NodeFactory[K], source Node[K], left, right Node[K]) Node[K] {
	return f.New(source, left, right)
}

// Combine concatenates two subtrees by root promotion.
func (p NoRebalance[K]) Combine(f NodeFactory[K], left, right Node[K]) Node[K] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	if countOf(left) > countOf(right) {
		return f.New(left, left.Child(Left), p.Combine(f, left.Child(Right), right))
	}
	return f.New(right, p.Combine(f, left, right.Child(Left)), right.Child(Right))
}

// SingleRotation is Adams' weight-balanced-tree policy. It assumes the
// child counts differ from balance by at most one insertion or deletion and
// restores the invariant with a single rotation, optionally preceded by a
// secondary rotation of the promoted child. Balance is O(1), Combine is
// O(log n).
//
// The ratios are tunable, but the 4/2 defaults are load-bearing: they are
// the empirically validated pair for this rebalancing scheme.
type SingleRotation[K any] struct {
	RotateRatio int64
	SecondRatio int64
}

// NewSingleRotation returns the policy with the default 4/2 ratios.
func NewSingleRotation[K any]() SingleRotation[K] {
	return SingleRotation[K]{RotateRatio: SingleRotateRatio, SecondRatio: SecondRotateRatio}
}

// Balance restores the weight-balance invariant after one local change.
func (p SingleRotation[K]) Balance(f NodeFactory[K], source Node[K], left, right Node[K]) Node[K] {
	cl, cr := countOf(left), countOf(right)
	if cl+cr > 1 {
		switch {
		case cr >= p.RotateRatio*cl:
			return p.rotateLeft(f, source, left, right)
		case cl >= p.RotateRatio*cr:
			return p.rotateRight(f, source, left, right)
		}
	}
	return f.New(source, left, right)
}

// rotateLeft promotes the right child to subtree root. When that child's
// own left subtree dominates, it is rotated out of the way first so the
// result does not skew right back.
func (p SingleRotation[K]) rotateLeft(f NodeFactory[K], source Node[K], left, right Node[K]) Node[K] {
	assert(right != nil, "rotate left: nil right child")
	rl, rr := right.Child(Left), right.Child(Right)
	if countOf(rl) >= p.SecondRatio*countOf(rr) {
		assert(rl != nil, "rotate left: secondary rotation with nil pivot")
		return f.New(rl,
			f.New(source, left, rl.Child(Left)),
			f.New(right, rl.Child(Right), rr))
	}
	return f.New(right, f.New(source, left, rl), rr)
}

// rotateRight promotes the left child to subtree root, mirror of rotateLeft.
func (p SingleRotation[K]) rotateRight(f NodeFactory[K], source Node[K], left, right Node[K]) Node[K] {
	assert(left != nil, "rotate right: nil left child")
	ll, lr := left.Child(Left), left.Child(Right)
	if countOf(lr) >= p.SecondRatio*countOf(ll) {
		assert(lr != nil, "rotate right: secondary rotation with nil pivot")
		return f.New(lr,
			f.New(left, ll, lr.Child(Left)),
			f.New(source, lr.Child(Right), right))
	}
	return f.New(left, ll, f.New(source, lr, right))
}

// Combine extracts the in-order extreme entry of the larger side and
// re-balances it in as the new root.
func (p SingleRotation[K]) Combine(f NodeFactory[K], left, right Node[K]) Node[K] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	if countOf(left) >= countOf(right) {
		root, rest := extractExtreme[K](p, f, left, Right)
		return p.Balance(f, root, rest, right)
	}
	root, rest := extractExtreme[K](p, f, right, Left)
	return p.Balance(f, root, left, rest)
}

// extractExtreme removes the side-most node of a subtree and returns it
// together with the remaining subtree, rebalancing the unwound spine
// through policy.
func extractExtreme[K any](policy BalancePolicy[K], f NodeFactory[K], node Node[K], side Side) (extreme, remaining Node[K]) {
	if node.Child(side) == nil {
		return node, node.Child(side.Other())
	}
	extreme, rest := extractExtreme(policy, f, node.Child(side), side)
	if side == Right {
		return extreme, policy.Balance(f, node, node.Child(Left), rest)
	}
	return extreme, policy.Balance(f, node, rest, node.Child(Right))
}

// FullRebalance makes no assumption about pre-existing balance. Balance
// walks down the heavier side until the ratio condition is satisfied,
// inserting the lighter side at the extreme position, and falls back to
// single rotations once counts are close. Both Balance and Combine are
// O(log n).
type FullRebalance[K any] struct {
	Single SingleRotation[K]
}

// NewFullRebalance returns the policy with the default single-rotation
// fallback.
func NewFullRebalance[K any]() FullRebalance[K] {
	return FullRebalance[K]{Single: NewSingleRotation[K]()}
}

// Balance joins two subtrees of arbitrary relative weight around source.
func (p FullRebalance[K]) Balance(f NodeFactory[K], source Node[K], left, right Node[K]) Node[K] {
	switch {
	case left == nil:
		return p.insertExtreme(f, source, right, Left)
	case right == nil:
		return p.insertExtreme(f, source, left, Right)
	}
	cl, cr := left.Count(), right.Count()
	switch {
	case cr >= p.Single.RotateRatio*cl:
		return p.Single.Balance(f, right,
			p.Balance(f, source, left, right.Child(Left)),
			right.Child(Right))
	case cl >= p.Single.RotateRatio*cr:
		return p.Single.Balance(f, left,
			left.Child(Left),
			p.Balance(f, source, left.Child(Right), right))
	}
	return f.New(source, left, right)
}

// insertExtreme inserts entry as the side-most node of the subtree.
func (p FullRebalance[K]) insertExtreme(f NodeFactory[K], entry Node[K], root Node[K], side Side) Node[K] {
	if root == nil {
		return f.New(entry, nil, nil)
	}
	if side == Left {
		return p.Single.Balance(f, root,
			p.insertExtreme(f, entry, root.Child(Left), Left),
			root.Child(Right))
	}
	return p.Single.Balance(f, root,
		root.Child(Left),
		p.insertExtreme(f, entry, root.Child(Right), Right))
}

// Combine merges two balanced subtrees of arbitrary relative weight.
func (p FullRebalance[K]) Combine(f NodeFactory[K], left, right Node[K]) Node[K] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	if countOf(left) >= countOf(right) {
		root, rest := extractExtreme[K](p, f, left, Right)
		return p.Balance(f, root, rest, right)
	}
	root, rest := extractExtreme[K](p, f, right, Left)
	return p.Balance(f, root, left, rest)
}
