package wbtree

// Side selects one of the two child slots of a binary node.
type Side int8

const (
	// Left is the side of keys comparing smaller.
	Left Side = iota
	// Right is the side of keys comparing greater.
	Right
)

// Other returns the opposite side.
func (s Side) Other() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	assert(false, "wbtree: invalid side")
	return s
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Comparator is a total order over keys. A comparator must stay consistent
// for the lifetime of a tree; changing it mid-lifetime corrupts the search
// invariant.
type Comparator[K any] func(a, b K) int

// Node is the minimal shape every tree vertex must expose to the engine.
//
// Nodes are immutable once constructed. A nil Node denotes an absent
// subtree; Child returns nil for an absent child. Count is the number of
// entries in the subtree rooted at the node, i.e.
//
//	n.Count() == 1 + count(n.Child(Left)) + count(n.Child(Right))
//
// with count(nil) == 0. Balance policies rely on this invariant.
type Node[K any] interface {
	Key() K
	Child(side Side) Node[K]
	Count() int64
}

// NodeFactory builds new nodes during mutation and rebalancing. New must
// preserve source's key/value payload while replacing its children. It is
// the single choke point through which every structural change passes,
// which keeps structural sharing auditable.
type NodeFactory[K any] interface {
	New(source Node[K], left, right Node[K]) Node[K]
}

func countOf[K any](n Node[K]) int64 {
	if n == nil {
		return 0
	}
	return n.Count()
}

// CountedNode is the default node implementation: a bare key with a cached
// subtree count. Front-ends with richer payloads (values, multiplicities)
// supply their own Node and NodeFactory instead.
type CountedNode[K any] struct {
	key   K
	left  Node[K]
	right Node[K]
	count int64
}

// NewCountedNode builds a node over the given children, caching the subtree
// count.
func NewCountedNode[K any](key K, left, right Node[K]) *CountedNode[K] {
	return &CountedNode[K]{
		key:   key,
		left:  left,
		right: right,
		count: 1 + countOf(left) + countOf(right),
	}
}

// Key returns the node's key.
func (n *CountedNode[K]) Key() K { return n.key }

// Child returns the child on the given side, or nil.
func (n *CountedNode[K]) Child(side Side) Node[K] {
	if side == Left {
		return n.left
	}
	return n.right
}

// Count returns the cached subtree entry count.
func (n *CountedNode[K]) Count() int64 { return n.count }

// CountedFactory is the NodeFactory for CountedNode trees.
type CountedFactory[K any] struct{}

// New rebuilds source with the given children, recomputing the count cache.
func (CountedFactory[K]) New(source Node[K], left, right Node[K]) Node[K] {
	assert(source != nil, "node factory: source must not be nil")
	return NewCountedNode(source.Key(), left, right)
}
