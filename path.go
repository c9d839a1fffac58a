package wbtree

// Path is an immutable, singly-linked chain of child choices from some root
// down to a tip node. Extending a path never modifies the prefix, so paths
// into the same snapshot may be branched and retained freely.
type Path[K any] struct {
	tip    Node[K]
	side   Side // side taken from the prefix tip to reach tip; meaningless at the root
	prefix *Path[K]
}

// NewPath returns the trivial path consisting of just the root.
func NewPath[K any](root Node[K]) *Path[K] {
	assert(root != nil, "path: root must not be nil")
	return &Path[K]{tip: root}
}

// Extension returns the path reached by following side from p's tip.
// p's tip must have a child on that side.
func Extension[K any](p *Path[K], side Side) *Path[K] {
	assert(p != nil, "path extension: nil path")
	child := p.tip.Child(side)
	assert(child != nil, "path extension: tip has no child on requested side")
	return &Path[K]{tip: child, side: side, prefix: p}
}

// Tip returns the node the path leads to.
func (p *Path[K]) Tip() Node[K] { return p.tip }

// HasPrefix reports whether the path is longer than a bare root.
func (p *Path[K]) HasPrefix() bool { return p.prefix != nil }

// Prefix returns the path to the tip's parent, or nil at the root.
func (p *Path[K]) Prefix() *Path[K] { return p.prefix }

// SideOfExtension returns the side that was followed from the parent to
// reach the tip. It must not be called on a bare root path.
func (p *Path[K]) SideOfExtension() Side {
	assert(p.prefix != nil, "path: root path has no extension side")
	return p.side
}
