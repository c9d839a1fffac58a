package wbtree

// InOrderPath decorates a Path with bidirectional in-order navigation. The
// successor and predecessor paths are computed lazily on first access and
// memoized per instance, so walking back and forth over the same positions
// does no repeated tree descent.
//
// Callers should test HasNext/HasPrev before calling Next/Prev, or be
// prepared for ErrNoSuchElement.
type InOrderPath[K any] struct {
	path      *Path[K]
	neighbors [2]*InOrderPath[K]
	computed  [2]bool
}

// NewInOrderPath wraps a path for in-order navigation.
func NewInOrderPath[K any](p *Path[K]) *InOrderPath[K] {
	assert(p != nil, "in-order path: nil path")
	return &InOrderPath[K]{path: p}
}

// FirstInOrder returns the path to the leftmost node under root, or nil for
// an empty tree.
func FirstInOrder[K any](root Node[K]) *InOrderPath[K] {
	return extremeInOrder(root, Left)
}

// LastInOrder returns the path to the rightmost node under root, or nil for
// an empty tree.
func LastInOrder[K any](root Node[K]) *InOrderPath[K] {
	return extremeInOrder(root, Right)
}

func extremeInOrder[K any](root Node[K], side Side) *InOrderPath[K] {
	if root == nil {
		return nil
	}
	p := NewPath(root)
	for p.tip.Child(side) != nil {
		p = Extension(p, side)
	}
	return NewInOrderPath(p)
}

// Path returns the underlying path.
func (ip *InOrderPath[K]) Path() *Path[K] { return ip.path }

// Tip returns the node at the cursor position.
func (ip *InOrderPath[K]) Tip() Node[K] { return ip.path.tip }

// Key returns the key at the cursor position.
func (ip *InOrderPath[K]) Key() K { return ip.path.tip.Key() }

// HasNext reports whether an in-order successor exists.
func (ip *InOrderPath[K]) HasNext() bool { return ip.neighbor(Right) != nil }

// HasPrev reports whether an in-order predecessor exists.
func (ip *InOrderPath[K]) HasPrev() bool { return ip.neighbor(Left) != nil }

// Next returns the path to the in-order successor, or ErrNoSuchElement when
// the cursor already is at the last entry.
func (ip *InOrderPath[K]) Next() (*InOrderPath[K], error) {
	if n := ip.neighbor(Right); n != nil {
		return n, nil
	}
	return nil, ErrNoSuchElement
}

// Prev returns the path to the in-order predecessor, or ErrNoSuchElement
// when the cursor already is at the first entry.
func (ip *InOrderPath[K]) Prev() (*InOrderPath[K], error) {
	if n := ip.neighbor(Left); n != nil {
		return n, nil
	}
	return nil, ErrNoSuchElement
}

func (ip *InOrderPath[K]) neighbor(side Side) *InOrderPath[K] {
	if !ip.computed[side] {
		if p := inOrderNeighbor(ip.path, side); p != nil {
			ip.neighbors[side] = NewInOrderPath(p)
		}
		ip.computed[side] = true
	}
	return ip.neighbors[side]
}

// inOrderNeighbor computes the in-order neighbor towards side: for Right the
// successor, for Left the predecessor. If the tip has a child on that side,
// the neighbor is the opposite-side-most node of that subtree; otherwise it
// is the nearest ancestor reached by walking up while the path kept going
// towards side. Returns nil at the boundary.
func inOrderNeighbor[K any](p *Path[K], side Side) *Path[K] {
	if p.tip.Child(side) != nil {
		q := Extension(p, side)
		for q.tip.Child(side.Other()) != nil {
			q = Extension(q, side.Other())
		}
		return q
	}
	q := p
	for q.prefix != nil && q.side == side {
		q = q.prefix
	}
	return q.prefix
}
