package wbtree

import "github.com/npillmayer/wbtree/interval"

// Aggregate maps entries and whole subtrees to an additive measure. For any
// node the subtree measure must equal the entry measure plus the measures of
// both child subtrees; implementations usually read a cached value, as the
// built-in count aggregate reads Node.Count.
type Aggregate[K any] interface {
	// EntryValue returns the measure of a single entry.
	EntryValue(n Node[K]) int64
	// TreeValue returns the measure of a whole subtree. A nil subtree
	// measures 0.
	TreeValue(n Node[K]) int64
}

// CountAggregate measures entries by presence: 1 per entry, the cached
// subtree count per subtree.
type CountAggregate[K any] struct{}

// EntryValue returns 1.
func (CountAggregate[K]) EntryValue(n Node[K]) int64 { return 1 }

// TreeValue returns the cached subtree count.
func (CountAggregate[K]) TreeValue(n Node[K]) int64 { return countOf(n) }

// TotalInRange returns the aggregate measure of all entries enclosed by
// rng. It starts from the whole-tree measure and subtracts the mass beyond
// each bound, each computed in one descent along the boundary path. The
// walk never visits both children of a node.
func TotalInRange[K any](agg Aggregate[K], rng interval.Range[K], root Node[K]) int64 {
	if root == nil || rng.IsEmpty() {
		return 0
	}
	total := agg.TreeValue(root)
	if rng.HasLowerBound() {
		total -= totalBeyond(agg, rng, Left, root)
	}
	if rng.HasUpperBound() {
		total -= totalBeyond(agg, rng, Right, root)
	}
	return total
}

// totalBeyond sums the measure of all entries outside rng on the given
// side, walking only the boundary path.
func totalBeyond[K any](agg Aggregate[K], rng interval.Range[K], side Side, root Node[K]) int64 {
	var total int64
	for node := root; node != nil; {
		if beyond(rng, side, node.Key()) {
			total += agg.EntryValue(node)
			total += agg.TreeValue(node.Child(side))
			node = node.Child(side.Other())
		} else {
			node = node.Child(side)
		}
	}
	return total
}

// beyond reports whether key lies outside rng towards side.
func beyond[K any](rng interval.Range[K], side Side, key K) bool {
	if side == Left {
		return rng.TooLow(key)
	}
	return rng.TooHigh(key)
}

// MinusRange returns a balanced tree containing every entry of root that is
// not enclosed by rng. The too-low and too-high subtrees are extracted
// independently, each rebuilding only the nodes on its boundary path, and
// combined. The extraction joins subtrees of arbitrary relative weight, so
// the policy should be FullRebalance unless the resulting shape does not
// matter.
func MinusRange[K any](rng interval.Range[K], policy BalancePolicy[K], f NodeFactory[K], root Node[K]) Node[K] {
	if root == nil {
		return nil
	}
	if rng.IsEmpty() {
		return root
	}
	var low, high Node[K]
	if rng.HasLowerBound() {
		low = subtreeBeyond(rng, policy, f, Left, root)
	}
	if rng.HasUpperBound() {
		high = subtreeBeyond(rng, policy, f, Right, root)
	}
	return policy.Combine(f, low, high)
}

// subtreeBeyond extracts a balanced subtree of the entries outside rng on
// the given side. A node beyond the bound keeps its whole outer subtree by
// reference; only boundary-path nodes are rebuilt.
func subtreeBeyond[K any](rng interval.Range[K], policy BalancePolicy[K], f NodeFactory[K], side Side, node Node[K]) Node[K] {
	if node == nil {
		return nil
	}
	if beyond(rng, side, node.Key()) {
		rest := subtreeBeyond(rng, policy, f, side, node.Child(side.Other()))
		if side == Left {
			return policy.Balance(f, node, node.Child(Left), rest)
		}
		return policy.Balance(f, node, rest, node.Child(Right))
	}
	return subtreeBeyond(rng, policy, f, side, node.Child(side))
}

// FurthestPath returns the path to the most extreme node towards side that
// still falls inside rng, or nil when no entry is in range. It descends
// towards side, backtracking into the opposite child whenever the current
// node itself falls outside the range.
func FurthestPath[K any](rng interval.Range[K], side Side, root Node[K]) *Path[K] {
	if root == nil || rng.IsEmpty() {
		return nil
	}
	return furthestPath(rng, side, NewPath(root))
}

func furthestPath[K any](rng interval.Range[K], side Side, p *Path[K]) *Path[K] {
	tip := p.Tip()
	if beyond(rng, side, tip.Key()) {
		// overshot the bound: everything towards side is outside too
		if tip.Child(side.Other()) == nil {
			return nil
		}
		return furthestPath(rng, side, Extension(p, side.Other()))
	}
	if tip.Child(side) != nil {
		if r := furthestPath(rng, side, Extension(p, side)); r != nil {
			return r
		}
	}
	if beyond(rng, side.Other(), tip.Key()) {
		return nil
	}
	return p
}
