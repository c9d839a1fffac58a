/*
Package wbtree provides a comparator-driven, weight-balanced binary search
tree engine with persistent (copy-on-write) updates.

The package is intentionally not a ready-made map/set container. It is the
machinery such containers are built from: ordered front-ends hold a root
node, a comparator and a balance policy, and call into this engine for every
insert, remove and range query. Nodes are immutable once constructed; every
structural change builds new nodes through a NodeFactory and shares untouched
subtrees by reference, so an old root and a new root may coexist and serve
concurrent readers.

Main building blocks:
  - node contract (`Node`, `Side`, `NodeFactory`) with a default
    subtree-counting implementation (`CountedNode`),
  - immutable root-to-node paths with in-order cursor navigation
    (`Path`, `InOrderPath`),
  - pluggable balance policies (`NoRebalance`, `SingleRotation`,
    `FullRebalance`) that restore the weight-balance invariant or join
    balanced subtrees,
  - a generic mutation driver (`Mutate`) that implements insert, remove
    and conditional replace through caller-supplied modifiers,
  - range-restricted aggregate operations (`TotalInRange`, `MinusRange`,
    `FurthestPath`) over interval bounds from package interval.

Writers must be serialized externally; see subpackage watch for a small
helper that guards a current root and broadcasts published snapshots.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package wbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
