package wbtree

import "errors"

var (
	// ErrNoSuchElement signals cursor navigation past the first or last entry.
	ErrNoSuchElement = errors.New("wbtree: no such element")
	// ErrInvariantViolated is returned by Check when a structural invariant
	// does not hold.
	ErrInvariantViolated = errors.New("wbtree: invariant violated")
)
