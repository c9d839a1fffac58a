package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidRange signals crossed range endpoints.
var ErrInvalidRange = errors.New("interval: invalid range")

// Range is an ordered pair of cuts together with the key comparator the
// cuts are ordered under. Emptiness and the too-low/too-high membership
// tests used by range algorithms derive purely from cut comparisons, which
// is what makes unbounded sides free of special cases.
type Range[K any] struct {
	cmp   func(K, K) int
	lower Cut[K]
	upper Cut[K]
}

// New builds a range from two cuts. The lower cut must not order above the
// upper cut; an equal pair is allowed and yields an empty range.
func New[K any](cmp func(K, K) int, lower, upper Cut[K]) (Range[K], error) {
	if cmp == nil {
		return Range[K]{}, fmt.Errorf("%w: nil comparator", ErrInvalidRange)
	}
	if lower.Compare(cmp, upper) > 0 {
		return Range[K]{}, fmt.Errorf("%w: lower cut %v above upper cut %v",
			ErrInvalidRange, lower, upper)
	}
	return Range[K]{cmp: cmp, lower: lower, upper: upper}, nil
}

// All returns the unbounded range.
func All[K any](cmp func(K, K) int) Range[K] {
	return Range[K]{cmp: cmp, lower: BelowAll[K](), upper: AboveAll[K]()}
}

// DownTo returns the range of all keys from v upwards, including v when bt
// is Closed.
func DownTo[K any](cmp func(K, K) int, v K, bt BoundType) Range[K] {
	lower := Below(v)
	if bt == Open {
		lower = Above(v)
	}
	return Range[K]{cmp: cmp, lower: lower, upper: AboveAll[K]()}
}

// UpTo returns the range of all keys up to v, including v when bt is
// Closed.
func UpTo[K any](cmp func(K, K) int, v K, bt BoundType) Range[K] {
	upper := Above(v)
	if bt == Open {
		upper = Below(v)
	}
	return Range[K]{cmp: cmp, lower: BelowAll[K](), upper: upper}
}

// Between returns the doubly-bounded range between lo and hi with the given
// bound types. lo must not order above hi.
func Between[K any](cmp func(K, K) int, lo K, loType BoundType, hi K, hiType BoundType) (Range[K], error) {
	lower := Below(lo)
	if loType == Open {
		lower = Above(lo)
	}
	upper := Above(hi)
	if hiType == Open {
		upper = Below(hi)
	}
	return New(cmp, lower, upper)
}

// Comparator returns the key comparator the range was built with.
func (r Range[K]) Comparator() func(K, K) int { return r.cmp }

// LowerCut returns the lower endpoint.
func (r Range[K]) LowerCut() Cut[K] { return r.lower }

// UpperCut returns the upper endpoint.
func (r Range[K]) UpperCut() Cut[K] { return r.upper }

// HasLowerBound reports whether the range is bounded from below.
func (r Range[K]) HasLowerBound() bool { return r.lower.kind != belowAll }

// HasUpperBound reports whether the range is bounded from above.
func (r Range[K]) HasUpperBound() bool { return r.upper.kind != aboveAll }

// IsEmpty reports whether no key can lie inside the range.
func (r Range[K]) IsEmpty() bool {
	return r.lower.Compare(r.cmp, r.upper) >= 0
}

// TooLow reports whether key lies below the lower endpoint.
func (r Range[K]) TooLow(key K) bool {
	return !r.lower.IsLessThan(r.cmp, key)
}

// TooHigh reports whether key lies above the upper endpoint.
func (r Range[K]) TooHigh(key K) bool {
	return r.upper.IsLessThan(r.cmp, key)
}

// Contains reports whether key lies inside the range.
func (r Range[K]) Contains(key K) bool {
	return !r.TooLow(key) && !r.TooHigh(key)
}

func (r Range[K]) String() string {
	return fmt.Sprintf("(%v..%v)", r.lower, r.upper)
}
