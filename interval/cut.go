/*
Package interval provides the endpoint ("cut") algebra used by the wbtree
engine for range-restricted operations.

A Cut marks a position in the key space strictly between, below or above
actual key values: for every value v the order

	below-all < below(v) < v < above(v) < above-all

holds. Expressing both endpoints of a Range as cuts lets range algorithms
treat open, closed and unbounded sides uniformly, with no special-casing in
the tree walks.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package interval

import (
	"fmt"
	"math"
)

// BoundType describes whether a range endpoint includes its value.
type BoundType int8

const (
	// Open excludes the endpoint value.
	Open BoundType = iota
	// Closed includes the endpoint value.
	Closed
)

func (bt BoundType) String() string {
	if bt == Closed {
		return "closed"
	}
	return "open"
}

type cutKind int8

const (
	belowAll cutKind = iota
	belowValue
	aboveValue
	aboveAll
)

// Cut is one endpoint of an interval: below-all, above-all, below(v) or
// above(v). The zero value is the below-all cut.
type Cut[K any] struct {
	kind  cutKind
	value K
}

// BelowAll returns the global minimum cut.
func BelowAll[K any]() Cut[K] { return Cut[K]{kind: belowAll} }

// AboveAll returns the global maximum cut.
func AboveAll[K any]() Cut[K] { return Cut[K]{kind: aboveAll} }

// Below returns the cut immediately below v.
func Below[K any](v K) Cut[K] { return Cut[K]{kind: belowValue, value: v} }

// Above returns the cut immediately above v.
func Above[K any](v K) Cut[K] { return Cut[K]{kind: aboveValue, value: v} }

// HasValue reports whether the cut is finite, i.e. attached to a value.
func (c Cut[K]) HasValue() bool {
	return c.kind == belowValue || c.kind == aboveValue
}

// Value returns the value the cut is attached to. It must not be called on
// the unbounded cuts.
func (c Cut[K]) Value() K {
	if !c.HasValue() {
		panic("interval: unbounded cut has no value")
	}
	return c.value
}

// Compare orders two cuts under the key comparator. Cuts at the same value
// sort below-cut first; below-all and above-all compare strictly outside
// every finite cut.
func (c Cut[K]) Compare(cmp func(K, K) int, other Cut[K]) int {
	switch {
	case c.kind == belowAll:
		if other.kind == belowAll {
			return 0
		}
		return -1
	case c.kind == aboveAll:
		if other.kind == aboveAll {
			return 0
		}
		return 1
	case other.kind == belowAll:
		return 1
	case other.kind == aboveAll:
		return -1
	}
	if r := cmp(c.value, other.value); r != 0 {
		return r
	}
	// same endpoint value: below sorts before above
	switch {
	case c.kind == other.kind:
		return 0
	case c.kind == belowValue:
		return -1
	}
	return 1
}

// IsLessThan reports whether the cut lies strictly below the value v.
func (c Cut[K]) IsLessThan(cmp func(K, K) int, v K) bool {
	switch c.kind {
	case belowAll:
		return true
	case aboveAll:
		return false
	case belowValue:
		return cmp(c.value, v) <= 0
	case aboveValue:
		return cmp(c.value, v) < 0
	}
	panic("interval: invalid cut")
}

// TypeAsLowerBound returns the bound type of the cut when used as a lower
// endpoint. It must not be called on the unbounded cuts.
func (c Cut[K]) TypeAsLowerBound() BoundType {
	switch c.kind {
	case belowValue:
		return Closed
	case aboveValue:
		return Open
	}
	panic("interval: unbounded cut has no bound type")
}

// TypeAsUpperBound returns the bound type of the cut when used as an upper
// endpoint. It must not be called on the unbounded cuts.
func (c Cut[K]) TypeAsUpperBound() BoundType {
	switch c.kind {
	case belowValue:
		return Open
	case aboveValue:
		return Closed
	}
	panic("interval: unbounded cut has no bound type")
}

// WithLowerBoundType converts the cut so that, used as a lower endpoint, it
// carries the requested bound type while enclosing the same values of the
// discrete domain. Running off the domain yields the below-all cut.
func (c Cut[K]) WithLowerBoundType(bt BoundType, domain Domain[K]) Cut[K] {
	if !c.HasValue() || c.TypeAsLowerBound() == bt {
		return c
	}
	if c.kind == belowValue {
		// closed at v, want open: open at predecessor(v)
		if prev, ok := domain.Previous(c.value); ok {
			return Above(prev)
		}
		return BelowAll[K]()
	}
	// open at v, want closed: closed at successor(v)
	if next, ok := domain.Next(c.value); ok {
		return Below(next)
	}
	return AboveAll[K]()
}

// WithUpperBoundType converts the cut so that, used as an upper endpoint,
// it carries the requested bound type while enclosing the same values of
// the discrete domain. Running off the domain yields the above-all cut.
func (c Cut[K]) WithUpperBoundType(bt BoundType, domain Domain[K]) Cut[K] {
	if !c.HasValue() || c.TypeAsUpperBound() == bt {
		return c
	}
	if c.kind == belowValue {
		// open at v, want closed: closed at predecessor(v)
		if prev, ok := domain.Previous(c.value); ok {
			return Above(prev)
		}
		return BelowAll[K]()
	}
	// closed at v, want open: open at successor(v)
	if next, ok := domain.Next(c.value); ok {
		return Below(next)
	}
	return AboveAll[K]()
}

func (c Cut[K]) String() string {
	switch c.kind {
	case belowAll:
		return "-∞"
	case aboveAll:
		return "+∞"
	case belowValue:
		return fmt.Sprintf("‹%v", c.value)
	}
	return fmt.Sprintf("%v›", c.value)
}

// Domain enumerates a discrete key space. It is consumed when canonicalizing
// range endpoints between open and closed form.
type Domain[K any] interface {
	// Next returns the successor of v, or false at the domain maximum.
	Next(v K) (K, bool)
	// Previous returns the predecessor of v, or false at the domain minimum.
	Previous(v K) (K, bool)
}

// Int64Domain is the discrete domain of int64 keys.
type Int64Domain struct{}

// Next returns v+1, guarding against overflow.
func (Int64Domain) Next(v int64) (int64, bool) {
	if v == math.MaxInt64 {
		return v, false
	}
	return v + 1, true
}

// Previous returns v-1, guarding against underflow.
func (Int64Domain) Previous(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return v, false
	}
	return v - 1, true
}
