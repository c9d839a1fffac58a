package interval

import (
	"errors"
	"testing"
)

func TestNewRejectsCrossedCuts(t *testing.T) {
	_, err := New(intCmp, Above(8), Below(3))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	_, err = New[int](nil, Below(3), Above(8))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for nil comparator, got %v", err)
	}
}

func TestAllRange(t *testing.T) {
	r := All(intCmp)
	if r.HasLowerBound() || r.HasUpperBound() {
		t.Fatalf("all-range must be unbounded on both sides")
	}
	if r.IsEmpty() {
		t.Fatalf("all-range must not be empty")
	}
	for _, k := range []int{-1000, 0, 1000} {
		if !r.Contains(k) {
			t.Fatalf("all-range must contain %d", k)
		}
	}
}

func TestHalfOpenRange(t *testing.T) {
	r, err := Between(intCmp, 3, Closed, 8, Open) // [3,8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		key      int
		tooLow   bool
		tooHigh  bool
		contains bool
	}{
		{2, true, false, false},
		{3, false, false, true},
		{7, false, false, true},
		{8, false, true, false},
		{9, false, true, false},
	}
	for _, c := range cases {
		if got := r.TooLow(c.key); got != c.tooLow {
			t.Fatalf("TooLow(%d) = %v, expected %v", c.key, got, c.tooLow)
		}
		if got := r.TooHigh(c.key); got != c.tooHigh {
			t.Fatalf("TooHigh(%d) = %v, expected %v", c.key, got, c.tooHigh)
		}
		if got := r.Contains(c.key); got != c.contains {
			t.Fatalf("Contains(%d) = %v, expected %v", c.key, got, c.contains)
		}
	}
}

func TestSingletonAndEmptyRanges(t *testing.T) {
	singleton, err := Between(intCmp, 5, Closed, 5, Closed) // [5,5]
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if singleton.IsEmpty() {
		t.Fatalf("[5,5] must not be empty")
	}
	if !singleton.Contains(5) || singleton.Contains(4) || singleton.Contains(6) {
		t.Fatalf("[5,5] must contain exactly 5")
	}
	empty, err := New(intCmp, Below(5), Below(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !empty.IsEmpty() {
		t.Fatalf("coinciding cuts must yield an empty range")
	}
}

func TestDownToUpTo(t *testing.T) {
	down := DownTo(intCmp, 4, Closed)
	if down.TooLow(4) || !down.TooLow(3) || down.TooHigh(1 << 30) {
		t.Fatalf("DownTo(4, closed) misclassifies keys")
	}
	downOpen := DownTo(intCmp, 4, Open)
	if !downOpen.TooLow(4) || downOpen.TooLow(5) {
		t.Fatalf("DownTo(4, open) misclassifies keys")
	}
	up := UpTo(intCmp, 4, Closed)
	if up.TooHigh(4) || !up.TooHigh(5) || up.TooLow(-1<<30) {
		t.Fatalf("UpTo(4, closed) misclassifies keys")
	}
	upOpen := UpTo(intCmp, 4, Open)
	if !upOpen.TooHigh(4) || upOpen.TooHigh(3) {
		t.Fatalf("UpTo(4, open) misclassifies keys")
	}
}
