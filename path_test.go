package wbtree

import (
	"errors"
	"testing"
)

func TestPathExtension(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8)
	p := NewPath(root)
	if p.HasPrefix() {
		t.Fatalf("root path must not have a prefix")
	}
	left := Extension(p, Left)
	if left.Tip().Key() >= root.Key() {
		t.Fatalf("left extension must lead to a smaller key")
	}
	if left.Prefix() != p || left.SideOfExtension() != Left {
		t.Fatalf("extension must record prefix and side")
	}
}

func TestPathExtensionRequiresChild(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 42)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on extension into missing child")
		}
	}()
	Extension(NewPath(root), Left)
}

func TestInOrderForwardWalk(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8, 1, 4, 7, 9)
	var keys []int
	p := FirstInOrder(root)
	for {
		keys = append(keys, p.Key())
		if !p.HasNext() {
			break
		}
		next, err := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p = next
	}
	if !equalKeys(keys, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Fatalf("unexpected forward walk %v", keys)
	}
}

func TestInOrderBackwardWalk(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8, 1, 4, 7, 9)
	var keys []int
	p := LastInOrder(root)
	for {
		keys = append(keys, p.Key())
		if !p.HasPrev() {
			break
		}
		prev, err := p.Prev()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p = prev
	}
	if !equalKeys(keys, []int{9, 8, 7, 5, 4, 3, 1}) {
		t.Fatalf("unexpected backward walk %v", keys)
	}
}

func TestInOrderBoundaries(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8)
	first := FirstInOrder(root)
	if first.HasPrev() {
		t.Fatalf("first entry must not have a predecessor")
	}
	if _, err := first.Prev(); !errors.Is(err, ErrNoSuchElement) {
		t.Fatalf("expected ErrNoSuchElement, got %v", err)
	}
	last := LastInOrder(root)
	if last.HasNext() {
		t.Fatalf("last entry must not have a successor")
	}
	if _, err := last.Next(); !errors.Is(err, ErrNoSuchElement) {
		t.Fatalf("expected ErrNoSuchElement, got %v", err)
	}
}

func TestInOrderEmptyTree(t *testing.T) {
	if FirstInOrder[int](nil) != nil || LastInOrder[int](nil) != nil {
		t.Fatalf("empty tree has no in-order positions")
	}
}

func TestNeighborsAreMemoized(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8)
	p := FirstInOrder(root)
	n1, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n2, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n1 != n2 {
		t.Fatalf("successor must be computed once and memoized")
	}
}

func TestSingleEntryCursor(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 42)
	p := FirstInOrder(root)
	if p.Key() != 42 || p.HasNext() || p.HasPrev() {
		t.Fatalf("single-entry cursor misbehaves")
	}
}

func TestIterators(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8, 1, 4)
	if got := inorderKeys(root); !equalKeys(got, []int{1, 3, 4, 5, 8}) {
		t.Fatalf("unexpected key sequence %v", got)
	}
	var counts []int64
	for n := range InOrder(root) {
		counts = append(counts, n.Count())
	}
	if len(counts) != 5 {
		t.Fatalf("expected 5 nodes, visited %d", len(counts))
	}
	// early break must not run the iterator to completion
	visited := 0
	for range Keys(root) {
		visited++
		if visited == 2 {
			break
		}
	}
	if visited != 2 {
		t.Fatalf("expected early break after 2 keys, got %d", visited)
	}
}
