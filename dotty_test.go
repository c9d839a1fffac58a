package wbtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8)
	var sb strings.Builder
	Tree2Dot(root, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Fatalf("not a DOT digraph:\n%s", dot)
	}
	for _, label := range []string{`5\n#3`, `3\n#1`, `8\n#1`} {
		if !strings.Contains(dot, label) {
			t.Fatalf("missing node label %q in\n%s", label, dot)
		}
	}
}

func TestFprintTree(t *testing.T) {
	root := buildTree(t, NewSingleRotation[int](), 5, 3, 8)
	var sb strings.Builder
	FprintTree(&sb, root)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 dump lines, got %d:\n%s", len(lines), sb.String())
	}
	// right-to-left dump: 8 first, root 5 unindented, 3 last
	if !strings.HasPrefix(lines[1], "5") {
		t.Fatalf("expected root on middle line, got %q", lines[1])
	}
}

func TestFprintEmptyTree(t *testing.T) {
	var sb strings.Builder
	FprintTree[int](&sb, nil)
	if strings.TrimSpace(sb.String()) != "∅" {
		t.Fatalf("unexpected empty dump %q", sb.String())
	}
}
