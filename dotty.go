package wbtree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type nodeids[K any] struct {
	idTable map[Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of the subtree rooted at root in Graphviz
// DOT format (for debugging purposes). Shared subtrees of two roots dumped
// into the same writer come out as shared DOT nodes, which makes structural
// sharing between snapshots visible.
func Tree2Dot[K any](root Node[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	nodelist, edgelist := "", ""
	var walk func(node Node[K])
	walk = func(node Node[K]) {
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v\\n#%d", node.Key(), node.Count())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node))
		for _, side := range []Side{Left, Right} {
			if child := node.Child(side); child != nil {
				walk(child)
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(child))
			} else {
				nilid := ID + 10000*(1+int(side))
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	return s
}

func nodeDotStyles[K any](node Node[K]) string {
	s := ",style=filled,color=black,shape=circle"
	if node.Child(Left) == nil && node.Child(Right) == nil {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#CCDDFF\""
	}
	return s
}

var depthPalette = [...]*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

// FprintTree writes an indented right-to-left dump of the subtree rooted at
// root, one node per line with its subtree count. When w is an interactive
// terminal, tree levels are colorized.
func FprintTree[K any](w io.Writer, root Node[K]) {
	colorize := false
	if file, ok := w.(*os.File); ok {
		colorize = term.IsTerminal(int(file.Fd()))
	}
	if root == nil {
		fmt.Fprintln(w, "∅")
		return
	}
	var dump func(node Node[K], depth int)
	dump = func(node Node[K], depth int) {
		if node == nil {
			return
		}
		dump(node.Child(Right), depth+1)
		line := fmt.Sprintf("%*s%v (#%d)", 4*depth, "", node.Key(), node.Count())
		if colorize {
			depthPalette[depth%len(depthPalette)].Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
		dump(node.Child(Left), depth+1)
	}
	dump(root, 0)
}
