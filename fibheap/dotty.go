package fibheap

import (
	"fmt"
	"io"
	"strings"
)

// Heap2Dot outputs the internal structure of a heap in Graphviz DOT format
// (for debugging purposes).
//
// Roots are drawn in the top rank, connected by dashed sibling edges; the
// minimum root is highlighted.
func Heap2Dot[T any](h *Heap[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	rootrank := "\t{ rank=same;"
	h.nodes.each(h.roots, func(r handle) bool {
		rootrank += fmt.Sprintf(" \"%d\";", r)
		if right := h.nodes.at(r).right; right != r {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed,arrowhead=none];\n", r, right)
		}
		h.walk(r, 0, func(x handle, depth int) {
			n := h.nodes.at(x)
			styles := nodeDotStyles(x == h.min, n.parent == none)
			label := dotEscape(fmt.Sprintf("%v", n.value))
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\\nd=%d\"%s];\n", x, label, n.degree, styles)
			h.nodes.each(n.child, func(c handle) bool {
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", x, c)
				return true
			})
		})
		return true
	})
	io.WriteString(w, nodelist)
	if h.roots != none {
		io.WriteString(w, rootrank+" }\n")
	}
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isMin bool, isRoot bool) string {
	s := ",style=filled"
	if isRoot {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	if isMin {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// walk visits the tree rooted at x in pre-order.
func (h *Heap[T]) walk(x handle, depth int, f func(x handle, depth int)) {
	f(x, depth)
	h.nodes.each(h.nodes.at(x).child, func(c handle) bool {
		h.walk(c, depth+1, f)
		return true
	})
}

// Dump writes an indented rendering of the forest to w, one node per line,
// with the node's handle, degree and sibling handles. An empty heap is
// reported as such.
func (h *Heap[T]) Dump(w io.Writer) {
	h.DumpWith(w, func(v T) string { return fmt.Sprintf("%v", v) })
}

// DumpWith is like Dump, but formats values with format.
func (h *Heap[T]) DumpWith(w io.Writer, format func(T) string) {
	if h.roots == none {
		io.WriteString(w, "heap is empty\n")
		return
	}
	h.nodes.each(h.roots, func(r handle) bool {
		h.walk(r, 0, func(x handle, depth int) {
			n := h.nodes.at(x)
			marker := " "
			if x == h.min {
				marker = "*"
			}
			fmt.Fprintf(w, "%s%s%s  #%d d=%d L=%d R=%d\n", strings.Repeat("  ", depth), marker,
				format(n.value), x, n.degree, n.left, n.right)
		})
		return true
	})
}
