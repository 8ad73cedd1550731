package trie

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/patricia/bitkey"
)

// Labeler produces a display label for a key/value pair. A nil Labeler shows
// the key only.
type Labeler[V any] func(k bitkey.Key, v *V) string

func (lbl Labeler[V]) label(k bitkey.Key, v *V) string {
	if lbl == nil {
		return k.String()
	}
	return lbl(k, v)
}

// ToDot outputs the internal structure of a trie in Graphviz DOT format
// (for debugging purposes). Forward edges are drawn solid, back-links dashed.
func (t *Trie[V]) ToDot(w io.Writer, lbl Labeler[V]) error {
	var nodelist, edgelist strings.Builder
	if !t.IsEmpty() {
		t.walk(func(n int, depth int) {
			nd := t.nodes[n]
			label := escape(lbl.label(nd.key, nd.value))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\\n@%d\" %s];\n", n, label, nd.crit, dotStyles(n == root))
			sides := 2
			if n == root {
				sides = 1
			}
			for side := range sides {
				c := nd.child[side]
				if t.forward(n, c) {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%d];\n", n, c, side)
				} else {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%d,style=dashed,constraint=false];\n", n, c, side)
				}
			}
		})
	}
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+
		edgelist.String()+
		"}\n")
	if err != nil {
		tracer().Errorf("trie DOT: %s", err.Error())
	}
	return err
}

// walk visits the nodes of the forward tree in pre-order.
func (t *Trie[V]) walk(f func(n int, depth int)) {
	var rec func(n, depth int)
	rec = func(n, depth int) {
		f(n, depth)
		sides := 2
		if n == root {
			sides = 1
		}
		for side := range sides {
			if c := t.nodes[n].child[side]; t.forward(n, c) {
				rec(c, depth+1)
			}
		}
	}
	rec(root, 0)
}

func dotStyles(isroot bool) string {
	s := ",style=filled"
	if isroot {
		s += ",color=black,fillcolor=\"#FFCCAA\",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=box"
	}
	return s
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
