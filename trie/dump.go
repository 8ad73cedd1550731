package trie

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	nodeColor = color.New(color.FgBlue, color.Bold)
	fwdColor  = color.New(color.FgGreen)
	backColor = color.New(color.FgYellow)
)

// Dump writes an indented view of the trie to w, one line per node followed
// by one line per child edge (→ forward, ↺ back-link). Colors are used if
// stdout is a terminal (see package github.com/fatih/color).
//
//	[0] "foo"/24 @-1
//	  0 ↺ [0]
func (t *Trie[V]) Dump(w io.Writer, lbl Labeler[V]) error {
	if t.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	var err error
	t.walk(func(n int, depth int) {
		if err != nil {
			return
		}
		nd := t.nodes[n]
		indent := strings.Repeat("  ", depth)
		_, err = fmt.Fprintf(w, "%s%s %s @%d\n", indent, nodeColor.Sprintf("[%d]", n),
			lbl.label(nd.key, nd.value), nd.crit)
		sides := 2
		if n == root {
			sides = 1
		}
		for side := range sides {
			c := nd.child[side]
			if err != nil {
				return
			}
			if t.forward(n, c) {
				_, err = fmt.Fprintf(w, "%s  %d %s\n", indent, side, fwdColor.Sprintf("→ [%d]", c))
			} else {
				_, err = fmt.Fprintf(w, "%s  %d %s\n", indent, side, backColor.Sprintf("↺ [%d]", c))
			}
		}
	})
	return err
}
