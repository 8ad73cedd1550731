package patricia

import (
	"fmt"
	"io"

	"github.com/npillmayer/patricia/bitkey"
	"github.com/npillmayer/patricia/trie"
)

// Set2Dot outputs the internal structure of a Set in Graphviz DOT format
// (for debugging purposes).
func Set2Dot[T any](s *Set[T], w io.Writer) error {
	s.copyCheck()
	return s.trie.ToDot(w, trie.Labeler[T](func(_ bitkey.Key, v *T) string {
		return fmt.Sprintf("%v", *v)
	}))
}

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their keys.
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) error {
	m.copyCheck()
	return m.trie.ToDot(w, trie.Labeler[Entry[K, V]](func(_ bitkey.Key, e *Entry[K, V]) string {
		return fmt.Sprintf("%v", e.Key)
	}))
}
