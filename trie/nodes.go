package trie

import "github.com/npillmayer/patricia/bitkey"

// root is the arena index of the root node of a non-empty trie.
const root = 0

// rootCrit is the critical index of the root, below every branch position.
const rootCrit = -1

// node is a key/value slot and branch point at the same time.
type node[V any] struct {
	key   bitkey.Key
	value *V
	crit  int    // branch position tested by this node
	child [2]int // arena indices
}

// branch returns the bit of k at branch position pos.
//
// Position 2i is 1 as long as k has a bit i, position 2i+1 is bit i of k.
// Past the end of k every position is 0. The root's sentinel position selects
// child 0.
func branch(k bitkey.Key, pos int) int {
	if pos < 0 {
		return 0
	}
	i := pos >> 1
	if i >= k.Len() {
		return 0
	}
	if pos&1 == 0 {
		return 1
	}
	return int(k.Bit(i))
}

// critical returns the first branch position at which a and b differ, or
// -1 if they are equal.
func critical(a, b bitkey.Key) int {
	m := min(a.Len(), b.Len())
	if d := bitkey.FirstDiff(a, b); d < m {
		return 2*d + 1
	}
	if a.Len() == b.Len() {
		return -1
	}
	return 2 * m
}

// forward reports whether the edge from node p to node c descends.
func (t *Trie[V]) forward(p, c int) bool {
	return t.nodes[c].crit > t.nodes[p].crit
}

// alloc places a new node in the arena, re-using free slots first.
// Child references are initialized to the node itself.
func (t *Trie[V]) alloc(k bitkey.Key, value *V, crit int) int {
	var i int
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		i = len(t.nodes)
		t.nodes = append(t.nodes, node[V]{})
	}
	t.nodes[i] = node[V]{
		key:   k,
		value: value,
		crit:  crit,
		child: [2]int{i, i},
	}
	return i
}

// release returns a node's slot to the free list.
func (t *Trie[V]) release(i int) {
	assert(i != root, "trie: root node must not be released")
	t.nodes[i] = node[V]{crit: rootCrit, child: [2]int{-1, -1}}
	t.free = append(t.free, i)
}
