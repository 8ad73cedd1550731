package trie

import (
	"github.com/npillmayer/patricia/bitkey"
)

// Trie is a PATRICIA trie mapping bit-string keys to values of type V.
//
// A trie created by
//
//	Trie[V]{}
//
// is valid and empty.
type Trie[V any] struct {
	nodes []node[V] // arena; nodes[root] is the root if size > 0
	free  []int     // released arena slots
	size  int       // number of keys
	mods  uint64    // structural modification counter, guards iterators
}

// New creates an empty trie with validated configuration.
func New[V any](cfg Config) (*Trie[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Trie[V]{}
	if cfg.Capacity > 0 {
		t.nodes = make([]node[V], 0, cfg.Capacity)
	}
	return t, nil
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the trie holds no keys.
func (t *Trie[V]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// Clear removes all keys from the trie. The arena's memory is retained.
func (t *Trie[V]) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.size = 0
	t.mods++
}

// closest performs the closest-key descent for k: starting at the root it
// follows the child selected by k's branch bit as long as edges lead
// forward. It returns the node reached through the first back-link, which
// holds the key sharing the longest common prefix with k.
//
// The trie must not be empty.
func (t *Trie[V]) closest(k bitkey.Key) int {
	p, x := root, t.nodes[root].child[0]
	for t.forward(p, x) {
		p = x
		x = t.nodes[x].child[branch(k, t.nodes[x].crit)]
	}
	return x
}

// Find returns a reference to the value stored for k.
func (t *Trie[V]) Find(k bitkey.Key) (*V, bool) {
	if t.IsEmpty() {
		return nil, false
	}
	x := t.closest(k)
	if !t.nodes[x].key.Equal(k) {
		return nil, false
	}
	return t.nodes[x].value, true
}

// Contains reports whether k is stored in the trie.
func (t *Trie[V]) Contains(k bitkey.Key) bool {
	_, ok := t.Find(k)
	return ok
}

// Insert stores value for k. If k is already present, Insert leaves the trie
// untouched and returns false.
func (t *Trie[V]) Insert(k bitkey.Key, value V) bool {
	if t.size == 0 {
		t.nodes = t.nodes[:0]
		t.free = t.free[:0]
		t.alloc(k, &value, rootCrit)
		t.size = 1
		t.mods++
		return true
	}
	d := critical(k, t.nodes[t.closest(k)].key)
	if d < 0 {
		return false
	}
	// Descend again, this time stopping above the first node testing a
	// position at or beyond d. The new node is spliced into that edge.
	p, slot := root, 0
	x := t.nodes[root].child[0]
	for t.forward(p, x) && t.nodes[x].crit < d {
		p = x
		slot = branch(k, t.nodes[x].crit)
		x = t.nodes[x].child[slot]
	}
	z := t.alloc(k, &value, d)
	b := branch(k, d)
	t.nodes[z].child[b] = z
	t.nodes[z].child[1-b] = x
	t.nodes[p].child[slot] = z
	t.size++
	t.mods++
	return true
}
