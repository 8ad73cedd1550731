package trie

import (
	"iter"

	"github.com/npillmayer/patricia/bitkey"
)

// frame is a position on the forward path of an iterator: the node and the
// child slot currently being visited.
type frame struct {
	n    int
	side int
}

// Iterator walks the keys of a trie in ascending order.
//
// An iterator is either positioned at a key/value pair (Valid returns true)
// or exhausted. The zero Iterator is exhausted. Iterators become invalid
// with any insertion into or removal from their trie; using them afterwards
// panics.
type Iterator[V any] struct {
	t     *Trie[V]
	mods  uint64
	stack []frame // forward path from the root to the current back-link
	cur   int     // node reached through the current back-link
}

// First returns an iterator positioned at the smallest key.
func (t *Trie[V]) First() *Iterator[V] {
	it := &Iterator[V]{t: t, cur: -1}
	if t.IsEmpty() {
		return it
	}
	it.mods = t.mods
	it.descend(root, 0)
	return it
}

// Seek returns an iterator positioned at k, or an exhausted iterator if k is
// not present. Advancing the iterator continues with the keys following k.
func (t *Trie[V]) Seek(k bitkey.Key) *Iterator[V] {
	it := &Iterator[V]{t: t, cur: -1}
	if t.IsEmpty() {
		return it
	}
	it.mods = t.mods
	n, side := root, 0
	for {
		it.stack = append(it.stack, frame{n: n, side: side})
		c := t.nodes[n].child[side]
		if !t.forward(n, c) {
			if t.nodes[c].key.Equal(k) {
				it.cur = c
			} else {
				it.stack = it.stack[:0]
			}
			return it
		}
		n, side = c, branch(k, t.nodes[c].crit)
	}
}

// descend enters child slot side of node n and follows forward edges along
// the low side until a back-link is found.
func (it *Iterator[V]) descend(n, side int) {
	nodes := it.t.nodes
	for {
		it.stack = append(it.stack, frame{n: n, side: side})
		c := nodes[n].child[side]
		if nodes[c].crit <= nodes[n].crit {
			it.cur = c
			return
		}
		n, side = c, 0
	}
}

func (it *Iterator[V]) checkValid() {
	assert(it.Valid(), "trie.Iterator: iterator exhausted")
	assert(it.mods == it.t.mods, "trie.Iterator: trie modified during iteration")
}

// Valid reports whether the iterator is positioned at a key/value pair.
func (it *Iterator[V]) Valid() bool {
	return it != nil && it.t != nil && it.cur >= 0
}

// Key returns the current key.
func (it *Iterator[V]) Key() bitkey.Key {
	it.checkValid()
	return it.t.nodes[it.cur].key
}

// Value returns a reference to the current value.
func (it *Iterator[V]) Value() *V {
	it.checkValid()
	return it.t.nodes[it.cur].value
}

// Next advances the iterator to the following key. Advancing past the
// largest key exhausts the iterator.
func (it *Iterator[V]) Next() {
	if !it.Valid() {
		return
	}
	it.checkValid()
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if top.side == 0 && top.n != root {
			it.descend(top.n, 1)
			return
		}
	}
	it.cur = -1
}

// Clone returns an independent copy of the iterator.
func (it *Iterator[V]) Clone() *Iterator[V] {
	if it == nil {
		return nil
	}
	c := *it
	c.stack = append([]frame(nil), it.stack...)
	return &c
}

// All returns an iterator over all key/value pairs in ascending key order.
func (t *Trie[V]) All() iter.Seq2[bitkey.Key, *V] {
	return func(yield func(bitkey.Key, *V) bool) {
		for it := t.First(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Trie[V]) Keys() iter.Seq[bitkey.Key] {
	return func(yield func(bitkey.Key) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}
