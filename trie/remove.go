package trie

import "github.com/npillmayer/patricia/bitkey"

// trail records the last steps of a closest-key descent.
type trail struct {
	target int // node reached through the terminating back-link
	p      int // node owning the back-link
	pslot  int // p's child slot holding the back-link
	gp     int // forward parent of p, -1 if p is the root
	gslot  int // gp's child slot pointing to p
}

func (t *Trie[V]) descend(k bitkey.Key) trail {
	tr := trail{p: root, gp: -1}
	x := t.nodes[root].child[0]
	for t.forward(tr.p, x) {
		tr.gp, tr.gslot = tr.p, tr.pslot
		tr.p = x
		tr.pslot = branch(k, t.nodes[x].crit)
		x = t.nodes[x].child[tr.pslot]
	}
	tr.target = x
	return tr
}

// Remove deletes k from the trie. It returns false if k is not present.
//
// If the node holding k terminates its own path, it is bypassed. Otherwise
// the node holding k is still needed as a branch point: the node whose
// back-link reaches it hands over its key/value and is bypassed instead.
func (t *Trie[V]) Remove(k bitkey.Key) bool {
	if t.IsEmpty() {
		return false
	}
	tr := t.descend(k)
	x := tr.target
	if !t.nodes[x].key.Equal(k) {
		return false
	}
	if t.size == 1 {
		t.Clear()
		return true
	}
	// With more than one key the root's child is a forward edge, so the
	// back-link owner p has a forward parent.
	assert(tr.gp >= 0, "trie.Remove: back-link owner without parent")
	p := tr.p
	other := t.nodes[p].child[1-tr.pslot]
	if x == p {
		t.nodes[tr.gp].child[tr.gslot] = other
		t.release(p)
		t.size--
		t.mods++
		return true
	}
	// x is a proper ancestor of p. Locate the back-link reaching p before
	// changing the structure.
	donor := t.descend(t.nodes[p].key)
	assert(donor.target == p, "trie.Remove: donor not reachable by its key")
	tracer().Debugf("trie: evict %v from branch node %d, donor %v from node %d",
		k, x, t.nodes[p].key, p)
	if other == p {
		// p terminated its own path; after the move its key lives at x.
		t.nodes[tr.gp].child[tr.gslot] = x
	} else {
		t.nodes[tr.gp].child[tr.gslot] = other
		t.nodes[donor.p].child[donor.pslot] = x
	}
	t.nodes[x].key = t.nodes[p].key
	t.nodes[x].value = t.nodes[p].value
	t.release(p)
	t.size--
	t.mods++
	return true
}
