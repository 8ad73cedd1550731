package trie

import (
	"fmt"

	"github.com/npillmayer/patricia/bitkey"
)

// Check validates the structural invariants of the trie.
//
// It is meant for tests and debugging; its cost is linear in the number of
// keys times the key length.
func (t *Trie[V]) Check() error {
	if err := t.check(); err != nil {
		tracer().Errorf("trie check failed: %v", err)
		return err
	}
	return nil
}

func (t *Trie[V]) check() error {
	if t == nil {
		return fmt.Errorf("%w: nil trie", ErrCorrupt)
	}
	live := len(t.nodes) - len(t.free)
	if t.size == 0 {
		if live != 0 {
			return fmt.Errorf("%w: empty trie with %d live nodes", ErrCorrupt, live)
		}
		return nil
	}
	if live != t.size {
		return fmt.Errorf("%w: %d live nodes for %d keys", ErrCorrupt, live, t.size)
	}
	released := make(map[int]bool, len(t.free))
	for _, i := range t.free {
		if i == root || i < 0 || i >= len(t.nodes) || released[i] {
			return fmt.Errorf("%w: bad free slot %d", ErrCorrupt, i)
		}
		released[i] = true
	}
	r := t.nodes[root]
	if r.crit != rootCrit || r.child[1] != root {
		return fmt.Errorf("%w: malformed root (crit=%d, child[1]=%d)", ErrCorrupt, r.crit, r.child[1])
	}
	c := checker[V]{
		t:        t,
		released: released,
		onPath:   make(map[int]bool),
		seen:     make(map[int]bool),
		backs:    make(map[int]int),
	}
	if err := c.visit(root); err != nil {
		return err
	}
	if len(c.seen) != t.size {
		return fmt.Errorf("%w: %d nodes reachable, expected %d", ErrCorrupt, len(c.seen), t.size)
	}
	for n := range c.seen {
		if c.backs[n] != 1 {
			return fmt.Errorf("%w: node %d is target of %d back-links", ErrCorrupt, n, c.backs[n])
		}
		if x := t.closest(t.nodes[n].key); x != n {
			return fmt.Errorf("%w: key %v of node %d found at node %d",
				ErrCorrupt, t.nodes[n].key, n, x)
		}
	}
	for i := 1; i < len(c.order); i++ {
		if bitkey.Compare(c.order[i-1], c.order[i]) >= 0 {
			return fmt.Errorf("%w: keys out of order: %v before %v", ErrCorrupt, c.order[i-1], c.order[i])
		}
	}
	return nil
}

type checker[V any] struct {
	t        *Trie[V]
	released map[int]bool
	onPath   map[int]bool // forward ancestors of the node being visited, including itself
	seen     map[int]bool
	backs    map[int]int // back-link in-degree per node
	order    []bitkey.Key
}

// visit walks the forward tree below n in order, collecting back-link
// targets.
func (c *checker[V]) visit(n int) error {
	t := c.t
	c.seen[n] = true
	c.onPath[n] = true
	defer delete(c.onPath, n)
	if t.nodes[n].value == nil {
		return fmt.Errorf("%w: node %d without value", ErrCorrupt, n)
	}
	if n != root && t.nodes[n].crit < 0 {
		return fmt.Errorf("%w: inner node %d with negative critical index", ErrCorrupt, n)
	}
	sides := 2
	if n == root {
		sides = 1
	}
	for side := range sides {
		ch := t.nodes[n].child[side]
		if ch < 0 || ch >= len(t.nodes) || c.released[ch] {
			return fmt.Errorf("%w: node %d has dangling child %d", ErrCorrupt, n, ch)
		}
		if t.forward(n, ch) {
			if c.seen[ch] {
				return fmt.Errorf("%w: node %d reached twice by forward edges", ErrCorrupt, ch)
			}
			if err := c.visit(ch); err != nil {
				return err
			}
			continue
		}
		if !c.onPath[ch] {
			return fmt.Errorf("%w: back-link %d→%d does not target an ancestor", ErrCorrupt, n, ch)
		}
		if n != root && branch(t.nodes[ch].key, t.nodes[n].crit) != side {
			return fmt.Errorf("%w: key %v behind slot %d of node %d has wrong branch bit",
				ErrCorrupt, t.nodes[ch].key, side, n)
		}
		c.backs[ch]++
		c.order = append(c.order, t.nodes[ch].key)
	}
	return nil
}
