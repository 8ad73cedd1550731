package patricia

import (
	"fmt"
	"iter"

	"github.com/npillmayer/patricia/bitkey"
	"github.com/npillmayer/patricia/keymaker"
	"github.com/npillmayer/patricia/trie"
)

// Entry is a key/value pair stored in a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map from keys of type K to values of type V.
//
// A map created by
//
//	Map[K, V]{}
//
// is valid and empty. It uses the built-in key maker for K, resolved on first
// use; if K has none, the first operation panics.
//
// A Map must not be copied after first use; operations on a copy panic.
// Keys of type []byte are copied on insertion.
type Map[K, V any] struct {
	addr *Map[K, V] // of receiver, to detect copies by value
	km   keymaker.Func[K]
	trie trie.Trie[Entry[K, V]]
}

// NewMap creates an empty map using km to derive trie keys from map keys.
// If km is nil, the built-in key maker for K is used; ErrNoKeyMaker is
// returned if there is none.
func NewMap[K, V any](km keymaker.Func[K]) (*Map[K, V], error) {
	if km == nil {
		var err error
		if km, err = keymaker.For[K](); err != nil {
			T().Errorf("patricia.NewMap: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrNoKeyMaker, err)
		}
	}
	m := &Map[K, V]{km: km}
	m.addr = m
	return m, nil
}

func (m *Map[K, V]) copyCheck() {
	if m.addr == nil {
		m.addr = m
		return
	}
	assert(m.addr == m, "patricia.Map: illegal use of non-zero Map copied by value")
}

func (m *Map[K, V]) key(k K) bitkey.Key {
	m.copyCheck()
	if m.km == nil {
		km, err := keymaker.For[K]()
		assert(err == nil, "patricia.Map: no key maker for key type")
		m.km = km
	}
	return m.km(k)
}

// Insert adds a mapping k → v. It returns an iterator positioned at the
// entry for k and true if the mapping has been inserted, or false if k was
// already present (its value is left unchanged).
func (m *Map[K, V]) Insert(k K, v V) (MapIterator[K, V], bool) {
	key := m.key(k)
	ok := m.trie.Insert(key, Entry[K, V]{Key: detach(k), Value: v})
	return MapIterator[K, V]{it: m.trie.Seek(key)}, ok
}

// Index returns a reference to the value for k, inserting the zero value of
// V first if k is not present. The reference stays valid until k is erased.
//
//	*m.Index("foo") += 1
func (m *Map[K, V]) Index(k K) *V {
	key := m.key(k)
	e, ok := m.trie.Find(key)
	if !ok {
		m.trie.Insert(key, Entry[K, V]{Key: detach(k)})
		e, _ = m.trie.Find(key)
	}
	return &e.Value
}

// Get returns the value for k and true, or the zero value and false if k is
// not present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e, ok := m.trie.Find(m.key(k)); ok {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	return m.trie.Contains(m.key(k))
}

// Find returns an iterator positioned at the entry for k, or an invalid
// iterator if k is not present.
func (m *Map[K, V]) Find(k K) MapIterator[K, V] {
	return MapIterator[K, V]{it: m.trie.Seek(m.key(k))}
}

// Erase removes the entry for k and returns the number of entries removed
// (0 or 1).
func (m *Map[K, V]) Erase(k K) int {
	if m.trie.Remove(m.key(k)) {
		return 1
	}
	return 0
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	m.copyCheck()
	return m.trie.IsEmpty()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.copyCheck()
	return m.trie.Len()
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.copyCheck()
	m.trie.Clear()
}

// Begin returns an iterator positioned at the entry with the smallest key.
func (m *Map[K, V]) Begin() MapIterator[K, V] {
	m.copyCheck()
	return MapIterator[K, V]{it: m.trie.First()}
}

// All returns an iterator over all key/value pairs in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	m.copyCheck()
	return func(yield func(K, V) bool) {
		for _, e := range m.trie.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	m.copyCheck()
	return func(yield func(K) bool) {
		for _, e := range m.trie.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Check validates the structure of the underlying trie.
func (m *Map[K, V]) Check() error {
	m.copyCheck()
	return m.trie.Check()
}

// MapIterator walks the entries of a map in ascending key order.
// The zero MapIterator is invalid.
type MapIterator[K, V any] struct {
	it *trie.Iterator[Entry[K, V]]
}

// Valid reports whether the iterator is positioned at an entry.
func (it MapIterator[K, V]) Valid() bool {
	return it.it.Valid()
}

// Next advances the iterator to the following entry.
func (it MapIterator[K, V]) Next() {
	if it.it != nil {
		it.it.Next()
	}
}

// Key returns the key of the current entry.
func (it MapIterator[K, V]) Key() K {
	assert(it.Valid(), "patricia.MapIterator: iterator not positioned at an entry")
	return it.it.Value().Key
}

// Value returns a reference to the value of the current entry.
func (it MapIterator[K, V]) Value() *V {
	assert(it.Valid(), "patricia.MapIterator: iterator not positioned at an entry")
	return &it.it.Value().Value
}
