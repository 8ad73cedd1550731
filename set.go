package patricia

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/npillmayer/patricia/bitkey"
	"github.com/npillmayer/patricia/keymaker"
	"github.com/npillmayer/patricia/trie"
)

// Set is an ordered set of elements of type T.
//
// A set created by
//
//	Set[T]{}
//
// is valid and empty. It uses the built-in key maker for T, resolved on first
// use; if T has none, the first operation panics.
//
// A Set must not be copied after first use; operations on a copy panic.
// Elements of type []byte are copied on insertion. Elements of other types
// referencing shared memory must not be modified while in the set.
type Set[T any] struct {
	addr *Set[T] // of receiver, to detect copies by value
	km   keymaker.Func[T]
	trie trie.Trie[T]
}

// NewSet creates an empty set using km to derive keys from elements.
// If km is nil, the built-in key maker for E is used; ErrNoKeyMaker is
// returned if there is none.
func NewSet[E any](km keymaker.Func[E]) (*Set[E], error) {
	if km == nil {
		var err error
		if km, err = keymaker.For[E](); err != nil {
			T().Errorf("patricia.NewSet: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrNoKeyMaker, err)
		}
	}
	s := &Set[E]{km: km}
	s.addr = s
	return s, nil
}

func (s *Set[T]) copyCheck() {
	if s.addr == nil {
		s.addr = s
		return
	}
	assert(s.addr == s, "patricia.Set: illegal use of non-zero Set copied by value")
}

func (s *Set[T]) key(v T) bitkey.Key {
	s.copyCheck()
	if s.km == nil {
		km, err := keymaker.For[T]()
		assert(err == nil, "patricia.Set: no key maker for element type")
		s.km = km
	}
	return s.km(v)
}

// Insert adds v to the set. It returns an iterator positioned at the
// element and true if v has been inserted, or false if an equal element
// was already present (which is left unchanged).
func (s *Set[T]) Insert(v T) (SetIterator[T], bool) {
	k := s.key(v)
	ok := s.trie.Insert(k, detach(v))
	return SetIterator[T]{it: s.trie.Seek(k)}, ok
}

// Contains reports whether v is an element of the set.
func (s *Set[T]) Contains(v T) bool {
	return s.trie.Contains(s.key(v))
}

// Find returns an iterator positioned at v, or an invalid iterator if v is
// not an element of the set.
func (s *Set[T]) Find(v T) SetIterator[T] {
	return SetIterator[T]{it: s.trie.Seek(s.key(v))}
}

// Erase removes v from the set and returns the number of elements removed
// (0 or 1).
func (s *Set[T]) Erase(v T) int {
	if s.trie.Remove(s.key(v)) {
		return 1
	}
	return 0
}

// Empty reports whether the set has no elements.
func (s *Set[T]) Empty() bool {
	s.copyCheck()
	return s.trie.IsEmpty()
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	s.copyCheck()
	return s.trie.Len()
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.copyCheck()
	s.trie.Clear()
}

// Begin returns an iterator positioned at the smallest element.
func (s *Set[T]) Begin() SetIterator[T] {
	s.copyCheck()
	return SetIterator[T]{it: s.trie.First()}
}

// All returns an iterator over the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	s.copyCheck()
	return func(yield func(T) bool) {
		for _, v := range s.trie.All() {
			if !yield(*v) {
				return
			}
		}
	}
}

// Check validates the structure of the underlying trie.
func (s *Set[T]) Check() error {
	s.copyCheck()
	return s.trie.Check()
}

// SetIterator walks the elements of a set in ascending order.
// The zero SetIterator is invalid.
type SetIterator[T any] struct {
	it *trie.Iterator[T]
}

// Valid reports whether the iterator is positioned at an element.
func (it SetIterator[T]) Valid() bool {
	return it.it.Valid()
}

// Next advances the iterator to the following element.
func (it SetIterator[T]) Next() {
	if it.it != nil {
		it.it.Next()
	}
}

// Value returns the current element. It panics if the iterator is invalid.
func (it SetIterator[T]) Value() T {
	assert(it.Valid(), "patricia.SetIterator: iterator not positioned at an element")
	return *it.it.Value()
}

// detach copies v if it is a byte slice, so the stored element does not share
// memory with the caller's buffer.
func detach[T any](v T) T {
	if b, ok := any(v).([]byte); ok && b != nil {
		return any(bytes.Clone(b)).(T)
	}
	return v
}
