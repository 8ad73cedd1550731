package trie

import "errors"

var (
	// ErrInvalidConfig signals an invalid trie configuration.
	ErrInvalidConfig = errors.New("trie: invalid configuration")
	// ErrCorrupt signals a violated structural invariant, as reported by Check.
	ErrCorrupt = errors.New("trie: structure corrupt")
)
