/*
Package patricia offers ordered sets and maps backed by a bit-level PATRICIA
trie.

Keys of sets and maps are projected to bit strings by key makers (see package
keymaker). The projection preserves the natural order of the key type, so
iterating a Set or Map yields its elements in ascending key order: integers
numerically, strings and byte slices lexicographically, with a prefix sorting
before its extensions.

	var words patricia.Set[string]
	words.Insert("foo")
	words.Insert("bar")
	for w := range words.All() {
	    fmt.Println(w) // bar, foo
	}

The zero values of Set and Map are ready to use with the built-in key maker
for their key type. Clients with key types not covered by package keymaker
supply their own key maker to NewSet or NewMap.

PATRICIA

From Donald R. Morrison, 1968:

PATRICIA is an algorithm which provides a flexible means of storing, indexing,
and retrieving information in a large file. […] It does not require
rearrangement of text or index as new material is added. It requires a
minimum restriction of format of text and of keys; it is extremely flexible
in the variety of keys it will respond to. It retrieves information in
response to keys furnished by the user with a quantity of computation which
has a bound which depends linearly on the length of keys and the number of
their proper occurrences and is otherwise independent of the size of the
library.

_________________________________________________________________________

Sets and maps are not safe for concurrent use. Inserting or erasing elements
invalidates all iterators of a container.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package patricia

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// PatriciaError is an error type for the patricia module
type PatriciaError string

func (e PatriciaError) Error() string {
	return string(e)
}

// ErrNoKeyMaker is flagged whenever a container is created for a key type
// without a built-in key maker and no key maker is supplied.
const ErrNoKeyMaker = PatriciaError("no key maker for key type")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
