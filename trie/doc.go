/*
Package trie implements a bit-level PATRICIA trie over bitkey.Key keys.

Every node of the trie holds exactly one key/value pair and doubles as a
branch point: it carries a critical index and two child references. There are
no leaf nodes and no nil children. A child reference pointing to a node with
a greater critical index is a forward edge, descending into the trie. Any other
child reference is a back-link to an ancestor (or the node itself) and
terminates the path; the key stored at the target of a back-link is the key
"living" at that end of the path.

Keys of arbitrary bit length, including keys which are prefixes of each other,
are distinguished by testing branch positions instead of raw bits. Bit i of a
key contributes position 2i, which tells whether the key still has a bit i,
and position 2i+1, which holds the bit itself. The critical index of a node
is such a branch position, not a raw bit index: a node branching on bit i of
two equally long keys has critical index 2i+1. The root has critical index -1,
below every branch position, rather than the bit length of its key, and only
uses its first child.

Nodes live in an arena and reference each other by index. Values are boxed,
so a *V obtained from Find or an Iterator stays valid until its key is
removed, even if the removal of another key moves the pair between nodes.

A Trie is not safe for concurrent use. Any insertion or removal invalidates
all iterators of the trie.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package trie

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
