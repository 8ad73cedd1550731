/*
Package bitkey implements bit-string keys for PATRICIA tries.

A key is a byte buffer together with an explicit length in bits. The length
need not be a multiple of 8; bits of the final byte beyond the key length are
not significant. Keys compare bit by bit, most significant bit of byte 0 first,
and a key which is a proper prefix of another key sorts before it.

The package also provides the bit-diff primitive used by the trie engine to
locate the first differing bit of two keys.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bitkey

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
