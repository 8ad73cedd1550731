/*
Package textfile provides API helpers to load UTF-8 text files as word
indexes.

Text is split into words at line-break opportunities as defined by Unicode
UAX #14, with surrounding punctuation trimmed. Words are counted in a
patricia.Map, which keeps them in lexicographic order.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
