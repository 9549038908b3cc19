/*
Package wordsource provides word lists to feed priority queues with.

Words are either generated at random or read from text and HTML files. File
content is split into words at line-break opportunities as defined by
Unicode UAX#14, with surrounding whitespace removed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordsource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pqueue'
func tracer() tracing.Trace {
	return tracing.Select("pqueue")
}
