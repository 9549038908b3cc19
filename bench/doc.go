/*
Package bench measures the priority queue variants against each other.

Every run feeds each selected variant with several iterations of words,
inserting all of them and extracting them again. Extraction order is verified
against a sorted copy of the input, so a benchmark run doubles as a large
correctness test.

Runs broadcast progress events to subscribers and produce a Report which may be
printed as text or JSON.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bench

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pqueue'
func tracer() tracing.Trace {
	return tracing.Select("pqueue")
}
