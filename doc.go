/*
Package pqueue offers interchangeable priority queue implementations behind a
common contract.

Priority Queues

A priority queue holds values of a totally ordered type and hands them back
smallest first. Every implementation in this module satisfies

	Queue[T]

with operations Insert, PeekMin, ExtractMin, Size and IsEmpty. Peeking at or
extracting from an empty queue fails with ErrEmptyStructure.

The interesting implementation lives in sub-package fibheap: a forest of
heap-ordered multiway trees, connected through a circular root list, in the
manner of a Fibonacci heap. Insert and PeekMin are O(1), ExtractMin is
O(log n) amortized through lazy consolidation of the forest.

Sub-package baseline holds simpler implementations (unsorted vector, sorted
linked lists, binary heap, B-tree). They exist as comparison baselines for the
benchmarking harness in sub-package bench and for the interactive command
harness in cmd/pqtest.

Variants register themselves under a name:

	q, err := pqueue.NewQueue("fibonacci")

Clients have to import the variant packages (usually for side effects only) to
make them available.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package pqueue

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
