/*
Package fibheap implements a priority queue as a forest of heap-ordered
multiway trees, in the manner of a Fibonacci heap.

Roots of all trees are connected through a circular, doubly linked root list.
The children of every node form a circular sibling list of their own. A
separate reference points to the root holding the smallest value.

Insert splices a singleton tree into the root list and is O(1). PeekMin reads
the minimum reference and is O(1). ExtractMin removes the minimum root, promotes
its children to the root list and then consolidates: trees of equal degree are
linked pairwise until every root has a distinct degree. This bounds the length
of the root list by O(log n), and the amortized cost of ExtractMin is O(log n).

Decrease-key and deletion of arbitrary values are not supported, so no node
ever loses a child after having been linked. Every tree therefore is a binomial
tree and node degrees are bounded by log₂ n.

Nodes live in an arena and reference each other through integer handles. Slots
of extracted nodes are recycled.

Heaps are not safe for concurrent use.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fibheap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pqueue'
func tracer() tracing.Trace {
	return tracing.Select("pqueue")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
