/*
Package baseline provides straightforward priority queue implementations. They
serve as comparison baselines for the Fibonacci-style heap of package fibheap.

	Variant           |  Insert    |  PeekMin   |  ExtractMin
	------------------+------------+------------+-------------
	Vector            |  O(1)      |  O(n)      |  O(n)
	LinkedList        |  O(n)      |  O(1)      |  O(1)
	DoublyLinkedList  |  O(1)      |  O(n)      |  O(n)
	BinaryHeap        |  O(log n)  |  O(1)      |  O(log n)
	BTreeQueue        |  O(log n)  |  O(log n)  |  O(log n)

All of them implement pqueue.Queue and register a string instantiation with
package pqueue on import.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package baseline

import (
	"github.com/npillmayer/pqueue"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pqueue'
func tracer() tracing.Trace {
	return tracing.Select("pqueue")
}

// Variant names used for registration with package pqueue.
const (
	VectorName           = "vector"
	LinkedListName       = "linkedlist"
	DoublyLinkedListName = "doublylinkedlist"
	BinaryHeapName       = "heap"
	BTreeName            = "btree"
)

func init() {
	pqueue.Register(VectorName, func() pqueue.Queue[string] { return NewVector[string]() })
	pqueue.Register(LinkedListName, func() pqueue.Queue[string] { return NewLinkedList[string]() })
	pqueue.Register(DoublyLinkedListName, func() pqueue.Queue[string] { return NewDoublyLinkedList[string]() })
	pqueue.Register(BinaryHeapName, func() pqueue.Queue[string] { return NewBinaryHeap[string]() })
	pqueue.Register(BTreeName, func() pqueue.Queue[string] { return NewBTreeQueue[string]() })
}

func empty[T any]() (T, error) {
	var zero T
	return zero, pqueue.ErrEmptyStructure
}
