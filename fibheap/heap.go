package fibheap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/npillmayer/pqueue"
)

// Heap is a priority queue built from a forest of heap-ordered trees.
//
// A Heap created by New or NewWithLess is empty. The zero value is not usable.
//
//	Operation     |  cost
//	--------------+---------------------
//	Insert        |  O(1)
//	PeekMin       |  O(1)
//	ExtractMin    |  O(log n) amortized
//	Size/IsEmpty  |  O(1)
type Heap[T any] struct {
	less    func(a, b T) bool
	nodes   arena[T]
	roots   handle   // anchor of the root list
	min     handle   // root with the smallest value, none iff empty
	size    int      // number of values held
	scratch []handle // degree slots, reused by consolidate
	// consolidated is true while root degrees are known to be unique
	consolidated bool
}

var _ pqueue.Queue[int] = (*Heap[int])(nil)

// New creates an empty heap for an ordered value type. Values are compared
// with cmp.Less, which is a total order for floating point values as well.
func New[T cmp.Ordered]() *Heap[T] {
	return NewWithLess(cmp.Less[T])
}

// NewWithLess creates an empty heap ordering values by less, which has to be a
// strict weak ordering.
func NewWithLess[T any](less func(a, b T) bool) *Heap[T] {
	assert(less != nil, "fibheap.NewWithLess: less must not be nil")
	return &Heap[T]{
		less:         less,
		roots:        none,
		min:          none,
		consolidated: true,
	}
}

// Size returns the number of values in the heap.
func (h *Heap[T]) Size() int {
	return h.size
}

// IsEmpty reports whether the heap holds no values.
func (h *Heap[T]) IsEmpty() bool {
	return h.size == 0
}

// Insert adds a value as a singleton tree to the root list. No consolidation
// takes place.
func (h *Heap[T]) Insert(value T) {
	x := h.nodes.alloc(value)
	h.nodes.insertAdjacent(x, &h.roots)
	h.size++
	h.consolidated = false
	if h.min == none || h.less(value, h.nodes.at(h.min).value) {
		h.min = x
	}
}

// PeekMin returns the smallest value without removing it.
func (h *Heap[T]) PeekMin() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, pqueue.ErrEmptyStructure
	}
	return h.nodes.at(h.min).value, nil
}

// ExtractMin removes the smallest value from the heap and returns it.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, pqueue.ErrEmptyStructure
	}
	z := h.min
	zn := h.nodes.at(z)
	value := zn.value
	h.nodes.unlink(z, &h.roots)
	for zn.child != none {
		c := zn.child
		h.nodes.unlink(c, &zn.child)
		h.nodes.at(c).parent = none
		h.nodes.insertAdjacent(c, &h.roots)
	}
	zn.degree = 0
	h.nodes.release(z)
	h.size--
	if h.size == 0 {
		h.min = none
		h.consolidated = true
		assert(h.roots == none, "ExtractMin: empty heap with non-empty root list")
		return value, nil
	}
	h.consolidate()
	return value, nil
}

// Nodes returns the number of nodes allocated in the heap's arena. It equals
// Size() for a well-formed heap.
func (h *Heap[T]) Nodes() int {
	return h.nodes.live
}

// Roots returns the number of trees in the forest.
func (h *Heap[T]) Roots() int {
	n := 0
	h.nodes.each(h.roots, func(handle) bool {
		n++
		return true
	})
	return n
}

// Clear removes all values from the heap.
func (h *Heap[T]) Clear() {
	h.nodes.reset()
	h.roots, h.min = none, none
	h.size = 0
	h.scratch = nil
	h.consolidated = true
}
