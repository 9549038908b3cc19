package pqueue

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Queue is the contract shared by all priority queue variants.
//
// Values are their own priorities. Implementations compare them by a total
// order and return the smallest one first. Equal values may come out in any
// order relative to each other.
//
// Implementations are not safe for concurrent use.
//
//	Operation    |  fibheap     |  heap      |  vector
//	-------------+--------------+------------+---------
//	Insert       |  O(1)        |  O(log n)  |  O(1)
//	PeekMin      |  O(1)        |  O(1)      |  O(n)
//	ExtractMin   |  O(log n)*   |  O(log n)  |  O(n)
//
//	* amortized
type Queue[T any] interface {
	// Size returns the number of values currently held.
	Size() int
	// IsEmpty is true iff Size() == 0.
	IsEmpty() bool
	// Insert adds a value. It never fails.
	Insert(value T)
	// PeekMin returns the smallest value without removing it.
	// It returns ErrEmptyStructure for an empty queue.
	PeekMin() (T, error)
	// ExtractMin removes and returns the smallest value.
	// It returns ErrEmptyStructure for an empty queue.
	ExtractMin() (T, error)
}

// PQueueError is an error type for the pqueue module.
type PQueueError string

func (e PQueueError) Error() string {
	return string(e)
}

// ErrEmptyStructure is flagged by PeekMin and ExtractMin when called on an
// empty queue. The queue stays empty and usable.
const ErrEmptyStructure = PQueueError("empty structure")

// ErrUnknownVariant is flagged when a variant name is not registered.
const ErrUnknownVariant = PQueueError("unknown priority queue variant")

// Drain extracts all values from q, smallest first, and returns them in
// extraction order. q is empty afterwards.
func Drain[T any](q Queue[T]) []T {
	values := make([]T, 0, q.Size())
	for !q.IsEmpty() {
		v, err := q.ExtractMin()
		assert(err == nil, "Drain: non-empty queue failed to extract")
		values = append(values, v)
	}
	return values
}

// InsertAll inserts values into q in slice order.
func InsertAll[T any](q Queue[T], values ...T) {
	for _, v := range values {
		q.Insert(v)
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
