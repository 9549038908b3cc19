package baseline

import "cmp"

// BinaryHeap is an array-backed binary min-heap.
type BinaryHeap[T any] struct {
	less func(a, b T) bool
	data []T
}

// NewBinaryHeap creates an empty binary heap for an ordered type.
func NewBinaryHeap[T cmp.Ordered]() *BinaryHeap[T] {
	return NewBinaryHeapWithLess(cmp.Less[T])
}

// NewBinaryHeapWithLess creates an empty binary heap ordered by less.
func NewBinaryHeapWithLess[T any](less func(a, b T) bool) *BinaryHeap[T] {
	return &BinaryHeap[T]{less: less}
}

func (h *BinaryHeap[T]) Size() int     { return len(h.data) }
func (h *BinaryHeap[T]) IsEmpty() bool { return len(h.data) == 0 }

func (h *BinaryHeap[T]) Insert(value T) {
	h.data = append(h.data, value)
	h.up(len(h.data) - 1)
}

func (h *BinaryHeap[T]) PeekMin() (T, error) {
	if h.IsEmpty() {
		return empty[T]()
	}
	return h.data[0], nil
}

func (h *BinaryHeap[T]) ExtractMin() (T, error) {
	if h.IsEmpty() {
		return empty[T]()
	}
	v := h.data[0]
	n := len(h.data) - 1
	h.data[0] = h.data[n]
	var zero T
	h.data[n] = zero
	h.data = h.data[:n]
	if n > 0 {
		h.down(0)
	}
	return v, nil
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }

func (h *BinaryHeap[T]) up(j int) {
	for j > 0 {
		i := parent(j)
		if !h.less(h.data[j], h.data[i]) {
			break
		}
		h.data[i], h.data[j] = h.data[j], h.data[i]
		j = i
	}
}

func (h *BinaryHeap[T]) down(i int) {
	n := len(h.data)
	for {
		j := left(i)
		if j >= n {
			return
		}
		if r := j + 1; r < n && h.less(h.data[r], h.data[j]) {
			j = r
		}
		if !h.less(h.data[j], h.data[i]) {
			return
		}
		h.data[i], h.data[j] = h.data[j], h.data[i]
		i = j
	}
}
