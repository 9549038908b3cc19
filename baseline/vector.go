package baseline

import (
	"cmp"
	"slices"
)

// Vector keeps values unsorted in a slice. Finding the minimum is a linear
// scan.
type Vector[T any] struct {
	less    func(a, b T) bool
	storage []T
}

// NewVector creates an empty vector queue for an ordered type.
func NewVector[T cmp.Ordered]() *Vector[T] {
	return NewVectorWithLess(cmp.Less[T])
}

// NewVectorWithLess creates an empty vector queue ordered by less.
func NewVectorWithLess[T any](less func(a, b T) bool) *Vector[T] {
	return &Vector[T]{less: less}
}

func (v *Vector[T]) Size() int     { return len(v.storage) }
func (v *Vector[T]) IsEmpty() bool { return len(v.storage) == 0 }

// Insert appends value.
func (v *Vector[T]) Insert(value T) {
	v.storage = append(v.storage, value)
}

// PeekMin scans for the smallest value.
func (v *Vector[T]) PeekMin() (T, error) {
	if v.IsEmpty() {
		return empty[T]()
	}
	return v.storage[v.smallest()], nil
}

// ExtractMin scans for the smallest value and removes it.
func (v *Vector[T]) ExtractMin() (T, error) {
	if v.IsEmpty() {
		return empty[T]()
	}
	i := v.smallest()
	value := v.storage[i]
	v.storage = slices.Delete(v.storage, i, i+1)
	return value, nil
}

func (v *Vector[T]) smallest() int {
	k := 0
	for i := 1; i < len(v.storage); i++ {
		if v.less(v.storage[i], v.storage[k]) {
			k = i
		}
	}
	return k
}
