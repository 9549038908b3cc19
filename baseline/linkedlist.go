package baseline

import "cmp"

type cell[T any] struct {
	value T
	next  *cell[T]
}

// LinkedList keeps values in a sorted singly linked list. The minimum is
// always at the head.
type LinkedList[T any] struct {
	less func(a, b T) bool
	head *cell[T]
	size int
}

// NewLinkedList creates an empty sorted list queue for an ordered type.
func NewLinkedList[T cmp.Ordered]() *LinkedList[T] {
	return NewLinkedListWithLess(cmp.Less[T])
}

// NewLinkedListWithLess creates an empty sorted list queue ordered by less.
func NewLinkedListWithLess[T any](less func(a, b T) bool) *LinkedList[T] {
	return &LinkedList[T]{less: less}
}

func (l *LinkedList[T]) Size() int     { return l.size }
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// Insert places value behind all values not greater than it.
func (l *LinkedList[T]) Insert(value T) {
	c := &cell[T]{value: value}
	link := &l.head
	for *link != nil && !l.less(value, (*link).value) {
		link = &(*link).next
	}
	c.next = *link
	*link = c
	l.size++
}

func (l *LinkedList[T]) PeekMin() (T, error) {
	if l.head == nil {
		return empty[T]()
	}
	return l.head.value, nil
}

func (l *LinkedList[T]) ExtractMin() (T, error) {
	if l.head == nil {
		return empty[T]()
	}
	c := l.head
	l.head = c.next
	l.size--
	return c.value, nil
}
