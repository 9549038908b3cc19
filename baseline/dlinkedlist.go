package baseline

import "cmp"

type dlCell[T any] struct {
	value      T
	prev, next *dlCell[T]
}

// DoublyLinkedList keeps values unsorted in a doubly linked list. New values
// are pushed at the front; extraction scans for the minimum and unlinks it in
// place.
type DoublyLinkedList[T any] struct {
	less func(a, b T) bool
	head *dlCell[T]
	size int
}

// NewDoublyLinkedList creates an empty doubly linked list queue for an
// ordered type.
func NewDoublyLinkedList[T cmp.Ordered]() *DoublyLinkedList[T] {
	return NewDoublyLinkedListWithLess(cmp.Less[T])
}

// NewDoublyLinkedListWithLess creates an empty doubly linked list queue
// ordered by less.
func NewDoublyLinkedListWithLess[T any](less func(a, b T) bool) *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{less: less}
}

func (d *DoublyLinkedList[T]) Size() int     { return d.size }
func (d *DoublyLinkedList[T]) IsEmpty() bool { return d.size == 0 }

func (d *DoublyLinkedList[T]) Insert(value T) {
	c := &dlCell[T]{value: value, next: d.head}
	if d.head != nil {
		d.head.prev = c
	}
	d.head = c
	d.size++
}

func (d *DoublyLinkedList[T]) PeekMin() (T, error) {
	if d.head == nil {
		return empty[T]()
	}
	return d.smallest().value, nil
}

func (d *DoublyLinkedList[T]) ExtractMin() (T, error) {
	if d.head == nil {
		return empty[T]()
	}
	c := d.smallest()
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		d.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	}
	c.prev, c.next = nil, nil
	d.size--
	return c.value, nil
}

func (d *DoublyLinkedList[T]) smallest() *dlCell[T] {
	m := d.head
	for c := d.head.next; c != nil; c = c.next {
		if d.less(c.value, m.value) {
			m = c
		}
	}
	return m
}
