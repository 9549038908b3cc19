package baseline

import (
	"cmp"

	"github.com/tidwall/btree"
)

const btreeDegree = 32

// BTreeQueue keeps values in an ordered B-tree. Every value is tagged with an
// insertion sequence number, so equal values are distinct tree items.
type BTreeQueue[T any] struct {
	tree *btree.BTree
	seq  uint64
}

// btreeItem orders by value, then by insertion sequence. The tree's context
// carries the value order.
type btreeItem[T any] struct {
	value T
	seq   uint64
}

func (it *btreeItem[T]) Less(than btree.Item, ctx interface{}) bool {
	less := ctx.(func(a, b T) bool)
	other := than.(*btreeItem[T])
	if less(it.value, other.value) {
		return true
	}
	if less(other.value, it.value) {
		return false
	}
	return it.seq < other.seq
}

// NewBTreeQueue creates an empty B-tree queue for an ordered type.
func NewBTreeQueue[T cmp.Ordered]() *BTreeQueue[T] {
	return NewBTreeQueueWithLess(cmp.Less[T])
}

// NewBTreeQueueWithLess creates an empty B-tree queue ordered by less.
func NewBTreeQueueWithLess[T any](less func(a, b T) bool) *BTreeQueue[T] {
	return &BTreeQueue[T]{tree: btree.New(btreeDegree, less)}
}

func (q *BTreeQueue[T]) Size() int     { return q.tree.Len() }
func (q *BTreeQueue[T]) IsEmpty() bool { return q.tree.Len() == 0 }

func (q *BTreeQueue[T]) Insert(value T) {
	q.seq++
	if old := q.tree.ReplaceOrInsert(&btreeItem[T]{value: value, seq: q.seq}); old != nil {
		tracer().Errorf("btree queue: item %d replaced unexpectedly", q.seq)
	}
}

func (q *BTreeQueue[T]) PeekMin() (T, error) {
	item := q.tree.Min()
	if item == nil {
		return empty[T]()
	}
	return item.(*btreeItem[T]).value, nil
}

func (q *BTreeQueue[T]) ExtractMin() (T, error) {
	item := q.tree.DeleteMin()
	if item == nil {
		return empty[T]()
	}
	return item.(*btreeItem[T]).value, nil
}
