package baseline

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/pqueue"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intQueues() map[string]pqueue.Queue[int] {
	return map[string]pqueue.Queue[int]{
		VectorName:           NewVector[int](),
		LinkedListName:       NewLinkedList[int](),
		DoublyLinkedListName: NewDoublyLinkedList[int](),
		BinaryHeapName:       NewBinaryHeap[int](),
		BTreeName:            NewBTreeQueue[int](),
	}
}

func TestEmptyQueues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	for name, q := range intQueues() {
		if _, err := q.PeekMin(); !errors.Is(err, pqueue.ErrEmptyStructure) {
			t.Errorf("%s: PeekMin on empty queue returned %v", name, err)
		}
		if _, err := q.ExtractMin(); !errors.Is(err, pqueue.ErrEmptyStructure) {
			t.Errorf("%s: ExtractMin on empty queue returned %v", name, err)
		}
		if !q.IsEmpty() || q.Size() != 0 {
			t.Errorf("%s: queue should still be empty", name)
		}
	}
}

func TestSortRandomInts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	r := rand.New(rand.NewSource(99))
	values := make([]int, 500)
	for i := range values {
		values[i] = r.Intn(100) // plenty of duplicates
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	for name, q := range intQueues() {
		pqueue.InsertAll(q, values...)
		if q.Size() != len(values) {
			t.Fatalf("%s: size = %d, expected %d", name, q.Size(), len(values))
		}
		got := pqueue.Drain(q)
		for i := range sorted {
			if got[i] != sorted[i] {
				t.Fatalf("%s: position %d holds %d, expected %d", name, i, got[i], sorted[i])
			}
		}
	}
}

func TestLinkedListStaysSorted(t *testing.T) {
	l := NewLinkedList[string]()
	pqueue.InsertAll[string](l, "hello", "zoo", "tom", "abc", "inside")
	var got []string
	for c := l.head; c != nil; c = c.next {
		got = append(got, c.value)
	}
	want := []string{"abc", "hello", "inside", "tom", "zoo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list is %v, expected %v", got, want)
		}
	}
}

func TestDoublyLinkedListUnlinksInMiddle(t *testing.T) {
	d := NewDoublyLinkedList[int]()
	pqueue.InsertAll[int](d, 5, 1, 7) // list order: 7, 1, 5
	if v, _ := d.ExtractMin(); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if d.head.value != 7 || d.head.next.value != 5 || d.head.next.prev != d.head {
		t.Errorf("list not relinked correctly after removing middle cell")
	}
}

func TestBTreeKeepsDuplicates(t *testing.T) {
	q := NewBTreeQueue[string]()
	pqueue.InsertAll[string](q, "A", "B", "A", "A")
	if q.Size() != 4 {
		t.Fatalf("duplicates must not replace each other, size = %d", q.Size())
	}
	got := pqueue.Drain[string](q)
	want := []string{"A", "A", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drained %v, expected %v", got, want)
		}
	}
}

func TestBinaryHeapWithLess(t *testing.T) {
	h := NewBinaryHeapWithLess(func(a, b int) bool { return a > b })
	pqueue.InsertAll[int](h, 1, 4, 2, 8)
	if v, _ := h.PeekMin(); v != 8 {
		t.Errorf("max-ordered heap should peek 8, peeks %d", v)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, name := range []string{VectorName, LinkedListName, DoublyLinkedListName, BinaryHeapName, BTreeName} {
		if _, err := pqueue.NewQueue(name); err != nil {
			t.Errorf("variant %q not registered: %v", name, err)
		}
	}
}
