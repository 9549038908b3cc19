package fibheap

import (
	"bytes"
	"math/bits"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func rootDegrees(h *Heap[int]) map[int]int {
	degrees := make(map[int]int)
	h.nodes.each(h.roots, func(r handle) bool {
		degrees[h.nodes.at(r).degree]++
		return true
	})
	return degrees
}

func TestConsolidationLeavesUniqueDegrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	for n := 2; n <= 70; n++ {
		h := New[int]()
		for i := n; i > 0; i-- {
			h.Insert(i)
		}
		h.ExtractMin()
		// n-1 nodes in binomial trees: one root per set bit
		if h.Roots() != bits.OnesCount(uint(n-1)) {
			t.Errorf("n=%d: expected %d roots, have %d", n, bits.OnesCount(uint(n-1)), h.Roots())
		}
		for d, cnt := range rootDegrees(h) {
			if cnt > 1 {
				t.Errorf("n=%d: %d roots of degree %d", n, cnt, d)
			}
		}
		checkHeap(t, h)
	}
}

func TestPowerOfTwoConsolidatesToSingleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	h := New[int]()
	for i := 0; i <= 64; i++ {
		h.Insert(i)
	}
	h.ExtractMin()
	if h.Roots() != 1 {
		t.Fatalf("64 values should form a single tree, have %d roots", h.Roots())
	}
	root := h.nodes.at(h.roots)
	if root.degree != 6 {
		t.Errorf("expected root degree 6, have %d", root.degree)
	}
	if h.min != h.roots {
		t.Errorf("single root must be the minimum")
	}
}

func TestChildrenArePromotedOnExtract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	h := New[int]()
	for i := 0; i <= 8; i++ {
		h.Insert(i)
	}
	h.ExtractMin() // one tree of degree 3, rooted at 1
	if v, _ := h.PeekMin(); v != 1 {
		t.Fatalf("expected minimum 1, have %d", v)
	}
	h.ExtractMin() // children of 1 become roots, then consolidate 7 nodes
	if h.Roots() != 3 {
		t.Errorf("7 nodes should be held in 3 trees, have %d", h.Roots())
	}
	h.nodes.each(h.roots, func(r handle) bool {
		if h.nodes.at(r).parent != none {
			t.Errorf("root %d still references a parent", r)
		}
		return true
	})
	checkHeap(t, h)
}

func TestDegreeSlotsGrow(t *testing.T) {
	h := New[int]()
	h.size = 1
	slots := h.degreeSlots()
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots for a single node, have %d", len(slots))
	}
	for _, s := range slots {
		if s != none {
			t.Errorf("slots must be cleared")
		}
	}
	h.scratch = []handle{4, 5, 6, 7}
	h.size = 3
	slots = h.degreeSlots()
	if len(slots) != 3 || slots[0] != none || slots[2] != none {
		t.Errorf("reused scratch slots not cleared: %v", slots)
	}
}

func TestCheckDetectsBrokenHeapOrder(t *testing.T) {
	h := New[int]()
	for i := 0; i < 5; i++ {
		h.Insert(i)
	}
	h.ExtractMin() // single tree of degree 2, rooted at 1
	root := h.nodes.at(h.roots)
	child := h.nodes.at(root.child)
	child.value = -5
	if err := h.Check(); err == nil {
		t.Errorf("expected Check to detect a child smaller than its parent")
	}
}

func TestCheckDetectsBrokenLinks(t *testing.T) {
	h := New[int]()
	for i := 0; i < 4; i++ {
		h.Insert(i)
	}
	r := h.nodes.at(h.roots)
	h.nodes.at(r.right).left = r.right // break the back link
	if err := h.Check(); err == nil {
		t.Errorf("expected Check to detect broken sibling links")
	}
}

func TestDumpAndDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	h := New[int]()
	var buf bytes.Buffer
	h.Dump(&buf)
	if !strings.Contains(buf.String(), "empty") {
		t.Errorf("dump of empty heap should say so, is %q", buf.String())
	}
	for i := 5; i > 0; i-- {
		h.Insert(i)
	}
	h.ExtractMin()
	buf.Reset()
	h.Dump(&buf)
	t.Logf("dump:\n%s", buf.String())
	if lines := strings.Count(buf.String(), "\n"); lines != 4 {
		t.Errorf("expected 4 dump lines, have %d", lines)
	}
	if !strings.Contains(buf.String(), "*2 ") {
		t.Errorf("minimum 2 should be marked in dump")
	}
	buf.Reset()
	Heap2Dot(h, &buf)
	dot := buf.String()
	t.Logf("dot:\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT graph: %q", dot)
	}
	if strings.Count(dot, "->") != 3 {
		t.Errorf("expected 3 parent/child edges in a single binomial tree of 4 nodes")
	}
}
