package fibheap

import "math/bits"

/*
Consolidation, following CLRS:

	CONSOLIDATE(H)
	  for each node w in the root list of H
	    x := w ; d := degree[x]
	    while A[d] ≠ NIL
	      y := A[d]
	      if key[x] > key[y] then exchange x ↔ y
	      LINK(H, y, x)
	      A[d] := NIL ; d := d+1
	    A[d] := x
	  min[H] := NIL
	  for each A[i] ≠ NIL
	    add A[i] to the root list of H
	    if min[H] = NIL or key[A[i]] < key[min[H]] then min[H] := A[i]

Roots are popped off the root list one at a time instead of iterating over it,
so the root list is empty when the slots are complete.
*/
func (h *Heap[T]) consolidate() {
	slots := h.degreeSlots()
	links := 0
	for h.roots != none {
		x := h.roots
		h.nodes.unlink(x, &h.roots)
		d := h.nodes.at(x).degree
		for {
			for d >= len(slots) {
				slots = append(slots, none)
			}
			y := slots[d]
			if y == none {
				break
			}
			if h.less(h.nodes.at(y).value, h.nodes.at(x).value) {
				x, y = y, x
			}
			h.link(y, x)
			links++
			slots[d] = none
			d++
		}
		slots[d] = x
	}
	h.min = none
	for _, r := range slots {
		if r == none {
			continue
		}
		h.nodes.insertAdjacent(r, &h.roots)
		if h.min == none || h.less(h.nodes.at(r).value, h.nodes.at(h.min).value) {
			h.min = r
		}
	}
	h.scratch = slots
	h.consolidated = true
	tracer().Debugf("fibheap: consolidated %d values, %d links, degree slots=%d",
		h.size, links, len(slots))
}

// link makes root y a child of root x. Both have to be detached from the root
// list and heap order has to allow y below x.
func (h *Heap[T]) link(y, x handle) {
	h.nodes.unlink(y, &h.roots)
	yn, xn := h.nodes.at(y), h.nodes.at(x)
	assert(yn.parent == none && xn.parent == none, "link: nodes must be roots")
	assert(!h.less(yn.value, xn.value), "link: heap order violated")
	yn.parent = x
	h.nodes.insertAdjacent(y, &xn.child)
	xn.degree++
}

// degreeSlots returns a cleared slot slice of length ⌊log₂ n⌋+2, which is
// enough for binomial trees of n nodes. consolidate grows it if needed.
func (h *Heap[T]) degreeSlots() []handle {
	want := bits.Len(uint(h.size)) + 1
	slots := h.scratch[:0]
	if cap(slots) < want {
		slots = make([]handle, 0, want)
	}
	slots = slots[:want]
	for i := range slots {
		slots[i] = none
	}
	return slots
}
