package fibheap

// Circular doubly linked lists of nodes.
//
// A list is identified by an anchor handle; the list is empty iff the anchor
// is none. The same primitives serve the root list and every child list.

// insertAdjacent splices the detached node h into the list anchored at
// *anchor, immediately to the right of the anchor. An empty list becomes the
// singleton {h} with h as its anchor.
func (a *arena[T]) insertAdjacent(h handle, anchor *handle) {
	n := a.at(h)
	assert(n.detached(), "insertAdjacent: node is already member of a list")
	if *anchor == none {
		n.left, n.right = h, h
		*anchor = h
		return
	}
	an := a.at(*anchor)
	n.left = *anchor
	n.right = an.right
	a.at(an.right).left = h
	an.right = h
}

// unlink removes h from the list anchored at *anchor and leaves it detached.
// If h is the anchor, the anchor moves to h's right neighbour; if h is the
// sole member, the list becomes empty.
//
// Unlinking a detached node is a no-op.
func (a *arena[T]) unlink(h handle, anchor *handle) {
	n := a.at(h)
	if n.detached() {
		return
	}
	assert(*anchor != none, "unlink: node is linked, but anchored list is empty")
	if n.right == h {
		assert(*anchor == h, "unlink: sole member of a list is not its anchor")
		*anchor = none
	} else {
		if *anchor == h {
			*anchor = n.right
		}
		a.at(n.right).left = n.left
		a.at(n.left).right = n.right
	}
	n.left, n.right = none, none
}

// each calls f for every member of the list anchored at anchor, starting with
// the anchor and following right links. f must not modify the list.
// Iteration stops early if f returns false.
func (a *arena[T]) each(anchor handle, f func(h handle) bool) {
	if anchor == none {
		return
	}
	h := anchor
	for {
		next := a.at(h).right
		if !f(h) {
			return
		}
		if next == anchor {
			return
		}
		h = next
	}
}
