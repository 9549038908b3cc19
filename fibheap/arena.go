package fibheap

// handle addresses a node slot in an arena.
type handle int32

// none is the absent handle.
const none handle = -1

// node is a slot of the arena.
//
// left and right reference the siblings within whichever circular list
// currently contains the node. A node which is not a member of any list has
// left == right == none ("detached").
type node[T any] struct {
	value  T
	degree int    // number of direct children
	parent handle // none for members of the root list
	child  handle // an arbitrary child, none for leafs
	left   handle
	right  handle
	inUse  bool
}

func (n *node[T]) detached() bool {
	return n.left == none
}

// arena owns all nodes of a heap. Node lifetime is slot lifetime.
type arena[T any] struct {
	slots []node[T]
	free  []handle // recycled slots
	live  int      // number of slots in use
}

// alloc creates a detached singleton node for value.
func (a *arena[T]) alloc(value T) handle {
	var h handle
	if k := len(a.free); k > 0 {
		h = a.free[k-1]
		a.free = a.free[:k-1]
	} else {
		a.slots = append(a.slots, node[T]{})
		h = handle(len(a.slots) - 1)
	}
	a.slots[h] = node[T]{
		value:  value,
		parent: none,
		child:  none,
		left:   none,
		right:  none,
		inUse:  true,
	}
	a.live++
	return h
}

// release frees the slot of a detached node without children.
func (a *arena[T]) release(h handle) {
	n := a.at(h)
	assert(n.detached(), "arena.release: node is still linked")
	assert(n.child == none, "arena.release: node still has children")
	var zero T
	n.value = zero // drop reference for the garbage collector
	n.inUse = false
	a.free = append(a.free, h)
	a.live--
}

func (a *arena[T]) at(h handle) *node[T] {
	assert(h >= 0 && int(h) < len(a.slots), "arena: handle out of range")
	n := &a.slots[h]
	assert(n.inUse, "arena: access to released node")
	return n
}

// reset drops all nodes.
func (a *arena[T]) reset() {
	a.slots = nil
	a.free = nil
	a.live = 0
}
