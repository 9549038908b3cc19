package fibheap

import (
	"errors"
	"fmt"
)

// ErrInvalidHeap signals a violated structural invariant.
var ErrInvalidHeap = errors.New("fibheap: invalid heap")

// Check validates structural heap invariants:
//
//   - every list (root list and child lists) is circular with consistent
//     left/right links,
//   - roots have no parent, children reference their parent,
//   - heap order: no child is smaller than its parent,
//   - degree equals the number of direct children and a tree of degree k
//     holds exactly 2ᵏ nodes,
//   - the minimum reference points to a root not greater than any value,
//   - node count, arena count and size agree,
//   - after consolidation no two roots share a degree.
//
// Check is O(n) and intended for tests and debugging.
func (h *Heap[T]) Check() error {
	if h == nil {
		return fmt.Errorf("%w: nil heap", ErrInvalidHeap)
	}
	if h.size == 0 {
		if h.roots != none || h.min != none {
			return fmt.Errorf("%w: empty heap must not reference nodes", ErrInvalidHeap)
		}
		if h.nodes.live != 0 {
			return fmt.Errorf("%w: empty heap holds %d nodes", ErrInvalidHeap, h.nodes.live)
		}
		return nil
	}
	if h.min == none || h.roots == none {
		return fmt.Errorf("%w: non-empty heap without minimum or roots", ErrInvalidHeap)
	}
	chk := checker[T]{h: h, budget: len(h.nodes.slots)}
	if err := chk.valid(h.min); err != nil {
		return err
	}
	minValue := h.nodes.slots[h.min].value
	degrees := make(map[int]bool)
	minIsRoot := false
	count, err := chk.list(h.roots, none, func(r handle) error {
		if r == h.min {
			minIsRoot = true
		}
		d := h.nodes.slots[r].degree
		if h.consolidated && degrees[d] {
			return fmt.Errorf("%w: two roots of degree %d after consolidation", ErrInvalidHeap, d)
		}
		degrees[d] = true
		return nil
	})
	if err != nil {
		return err
	}
	if !minIsRoot {
		return fmt.Errorf("%w: minimum is not a member of the root list", ErrInvalidHeap)
	}
	for i := range h.nodes.slots {
		n := &h.nodes.slots[i]
		if n.inUse && h.less(n.value, minValue) {
			return fmt.Errorf("%w: node %d is smaller than minimum", ErrInvalidHeap, i)
		}
	}
	if count != h.size {
		return fmt.Errorf("%w: forest holds %d nodes, size is %d", ErrInvalidHeap, count, h.size)
	}
	if h.nodes.live != h.size {
		return fmt.Errorf("%w: arena holds %d nodes, size is %d", ErrInvalidHeap, h.nodes.live, h.size)
	}
	return nil
}

// checker walks the forest. budget bounds the number of visited nodes, so a
// broken list cannot trap the walk in a cycle.
type checker[T any] struct {
	h      *Heap[T]
	budget int
}

func (c *checker[T]) valid(x handle) error {
	if x < 0 || int(x) >= len(c.h.nodes.slots) {
		return fmt.Errorf("%w: handle %d out of range", ErrInvalidHeap, x)
	}
	if !c.h.nodes.slots[x].inUse {
		return fmt.Errorf("%w: handle %d references a released node", ErrInvalidHeap, x)
	}
	return nil
}

// list checks the circular list anchored at anchor, whose members all have
// parent p, and the subtrees below the members. It returns the number of
// nodes in all of these subtrees.
func (c *checker[T]) list(anchor, p handle, visit func(handle) error) (int, error) {
	total := 0
	x := anchor
	for {
		if err := c.valid(x); err != nil {
			return 0, err
		}
		if c.budget--; c.budget < 0 {
			return 0, fmt.Errorf("%w: list below %d does not close", ErrInvalidHeap, p)
		}
		n := &c.h.nodes.slots[x]
		if n.parent != p {
			return 0, fmt.Errorf("%w: node %d has parent %d, expected %d", ErrInvalidHeap, x, n.parent, p)
		}
		if err := c.valid(n.right); err != nil {
			return 0, err
		}
		if c.h.nodes.slots[n.right].left != x {
			return 0, fmt.Errorf("%w: broken sibling links at node %d", ErrInvalidHeap, x)
		}
		if p != none && c.h.less(n.value, c.h.nodes.slots[p].value) {
			return 0, fmt.Errorf("%w: heap order violated below node %d", ErrInvalidHeap, p)
		}
		if visit != nil {
			if err := visit(x); err != nil {
				return 0, err
			}
		}
		sub, err := c.tree(x)
		if err != nil {
			return 0, err
		}
		total += sub
		x = n.right
		if x == anchor {
			break
		}
	}
	return total, nil
}

// tree checks the subtree rooted at x and returns its node count.
func (c *checker[T]) tree(x handle) (int, error) {
	n := &c.h.nodes.slots[x]
	if n.child == none {
		if n.degree != 0 {
			return 0, fmt.Errorf("%w: leaf %d has degree %d", ErrInvalidHeap, x, n.degree)
		}
		return 1, nil
	}
	children := 0
	below, err := c.list(n.child, x, func(handle) error {
		children++
		return nil
	})
	if err != nil {
		return 0, err
	}
	if children != n.degree {
		return 0, fmt.Errorf("%w: node %d has degree %d but %d children",
			ErrInvalidHeap, x, n.degree, children)
	}
	if below+1 != 1<<n.degree {
		return 0, fmt.Errorf("%w: tree at %d of degree %d holds %d nodes",
			ErrInvalidHeap, x, n.degree, below+1)
	}
	return below + 1, nil
}
