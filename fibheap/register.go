package fibheap

import "github.com/npillmayer/pqueue"

// VariantName is the name under which heaps of strings are registered with
// package pqueue.
const VariantName = "fibonacci"

func init() {
	pqueue.Register(VariantName, func() pqueue.Queue[string] {
		return New[string]()
	})
}
