package pqueue

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor creates an empty queue of strings for a registered variant.
//
// The harnesses work on words, therefore the registry is specialized to string
// values. Generic instantiations are available from the variant packages.
type Constructor func() Queue[string]

var (
	// mu guards the registry.
	mu       sync.RWMutex
	registry = make(map[string]Constructor)
)

// Register makes a queue variant available under name. It panics if name is
// empty, the constructor is nil or the name is already taken.
// This is intended to be called from init() functions.
func Register(name string, ctor Constructor) {
	mu.Lock()
	defer mu.Unlock()
	assert(name != "", "Register: variant name must not be empty")
	assert(ctor != nil, "Register: constructor must not be nil")
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("priority queue variant already registered with name %q", name))
	}
	registry[name] = ctor
	T().Debugf("pqueue: registered variant %q", name)
}

// NewQueue creates an empty queue of the variant registered under name.
func NewQueue(name string) (Queue[string], error) {
	mu.RLock()
	ctor, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return ctor(), nil
}

// Variants returns the names of all registered variants in lexical order.
func Variants() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
