// Package partial implements the kernel's partial-object build graph: the
// mutable, possibly-cyclic draft counterparts of the full entities in
// package object, and the `build` pass that resolves a draft graph into
// full entities inserted into a Store.
//
// Each Partial*Ref type is a small sum of "Draft" (a pointer to a mutable
// draft struct -- the pointer *is* the shared-mutable-cell identity) or
// "Built" (an already-resolved object.Handle). References between drafts
// are shared pointers, so a field may be read and written through many
// holders, exactly mirroring the pointer/interior-mutability trick the
// original Rust source uses Rc<RefCell<_>> for.
package partial

import (
	"fmt"

	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// Cache memoizes cell identity -> handle for the duration of a single build
// pass (a FullToPartialCache dual, per spec.md §4.E): two partial
// references pointing at the same draft pointer resolve to the same
// handle, and a draft pointer reachable from itself with no inference rule
// to break the cycle is reported as UnresolvableCycle instead of recursing
// forever.
type Cache struct {
	handles  map[any]any
	visiting map[any]bool
}

// NewCache returns an empty build cache. Callers build one Cache per call
// to a top-level Build method and discard it afterward.
func NewCache() *Cache {
	return &Cache{handles: make(map[any]any), visiting: make(map[any]bool)}
}

// resolve runs compute() to materialize the handle for draftPtr, memoizing
// the result by draftPtr's identity and detecting unresolvable self-cycles.
// draftPtr must be a pointer (or other comparable cell-identity value); it
// is never dereferenced here.
func resolve[F any](c *Cache, draftPtr any, compute func() (object.Handle[F], error)) (object.Handle[F], error) {
	if h, ok := c.handles[draftPtr]; ok {
		return h.(object.Handle[F]), nil
	}
	if c.visiting[draftPtr] {
		var zero object.Handle[F]
		return zero, &kernelerr.UnresolvableCycle{Cell: fmt.Sprintf("%T(%p)", draftPtr, draftPtr)}
	}

	c.visiting[draftPtr] = true
	h, err := compute()
	delete(c.visiting, draftPtr)
	if err != nil {
		var zero object.Handle[F]
		return zero, err
	}

	c.handles[draftPtr] = h
	return h, nil
}
