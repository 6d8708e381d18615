package handle

import (
	"runtime"

	"github.com/arrowgc/tricolor/collectable"
)

// Node is the constraint every Handle's referent type must satisfy:
// it must be collectable (so an edge can be asserted against it) and
// comparable (so Handle can detect a "no referent" zero value without
// reflection — true of every pointer type, which is what application
// code instantiates Handle with in practice).
type Node interface {
	collectable.Collectable
	comparable
}

// Handle is a smart reference held by application code or by another
// collectable node. Parent is the collectable whose children multiset
// this handle asserts an edge into; Core is the referenced collectable,
// the zero value of T when the handle asserts no edge.
//
// A Handle value itself is not safe for concurrent copy/move from two
// goroutines at once (spec.md §5): distinct handles to the same node
// from different goroutines are fine, because all edge mutations are
// serialized by the parent's own spin-lock.
type Handle[T Node] struct {
	parent collectable.Collectable
	core   T
}

// New constructs a handle asserting parent as its owner and core as
// its (possibly zero-value) referent, inserting one edge into parent
// if core is non-zero. Panics if parent is nil — a precondition
// violation spec.md §7 classifies as fatal, not recoverable.
func New[T Node](parent collectable.Collectable, core T) *Handle[T] {
	if parent == nil {
		panic(ErrNilParent)
	}

	h := &Handle[T]{parent: parent, core: core}
	h.assertEdge()
	runtime.SetFinalizer(h, (*Handle[T]).Release)

	return h
}

// Get returns the stored referent, possibly the zero value of T.
// Dereferencing it is unsynchronized: the collector never frees a
// node still reachable via some edge chain from root, so this is safe
// as long as the referent remains reachable through some other edge.
func (h *Handle[T]) Get() T {
	return h.core
}

// Parent returns the collectable this handle's edge (if any) is
// asserted against.
func (h *Handle[T]) Parent() collectable.Collectable {
	return h.parent
}

// Clone copy-constructs a new handle to the same parent and referent,
// asserting a fresh, independent edge: releasing the clone leaves the
// original's edge intact, and vice versa (spec.md §8, handle-local
// law).
func (h *Handle[T]) Clone() *Handle[T] {
	nh := &Handle[T]{parent: h.parent, core: h.core}
	nh.assertEdge()
	runtime.SetFinalizer(nh, (*Handle[T]).Release)

	return nh
}

// Move move-constructs a new handle that takes over h's edge: h's core
// is zeroed (so h's eventual Release is a no-op for the edge), while
// h's parent field is left untouched (spec.md §9: the source remains
// destructible without asserting a second erase). No edge is
// inserted or erased by Move itself — ownership of the existing edge
// transfers without any change to the parent's multiset.
func (h *Handle[T]) Move() *Handle[T] {
	nh := &Handle[T]{parent: h.parent, core: h.core}

	var zero T
	h.core = zero

	runtime.SetFinalizer(nh, (*Handle[T]).Release)

	return nh
}

// Swap move-assigns by exchanging both fields with other: each
// handle's eventual Release will erase the edge the other used to
// hold. No edge is inserted or erased by Swap itself.
func (h *Handle[T]) Swap(other *Handle[T]) {
	h.parent, other.parent = other.parent, h.parent
	h.core, other.core = other.core, h.core
}

// Assign copy-assigns other's parent and core onto h, asserting a
// fresh edge from the new parent. It does NOT erase h's prior edge
// first — this mirrors the original source's behavior exactly
// (spec.md §4.2, §9 open question): after Assign no handle refers to
// the old edge any more, so no later Release erases it and it stays in
// the old parent's multiset. Callers that need the old edge erased
// should call h.Release() before Assign.
func (h *Handle[T]) Assign(other *Handle[T]) {
	h.parent = other.parent
	h.core = other.core
	h.assertEdge()
}

// Release erases this handle's edge, if any, exactly once, and clears
// the finalizer safety net. Calling Release more than once (including
// via both an explicit call and the finalizer) is always safe: after
// the first call core is the zero value, so later calls are no-ops.
func (h *Handle[T]) Release() {
	var zero T
	if h.parent != nil && h.core != zero {
		h.parent.Header().Erase(h.core.Header())
	}
	h.core = zero
	runtime.SetFinalizer(h, nil)
}

// assertEdge inserts an edge from h.parent to h.core when core is
// non-zero. Panics only if Insert itself rejects a non-nil child,
// which cannot happen through this package's own call sites.
func (h *Handle[T]) assertEdge() {
	var zero T
	if h.core == zero {
		return
	}
	if err := h.parent.Header().Insert(h.core.Header()); err != nil {
		panic(err)
	}
}
