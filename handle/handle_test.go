package handle_test

import (
	"testing"

	"github.com/arrowgc/tricolor/collectable"
	"github.com/arrowgc/tricolor/handle"
	"github.com/stretchr/testify/require"
)

type node struct {
	collectable.Node
	id int
}

// TestNewAssertsEdge verifies construction inserts exactly one edge.
func TestNewAssertsEdge(t *testing.T) {
	parent := &node{id: 0}
	child := &node{id: 1}

	h := handle.New[*node](parent, child)
	require.Equal(t, 1, parent.Count(&child.Node))
	require.Same(t, child, h.Get())
}

// TestNewNilCoreAssertsNoEdge covers a default-referent handle.
func TestNewNilCoreAssertsNoEdge(t *testing.T) {
	parent := &node{id: 0}
	h := handle.New[*node](parent, nil)
	require.Equal(t, 0, parent.Size())
	require.Nil(t, h.Get())
}

// TestNewNilParentPanics documents the fatal precondition violation
// per spec.md §7.
func TestNewNilParentPanics(t *testing.T) {
	require.Panics(t, func() {
		handle.New[*node](nil, &node{})
	})
}

// TestRelease verifies the destructor-equivalent erases the edge
// exactly once and tolerates repeated calls.
func TestRelease(t *testing.T) {
	parent := &node{id: 0}
	child := &node{id: 1}
	h := handle.New[*node](parent, child)

	h.Release()
	require.Equal(t, 0, parent.Count(&child.Node))

	require.NotPanics(t, h.Release)
	require.Equal(t, 0, parent.Count(&child.Node))
}

// TestHandleLocalLaw: copy(h).parent == h.parent, and destroying one
// clone leaves the other's edge intact (spec.md §8, item 7).
func TestHandleLocalLaw(t *testing.T) {
	parent := &node{id: 0}
	child := &node{id: 1}

	h1 := handle.New[*node](parent, child)
	h2 := h1.Clone()

	require.Same(t, h1.Parent(), h2.Parent())
	require.Equal(t, 2, parent.Count(&child.Node))

	h1.Release()
	require.Equal(t, 1, parent.Count(&child.Node))

	h2.Release()
	require.Equal(t, 0, parent.Count(&child.Node))
}

// TestMoveLeavesSourceSafeToRelease verifies Move nulls the source's
// core but leaves it destructible (spec.md §9 open question).
func TestMoveLeavesSourceSafeToRelease(t *testing.T) {
	parent := &node{id: 0}
	child := &node{id: 1}

	h1 := handle.New[*node](parent, child)
	h2 := h1.Move()

	require.Nil(t, h1.Get())
	require.Same(t, child, h2.Get())
	require.Equal(t, 1, parent.Count(&child.Node))

	require.NotPanics(t, h1.Release)
	require.Equal(t, 1, parent.Count(&child.Node), "source's release must not touch the edge it no longer owns")

	h2.Release()
	require.Equal(t, 0, parent.Count(&child.Node))
}

// TestSwapMoveAssign verifies Swap exchanges ownership without
// touching the multiset itself.
func TestSwapMoveAssign(t *testing.T) {
	parentA := &node{id: 0}
	parentB := &node{id: 1}
	childA := &node{id: 2}
	childB := &node{id: 3}

	hA := handle.New[*node](parentA, childA)
	hB := handle.New[*node](parentB, childB)

	hA.Swap(hB)

	require.Same(t, parentB, hA.Parent())
	require.Same(t, childB, hA.Get())
	require.Same(t, parentA, hB.Parent())
	require.Same(t, childA, hB.Get())

	// Each multiset is untouched by swap itself.
	require.Equal(t, 1, parentA.Count(&childA.Node))
	require.Equal(t, 1, parentB.Count(&childB.Node))
}

// TestAssignDoesNotEraseOldEdge documents the intentional phantom-edge
// behavior from spec.md §4.2 / §9.
func TestAssignDoesNotEraseOldEdge(t *testing.T) {
	oldParent := &node{id: 0}
	newParent := &node{id: 1}
	oldChild := &node{id: 2}
	newChild := &node{id: 3}

	h := handle.New[*node](oldParent, oldChild)
	other := handle.New[*node](newParent, newChild)

	h.Assign(other)

	require.Same(t, newParent, h.Parent())
	require.Same(t, newChild, h.Get())
	// The phantom edge from oldParent to oldChild survives the assign.
	require.Equal(t, 1, oldParent.Count(&oldChild.Node))
	require.Equal(t, 2, newParent.Count(&newChild.Node))
}
