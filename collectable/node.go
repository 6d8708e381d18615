package collectable

import (
	"sync/atomic"

	"github.com/arrowgc/tricolor/internal/spinlock"
)

// Collectable is implemented by every type the collector can trace.
// Application types get it for free by embedding Node: Node's Header
// method is promoted, so *YourType satisfies Collectable.
type Collectable interface {
	// Header returns the embedded collection header. The collector and
	// handle packages operate only through this header; application
	// fields are never inspected.
	Header() *Node
}

// Node is the base element of the managed object graph. Every
// collectable type embeds one. It holds the tri-color mark, the
// multiset of outgoing edges, and the spin-lock guarding that
// multiset.
//
// The zero value is a valid, Unknown-colored node with an empty child
// set — no explicit constructor is required, matching Go's usual
// zero-value-is-useful convention.
type Node struct {
	color    atomic.Int32
	childMu  spinlock.Spinlock
	children map[*Node]int // multiset: child -> live edge count
}

// Header implements Collectable for Node itself, and is promoted to
// any type that embeds Node.
func (n *Node) Header() *Node { return n }

// Color returns the node's current mark.
func (n *Node) Color() Color {
	return Color(n.color.Load())
}

// SetColor sets the node's mark. Used by mark/sweep; application code
// has no reason to call it.
func (n *Node) SetColor(c Color) {
	n.color.Store(int32(c))
}

// Insert adds one occurrence of child to this node's children
// multiset. Duplicate entries are intentional: two handles to the
// same child are two edges, and each must be erased independently.
//
// Complexity: O(1) plus the spin-lock hold.
func (n *Node) Insert(child *Node) error {
	if child == nil {
		return ErrNilChild
	}

	g := n.childMu.Lock()
	defer g.Unlock()

	if n.children == nil {
		n.children = make(map[*Node]int)
	}
	n.children[child]++

	return nil
}

// Erase removes exactly one occurrence of child from this node's
// children multiset. Absence is a no-op: a double-release or an erase
// racing with teardown is tolerated silently, per spec.
//
// Complexity: O(1) plus the spin-lock hold.
func (n *Node) Erase(child *Node) {
	if child == nil {
		return
	}

	g := n.childMu.Lock()
	defer g.Unlock()

	if n.children == nil {
		return
	}
	if count, ok := n.children[child]; ok {
		if count <= 1 {
			delete(n.children, child)
		} else {
			n.children[child] = count - 1
		}
	}
}

// ForEachChild calls fn once for every distinct child currently in the
// multiset, holding the spin-lock for the duration of the call so the
// trace observes a consistent snapshot of the child set. fn must not
// call back into Insert/Erase/ForEachChild on the same node — doing so
// deadlocks the non-reentrant spin-lock.
func (n *Node) ForEachChild(fn func(child *Node)) {
	g := n.childMu.Lock()
	defer g.Unlock()

	for child := range n.children {
		fn(child)
	}
}

// Size reports the total edge count in the multiset (sum of
// multiplicities), used by the edge-count-law test in §8 of the spec.
func (n *Node) Size() int {
	g := n.childMu.Lock()
	defer g.Unlock()

	total := 0
	for _, count := range n.children {
		total += count
	}

	return total
}

// Count reports how many edges this node currently holds to child.
func (n *Node) Count(child *Node) int {
	g := n.childMu.Lock()
	defer g.Unlock()

	return n.children[child]
}
