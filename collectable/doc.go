// Package collectable defines Node, the per-object header every
// garbage-collected type embeds, and Color, the tri-color mark used to
// trace reachability.
//
// A Node tracks:
//
//   - color:    White (unreached this cycle), Gray (discovered, children
//     unscanned), Black (discovered and scanned), or Unknown
//     (freshly allocated, not yet enrolled).
//   - children: a multiset of pointers to other Nodes — a multiset
//     because two handles from the same parent to the same child are
//     two edges, and only one must be removed when one handle dies.
//   - a spin-lock serializing mutations and traversals of children.
//
// Application types participate by embedding Node:
//
//	type Cell struct {
//	    collectable.Node
//	    next *handle.Handle[*Cell]
//	}
//
// Embedding promotes Node's Header method, so *Cell
// satisfies the Collectable interface the collector and handle
// packages trace and mutate against. The collector never looks past
// that header; application fields are opaque to it.
package collectable
