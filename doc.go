// Package tricolor is a concurrent, mark-and-sweep tracing garbage
// collector for a managed object graph embedded in a host Go program.
//
// 🚀 What is tricolor?
//
//	A small, thread-safe engine that brings together:
//
//	  • collectable — the per-object header every managed type embeds
//	  • handle      — a smart reference whose lifecycle maintains graph edges
//	  • collector   — the root, the live-object population, mark & sweep
//
// The collector reclaims objects unreachable from its root, including
// cyclic structures that plain reference counting cannot free. Tracing
// runs on a background goroutine while application goroutines keep
// mutating the graph — no write barriers, no stop-the-world pause.
//
// ✨ Why tricolor?
//
//   - Cycle-safe    — tri-color mark/sweep reclaims rooted cycles, not just trees
//   - Concurrent    — mutators never block on the collector goroutine
//   - Adaptive      — the scheduler dilates or contracts its poll interval
//     in response to observed allocation pressure
//   - Pure Go       — no cgo; logging/metrics/CLI are opt-in, not required
//
// Under the hood, everything is organized under three subpackages:
//
//	collectable/ — Node: color, child multiset, spin-lock
//	handle/      — Handle[T]: construct/copy/move/release edge bookkeeping
//	collector/   — Collector (root, allocate, mark, sweep) + Scheduler
//
// Quick example:
//
//	col := collector.New()
//	col.Scheduler().Run(100 * time.Millisecond)
//	defer col.Close()
//
//	type Node struct {
//	    collectable.Node
//	    next *handle.Handle[*Node]
//	}
//
//	root := collector.Allocate(col, &Node{})
//	h := collector.Handle(col, root)
//	defer h.Release()
//
// Out of scope: generational/incremental collection, compaction,
// finalization ordering across a cycle, hard real-time pause bounds,
// cross-collector migration, weak references. See SPEC_FULL.md.
//
//	go get github.com/arrowgc/tricolor
package tricolor
