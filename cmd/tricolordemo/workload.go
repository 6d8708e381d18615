package main

import (
	"github.com/arrowgc/tricolor/collectable"
	"github.com/arrowgc/tricolor/collector"
	"github.com/arrowgc/tricolor/handle"
)

// garbage is the demo's stand-in for original_source/GC14.cpp's
// Garbage class: a node that keeps, in more, every handle its test
// method creates. Those handles are rooted at the collector, and
// runTreeWorkload releases all but the latest of them.
type garbage struct {
	collectable.Node
	more []*handle.Handle[*garbage]
}

func newGarbage(c *collector.Collector) *handle.Handle[*garbage] {
	return collector.Handle(c, collector.Allocate(c, &garbage{}))
}

// test mirrors Garbage::test(): allocate one more garbage object rooted
// directly at the collector, retain the handle in more so it stays
// reachable, and hand the new handle back to the caller.
func (g *garbage) test(c *collector.Collector) *handle.Handle[*garbage] {
	h := newGarbage(c)
	g.more = append(g.more, h)
	return h
}

// runTreeWorkload mirrors GC14.cpp's TEST_TREE branch: iterations outer
// allocations, each immediately extended by innerLoop further
// allocations chained through test(). The previous outer handle is
// released before being overwritten, so its root edge is erased at
// once rather than left to the finalizer backstop (Handle.Assign would
// leave the old edge in place).
func runTreeWorkload(c *collector.Collector, iterations, innerLoop int, tick func(i int, live, pending int)) {
	var outer *handle.Handle[*garbage]

	for i := 0; i < iterations; i++ {
		if outer != nil {
			outer.Release()
		}
		outer = newGarbage(c)

		moar := outer.Get().test(c)
		for j := 0; j < innerLoop; j++ {
			next := moar.Get().test(c)
			moar.Release()
			moar = next
		}

		if tick != nil {
			tick(i, c.ObjectCount(), c.PendingCount())
		}
	}
}

// cyclicNode is the demo's stand-in for original_source/GC14.cpp's
// cycle class: a node holding exactly one handle, used to build a ring
// that references itself through no outside root.
type cyclicNode struct {
	collectable.Node
	next *handle.Handle[*cyclicNode]
}

// runCycleWorkload builds a ring of length size whose only edge from the
// collector is the returned root handle — mirroring
// make_cyclic_reference's self-referential chain. Once the caller
// releases that handle the ring is collectible instead of leaking
// forever, matching spec.md's scenario S3/S4 guarantee that this
// collector (unlike plain reference counting) reclaims cycles.
func runCycleWorkload(c *collector.Collector, size int) *handle.Handle[*cyclicNode] {
	nodes := make([]*handle.Handle[*cyclicNode], size)
	for i := range nodes {
		nodes[i] = collector.Handle(c, collector.Allocate(c, &cyclicNode{}))
	}
	for i, h := range nodes {
		next := nodes[(i+1)%len(nodes)]
		h.Get().next = handle.New[*cyclicNode](h.Get(), next.Get())
	}
	for _, h := range nodes[1:] {
		h.Release()
	}

	root := nodes[0]
	return root
}
