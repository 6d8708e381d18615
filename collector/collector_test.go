package collector_test

import (
	"sync"
	"testing"
	"time"

	"github.com/arrowgc/tricolor/collectable"
	"github.com/arrowgc/tricolor/collector"
	"github.com/stretchr/testify/require"
)

type widget struct {
	collectable.Node
	id int
}

// TestAllocateHandleScheduledCollection drives the public API end to
// end: Allocate, Handle, Scheduler().Run, and observes objects reclaimed
// once their handles are released and the direct edge to them is erased.
func TestAllocateHandleScheduledCollection(t *testing.T) {
	c := collector.New()
	defer c.Close()

	rootObj := collector.Allocate(c, &widget{id: 0})
	root := collector.Handle(c, rootObj)
	child := collector.Allocate(c, &widget{id: 1})
	h := collector.Handle(c, child)
	require.NoError(t, root.Get().Header().Insert(h.Get().Header()))

	require.NoError(t, c.Scheduler().Run(time.Millisecond))

	require.Eventually(t, func() bool {
		return c.ObjectCount() == 2
	}, 200*time.Millisecond, time.Millisecond)

	h.Release()
	root.Get().Header().Erase(child.Header())

	require.Eventually(t, func() bool {
		return c.ObjectCount() == 1
	}, 200*time.Millisecond, time.Millisecond)

	root.Release()

	require.Eventually(t, func() bool {
		return c.ObjectCount() == 0
	}, 200*time.Millisecond, time.Millisecond)

	c.Scheduler().Stop()
}

// TestConcurrentAllocationAcrossGoroutines covers the concurrent
// allocation part of scenario S5: four goroutines allocate concurrently
// with no external synchronization, and every allocation must land in
// the new-objects buffer, none lost to corruption of the buffer.
func TestConcurrentAllocationAcrossGoroutines(t *testing.T) {
	c := collector.New()
	defer c.Close()

	const goroutines = 4
	const perGoroutine = 250

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				collector.Allocate(c, &widget{id: base*perGoroutine + i})
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, goroutines*perGoroutine, c.PendingCount())
}

// TestCloseFreesEverythingRegardlessOfReachability exercises spec.md
// §4.4's unconditional teardown: even a node reachable from root at
// Close time is deleted, and PendingCount/ObjectCount both settle to
// zero afterward.
func TestCloseFreesEverythingRegardlessOfReachability(t *testing.T) {
	c := collector.New()
	root := collector.Handle(c, collector.Allocate(c, &widget{id: 0}))
	_ = collector.Allocate(c, &widget{id: 1})

	c.Close()

	require.Zero(t, c.ObjectCount())
	require.Zero(t, c.PendingCount())
	_ = root
}
