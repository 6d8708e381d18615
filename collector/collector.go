package collector

import (
	"fmt"

	"github.com/arrowgc/tricolor/collectable"
)

// Allocate constructs no object itself — it enrolls obj, which the
// caller must have already constructed, into the collector's
// new-objects buffer, and returns it unchanged. Matching spec.md
// §4.3.1's allocate<T>, this is a package-level generic function
// rather than a generic method: Go methods cannot declare their own
// type parameters beyond the receiver's.
//
// Precondition: obj is a collectable subtype (enforced by the Node
// constraint at compile time, stronger than the C++
// enable_if/is_base_of runtime check).
//
// Postcondition: obj is enrolled for collection. The caller must wrap
// it in a handle asserting a reachable edge before the next collection
// tick, or it is treated as unreachable and freed.
func Allocate[T Node](c *Collector, obj T) T {
	g := c.newObjectsMu.Lock()
	c.newObjects = append(c.newObjects, obj)
	g.Unlock()

	if c.metrics != nil {
		c.metrics.objectsAllocated.Inc()
	}
	c.logger.WithField("type", fmt.Sprintf("%T", obj)).Debug("tricolor: allocated object")

	return obj
}

// transferNewToObjects drains newObjects into the authoritative live
// set. Runs at the start of every mark (spec.md §4.3.2); only the
// scheduler goroutine calls this, so objects itself needs no lock.
//
// Enrollment is also where a node's color leaves Unknown: spec.md §3
// defines Unknown as "freshly allocated, not yet enrolled", and White
// as "not proven reachable this cycle" — the instant a node is
// enrolled it becomes a trace candidate, so it becomes White here.
// Without this transition a node allocated between two ticks would
// never be colored White/Gray and mark's white-only discovery check
// (spec.md §4.3.3) could never discover it as a child.
func (c *Collector) transferNewToObjects() {
	g := c.newObjectsMu.Lock()
	drained := c.newObjects
	c.newObjects = nil
	g.Unlock()

	for _, obj := range drained {
		obj.Header().SetColor(collectable.White)
	}
	c.objects = append(c.objects, drained...)
}

// Close stops the scheduler (if running) and then deletes every
// remaining enrolled object unconditionally, regardless of color —
// spec.md §4.4's "Collector destruction calls stop_thread then deletes
// every remaining enrolled node unconditionally". Objects implementing
// Finalizer have Finalize called first, in live-set order, with no
// ordering guarantee relative to each other (spec.md §7).
func (c *Collector) Close() {
	c.sched.Stop()

	c.transferNewToObjects()
	for _, obj := range c.objects {
		if f, ok := obj.(Finalizer); ok {
			f.Finalize()
		}
	}
	freed := len(c.objects)
	c.objects = nil

	if c.metrics != nil {
		c.metrics.objectsFreed.Add(float64(freed))
	}
	c.logger.WithField("freed", freed).Info("tricolor: collector closed")
}
