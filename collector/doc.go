// Package collector implements Collector, the owner of the live-object
// population and the root of every trace, and Scheduler, the
// background worker that drives Collector's mark and sweep on an
// adaptive interval.
//
// Collector and Scheduler are defined in the same package, not split
// across two, because the scheduler drives Collector's unexported
// mark/sweep internals every tick (spec.md §4.4) — exactly the
// tightly-coupled relationship spec.md §2 describes between components
// G and S. Everything else a host needs is exported: Allocate, Handle,
// New, and the Scheduler returned by Collector.Scheduler().
//
// Concurrency model (spec.md §5): any number of mutator goroutines call
// Allocate and mutate handles concurrently; a single collector
// goroutine runs mark and sweep. Mutators never block on the
// collector; the collector never waits on mutator progress.
package collector
