package collector

import (
	"errors"
	"sync/atomic"

	"github.com/arrowgc/tricolor/collectable"
	"github.com/arrowgc/tricolor/handle"
	"github.com/arrowgc/tricolor/internal/spinlock"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyRunning is returned by Scheduler.Run when the scheduler's
// background goroutine is already active.
var ErrAlreadyRunning = errors.New("collector: scheduler already running")

// Finalizer is implemented by application types that need to run
// cleanup when swept or when the Collector is closed with live
// objects still enrolled (spec.md §7: "Finalizers of application
// objects run during this phase and may reference other still-live
// objects; no ordering is guaranteed"). Implementing it is optional.
type Finalizer interface {
	collectable.Collectable
	Finalize()
}

// Node is the constraint Allocate and Handle require of T: it must be
// collectable, and comparable because handle.Handle[T] requires a
// comparable referent type.
type Node interface {
	collectable.Collectable
	comparable
}

// Collector owns the population of live nodes, implements mark and
// sweep, and serves as the root of every trace: handles constructed
// with a Collector as parent are the application's root references
// (spec.md §4.3.5).
//
// Collector embeds collectable.Node, so its own children set is the
// root edge set, traced and mutated exactly like any other node's.
type Collector struct {
	collectable.Node

	newObjectsMu spinlock.Spinlock
	newObjects   []collectable.Collectable

	// objects is the authoritative live set. Only the scheduler
	// goroutine (and Close, after the scheduler has stopped) ever
	// touches it — no synchronization is needed on it, per spec.md §5.
	objects []collectable.Collectable

	marking  atomic.Bool
	sweeping atomic.Bool

	logger  logrus.FieldLogger
	metrics *metricSet

	sched *Scheduler
}

// Option configures a Collector at construction time, mirroring the
// teacher graph library's functional-option pattern
// (core.GraphOption).
type Option func(*Collector)

// WithLogger installs a structured logger for tick/mark/sweep
// diagnostics. By default the Collector logs nothing, keeping it a
// silent library dependency unless a host opts in.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs an empty Collector. Call Scheduler().Run to start
// background collection; until then, allocated objects simply
// accumulate in the new-objects buffer.
func New(opts ...Option) *Collector {
	c := &Collector{
		logger: noopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sched = &Scheduler{col: c, logger: c.logger}

	return c
}

// Scheduler returns the background worker bound to this Collector.
func (c *Collector) Scheduler() *Scheduler {
	return c.sched
}

// Handle constructs a handle with this Collector as parent — the
// collectable convenience constructor of spec.md §6, realized as a
// package function rather than a generic method because Go methods
// cannot carry their own type parameters independent of the receiver.
func Handle[T Node](c *Collector, core T) *handle.Handle[T] {
	return handle.New[T](c, core)
}

// ObjectCount returns the size of the authoritative live set. Safe to
// call from any goroutine; may be stale by the time it returns since
// only the scheduler goroutine mutates objects.
func (c *Collector) ObjectCount() int {
	return len(c.objects)
}

// PendingCount returns the number of objects allocated but not yet
// enrolled into the live set.
func (c *Collector) PendingCount() int {
	g := c.newObjectsMu.Lock()
	defer g.Unlock()

	return len(c.newObjects)
}
