// Package handle implements Handle[T], the managed smart reference
// whose construction, copy, move and release are the sole source of
// edge insertions and deletions in the collected object graph.
//
// Go has neither destructors nor move constructors, so the lifecycle
// spec.md §4.2 describes in C++ terms is realized as explicit methods:
// New (construct), Clone (copy-construct), Move (move-construct),
// Release (destruct), Swap (move-assign) and Assign (copy-assign).
// New also installs a runtime.SetFinalizer safety net, so a Handle
// whose Release the caller forgot to call still erases its edge once
// it becomes garbage to the Go runtime itself — the collector's
// correctness never depends on a caller's Release discipline, only its
// promptness does.
package handle

import "errors"

// ErrNilParent is panicked with when a Handle is constructed with a
// nil parent (New has no error result, so it cannot return it). Every constructor except
// the generic zero value requires a non-nil parent, per spec.md §4.2.
var ErrNilParent = errors.New("handle: parent is nil")
