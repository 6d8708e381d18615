package collector

import "github.com/arrowgc/tricolor/collectable"

// sweep walks objects and frees every White node — unreached by the
// preceding mark — while resetting every surviving (Gray or Black)
// node back to White for the next cycle (spec.md §4.3.4). It returns
// whether sweep actually ran; it is skipped, returning false, while a
// mark is in progress.
//
// Deletion order is the order of objects, matching spec.md. A freed
// node's Finalize (if implemented) may itself release handles that
// mutate other still-live nodes' child sets — safe here because sweep
// never holds any node's own spin-lock while finalizing it.
func (c *Collector) sweep() bool {
	if c.marking.Load() {
		return false
	}
	if !c.sweeping.CompareAndSwap(false, true) {
		return false
	}
	defer c.sweeping.Store(false)

	old := c.objects
	kept := old[:0]
	freed := 0
	for _, obj := range old {
		header := obj.Header()
		switch header.Color() {
		case collectable.White:
			if f, ok := obj.(Finalizer); ok {
				f.Finalize()
			}
			freed++
		default: // Gray or Black: reachable this cycle, reset for the next
			header.SetColor(collectable.White)
			kept = append(kept, obj)
		}
	}
	// kept reuses old's backing array; the tail beyond len(kept) still
	// holds pointers to the objects just freed above and must be niled
	// so the Go runtime can actually reclaim them (the original's
	// `delete obj` equivalent — without this, every swept node stays
	// pinned by old's backing array for as long as it's retained).
	for i := len(kept); i < len(old); i++ {
		old[i] = nil
	}
	c.objects = kept

	if c.metrics != nil {
		c.metrics.objectsFreed.Add(float64(freed))
		c.metrics.liveObjects.Set(float64(len(c.objects)))
	}
	c.logger.WithField("freed", freed).WithField("live", len(c.objects)).Debug("tricolor: sweep complete")

	return true
}
