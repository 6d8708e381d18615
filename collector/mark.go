package collector

import "github.com/arrowgc/tricolor/collectable"

// mark performs a depth-first trace from the collector's own root
// header (spec.md §4.3.3). It returns the count of newly-grayed
// children (excluding the root) and whether mark actually ran — mark
// is skipped, returning (0, false), when a sweep is concurrently in
// progress, mirroring the "-1 means skip" contract of the original
// source without propagating a sentinel integer into arithmetic later
// (see adjustPollInterval).
func (c *Collector) mark() (marked int, ran bool) {
	if c.sweeping.Load() {
		return 0, false
	}
	if !c.marking.CompareAndSwap(false, true) {
		return 0, false
	}
	defer c.marking.Store(false)

	c.transferNewToObjects()

	root := c.Header()
	stack := []*collectable.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n.SetColor(collectable.Gray)
		n.ForEachChild(func(child *collectable.Node) {
			if child == nil {
				return
			}
			if child.Color() == collectable.White {
				marked++
				child.SetColor(collectable.Gray)
				stack = append(stack, child)
			}
		})
		n.SetColor(collectable.Black)
	}

	if c.metrics != nil {
		c.metrics.marked.Add(float64(marked))
	}
	c.logger.WithField("marked", marked).Debug("tricolor: mark complete")

	return marked, true
}
