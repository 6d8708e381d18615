package collector

import "github.com/prometheus/client_golang/prometheus"

// metricSet holds the Collector's optional Prometheus instruments.
// Carried from moby-moby and rclone-rclone, both of which depend on
// prometheus/client_golang directly; metrics stay nil (and therefore
// free) unless a host opts in via WithMetrics.
type metricSet struct {
	objectsAllocated    prometheus.Counter
	objectsFreed        prometheus.Counter
	marked              prometheus.Counter
	liveObjects         prometheus.Gauge
	pollIntervalSeconds prometheus.Gauge
}

// WithMetrics registers a set of Prometheus instruments for this
// Collector against reg. Passing nil is equivalent to omitting the
// option: metrics stay disabled.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Collector) {
		if reg == nil {
			return
		}

		ms := &metricSet{
			objectsAllocated: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "tricolor",
				Name:      "objects_allocated_total",
				Help:      "Total objects enqueued via Allocate.",
			}),
			objectsFreed: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "tricolor",
				Name:      "objects_freed_total",
				Help:      "Total objects freed by sweep or by Close.",
			}),
			marked: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "tricolor",
				Name:      "mark_marked_total",
				Help:      "Total children newly grayed across all mark passes.",
			}),
			liveObjects: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "tricolor",
				Name:      "live_objects",
				Help:      "Size of the authoritative live set after the last sweep.",
			}),
			pollIntervalSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "tricolor",
				Name:      "poll_interval_seconds",
				Help:      "Scheduler's current sleep interval between ticks.",
			}),
		}

		reg.MustRegister(
			ms.objectsAllocated,
			ms.objectsFreed,
			ms.marked,
			ms.liveObjects,
			ms.pollIntervalSeconds,
		)
		c.metrics = ms
	}
}
