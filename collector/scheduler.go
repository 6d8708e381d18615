package collector

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMinimumPollInterval is the scheduler's floor when Run is
// called without WithMinimumPollInterval (spec.md §4.4, §6: "500 ns").
const DefaultMinimumPollInterval = 500 * time.Nanosecond

// SchedulerOption configures a single Scheduler.Run call.
type SchedulerOption func(*schedulerConfig)

type schedulerConfig struct {
	minPollInterval time.Duration
}

// WithMinimumPollInterval overrides the scheduler's floor interval.
func WithMinimumPollInterval(d time.Duration) SchedulerOption {
	return func(cfg *schedulerConfig) {
		if d > 0 {
			cfg.minPollInterval = d
		}
	}
}

// Scheduler is the background worker that periodically drives a
// Collector's mark and sweep, adjusting its own poll interval in
// response to observed allocation pressure (spec.md §4.4).
//
// State machine: idle -> running <-> (marking | sweeping | sleeping)
// -> stopping -> stopped. Mark and sweep are mutually exclusive by
// construction (Collector's atomic flags each short-circuit the
// other); Scheduler itself never runs two ticks concurrently, so this
// state machine is single-threaded by design.
type Scheduler struct {
	col    *Collector
	logger logrus.FieldLogger

	running atomic.Bool
	suspend atomic.Bool
	wg      sync.WaitGroup
}

// Running reports whether the background goroutine is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Run starts the background goroutine ticking at pollInterval,
// dilating or contracting per spec.md §4.4's adjustment table, bounded
// to [minimum, pollInterval]. Returns ErrAlreadyRunning if already
// started; call Stop first to restart with different parameters.
func (s *Scheduler) Run(pollInterval time.Duration, opts ...SchedulerOption) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	cfg := schedulerConfig{minPollInterval: DefaultMinimumPollInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.suspend.Store(false)
	s.wg.Add(1)
	go s.loop(pollInterval, cfg.minPollInterval)

	return nil
}

// Stop requests shutdown and joins the background goroutine — the Go
// analogue of the original source's stop_thread/th.join(). The
// scheduler completes its current tick (including any in-progress
// mark/sweep) before exiting; cancellation is cooperative, with no
// timeout on the in-flight tick (spec.md §5).
func (s *Scheduler) Stop() {
	if !s.running.Load() {
		return
	}
	s.suspend.Store(true)
	s.wg.Wait()
	s.running.Store(false)
}

// loop is the scheduler's single tick-adjust-sleep cycle, run on its
// own goroutine.
func (s *Scheduler) loop(maxPoll, minPoll time.Duration) {
	defer s.wg.Done()

	current := maxPoll
	lastMarked := 0

	for {
		marked, ran := s.col.mark()
		if ran {
			if marked > 0 && marked != len(s.col.objects) {
				s.col.sweep()
			}
			current = adjustPollInterval(current, maxPoll, minPoll, lastMarked, marked)
			lastMarked = marked

			s.logger.
				WithField("marked", marked).
				WithField("poll_interval", current).
				Debug("tricolor: scheduler tick")
		}

		if s.col.metrics != nil {
			s.col.metrics.pollIntervalSeconds.Set(current.Seconds())
		}

		if s.suspend.Load() {
			return
		}
		time.Sleep(current)
		if s.suspend.Load() {
			return
		}
	}
}

// adjustPollInterval applies spec.md §4.4's heuristic table, in order,
// then clamps to [pMin, pMax]. It is a pure function so S6's
// adaptivity property can be tested directly without a live scheduler.
//
// A tick where mark was skipped (mutual exclusion with an in-flight
// sweep) never reaches this function at all — spec.md §7 classifies
// that as transient contention "recovered locally by skipping that
// tick", and folding its sentinel value into this arithmetic (as the
// original source's raw -1 would) produces a poll interval with no
// principled meaning. Not adjusting, and not updating lastMarked, is
// this module's resolution of that gap.
func adjustPollInterval(current, pMax, pMin time.Duration, lastMarked, marked int) time.Duration {
	switch {
	case lastMarked == 0 && marked == 0:
		current = (current + pMax) / 2
	case lastMarked == 0 && marked > 0:
		current = (current + pMin) / 2
	case marked >= lastMarked:
		current /= 6
	default:
		current *= 4
	}

	if current > pMax {
		current = pMax
	}
	if current < pMin {
		current = pMin
	}

	return current
}
