package slo

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Tracker accumulates request outcomes and periodically recomputes the SLO
// gauges from them. Counters reset on every flush, so each window stands on
// its own.
type Tracker struct {
	mu        sync.Mutex
	total     int64
	errors    int64
	latencies []float64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records one request outcome. Errors are server-side failures only;
// client errors do not count against availability.
func (t *Tracker) Observe(status int, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total++
	if status >= 500 {
		t.errors++
	}
	t.latencies = append(t.latencies, duration.Seconds())
}

// Flush recomputes the gauges from the accumulated window and resets it.
// A window with no traffic leaves the gauges unchanged.
func (t *Tracker) Flush() {
	t.mu.Lock()
	total, errors, latencies := t.total, t.errors, t.latencies
	t.total, t.errors, t.latencies = 0, 0, nil
	t.mu.Unlock()

	if total == 0 {
		return
	}

	UpdateAvailability(float64(total-errors) / float64(total))
	UpdateErrorRate(float64(errors) / float64(total))

	sort.Float64s(latencies)
	UpdateLatencyP95(percentile(latencies, 0.95))
	UpdateLatencyP99(percentile(latencies, 0.99))
}

// Run flushes on every tick until the context is cancelled.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Flush()
		}
	}
}

// percentile expects sorted input.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
