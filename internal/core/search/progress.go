package search

import (
	"context"
	"sync/atomic"
	"time"
)

// Tracker counts decryption trials across all workers. The final value
// after every worker has stopped equals the exact number of probes
// attempted; increments are never lost.
type Tracker struct {
	attempts atomic.Int64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record registers one completed trial.
func (t *Tracker) Record() {
	t.attempts.Add(1)
}

// Total returns the cumulative trial count so far.
func (t *Tracker) Total() int64 {
	return t.attempts.Load()
}

// Monitor emits the cumulative attempt count on every interval tick until
// ctx is cancelled. It returns within one interval of cancellation and does
// not busy-wait.
func (t *Tracker) Monitor(ctx context.Context, interval time.Duration, emit func(total int64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			emit(t.Total())
		}
	}
}
