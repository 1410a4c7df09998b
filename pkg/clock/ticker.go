package clock

import (
	"context"
	"time"
)

// Ticker drives a Clock from the host timer. It stands in for the
// millisecond interrupt when running on a hosted OS.
type Ticker struct {
	Clock    *Clock
	Interval time.Duration
}

// Run advances the clock until the context is canceled. It implements
// the runner's Runnable.
func (t *Ticker) Run(ctx context.Context) error {
	interval := t.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			t.Clock.Tick()
		}
	}
}
