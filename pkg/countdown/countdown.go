// Package countdown computes the live time remaining until a target instant.
// The computation is a pure function of (target, now); the ticker only
// drives recomputation on a fixed cadence.
package countdown

import (
	"context"
	"sync"
	"time"
)

// Remaining is the whole-second decomposition of the time left
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Arrived bool `json:"arrived"`
}

// Until decomposes the whole seconds between now and target into
// days/hours/minutes/seconds, flooring each unit. A non-positive difference
// yields Arrived with all unit fields zero; calling past the target stays
// safe and idempotent.
func Until(target, now time.Time) Remaining {
	secs := int64(target.Sub(now) / time.Second)
	if secs <= 0 {
		return Remaining{Arrived: true}
	}
	return Remaining{
		Days:    int(secs / 86400),
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}

// Ticker recomputes Remaining once per interval until the target arrives or
// the ticker is stopped. Stopping is guaranteed to halt further ticks.
type Ticker struct {
	target   time.Time
	interval time.Duration
	now      func() time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// NewTicker creates a countdown ticker. A nil clock uses time.Now; a
// non-positive interval defaults to one second.
func NewTicker(target time.Time, interval time.Duration, clock func() time.Time) *Ticker {
	if clock == nil {
		clock = time.Now
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		target:   target,
		interval: interval,
		now:      clock,
		done:     make(chan struct{}),
	}
}

// Run emits an immediate snapshot and then one per interval on the returned
// channel. The channel closes after the first Arrived snapshot, on context
// cancellation, or on Stop. Run must be called at most once.
func (t *Ticker) Run(ctx context.Context) <-chan Remaining {
	out := make(chan Remaining, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		emit := func() bool {
			r := Until(t.target, t.now())
			select {
			case out <- r:
			case <-ctx.Done():
				return false
			case <-t.done:
				return false
			}
			return !r.Arrived
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ticker.C:
				if !emit() {
					return
				}
			case <-ctx.Done():
				return
			case <-t.done:
				return
			}
		}
	}()

	return out
}

// Stop halts the ticker. Safe to call more than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}
