package scheduler

import (
	"sync"
	"time"
)

// CancelFunc cancels a scheduled execution. It is idempotent and safe to
// call after the callback has already fired, in which case it has no effect.
// It reports whether the call actually prevented the callback from running.
type CancelFunc func() bool

// Schedule runs fn on its own goroutine after delay. The returned CancelFunc
// stops the pending execution; once fn has started, cancellation is a no-op.
func Schedule(delay time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(delay, fn)
	return func() bool {
		return timer.Stop()
	}
}

// Debouncer coalesces bursts of calls into a single trailing-edge execution:
// each Call resets the delay, and only the callback passed to the most
// recent Call runs once the delay elapses without another Call.
//
// The zero value is not usable; construct with NewDebouncer. All methods are
// safe for concurrent use. The callback runs on a timer goroutine.
type Debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a debouncer with the given trailing delay.
// Non-positive delays are clamped to a minimal positive value so callbacks
// still run asynchronously rather than inline.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = time.Nanosecond
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the debouncer's delay, replacing any
// previously pending callback. Last write wins: in a burst of calls only the
// final fn executes, exactly once.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		// A stale timer can still fire if it was stopped after expiry;
		// the sequence check drops such late callbacks.
		d.mu.Lock()
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if !stale {
			fn()
		}
	})
}

// Cancel drops any pending callback. Safe to call at any time, including
// when nothing is pending.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Pending reports whether a callback is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
