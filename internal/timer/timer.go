// Package timer provides a monotonic countdown that is polled rather than
// waited on. Nothing here sleeps; callers ask Done on every tick.
package timer

import (
	"time"

	"github.com/coder/quartz"
)

// Timer counts down a fixed duration from the moment it is started. A timer
// that was never started, or was exhausted, reports Done.
type Timer struct {
	clock    quartz.Clock
	duration time.Duration
	started  time.Time
	running  bool
}

// New returns a stopped timer.
func New(clock quartz.Clock, d time.Duration) *Timer {
	return &Timer{clock: clock, duration: d}
}

// NewStarted returns a timer that is already counting down.
func NewStarted(clock quartz.Clock, d time.Duration) *Timer {
	t := New(clock, d)
	t.Start()
	return t
}

// Start (re)starts the countdown from now.
func (t *Timer) Start() {
	t.started = t.clock.Now("timer", "start")
	t.running = true
}

// Exhaust stops the timer so that Done is immediately true.
func (t *Timer) Exhaust() {
	t.running = false
}

// Duration returns the configured countdown length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time since Start. The second result is false when the
// timer is not running.
func (t *Timer) Elapsed() (time.Duration, bool) {
	if !t.running {
		return 0, false
	}
	return t.clock.Since(t.started, "timer", "elapsed"), true
}

// Done reports whether the countdown has run out.
func (t *Timer) Done() bool {
	elapsed, ok := t.Elapsed()
	return !ok || elapsed >= t.duration
}
