package workout

import (
	"context"
	"time"
)

// RestTimer is a one-second-resolution countdown between sets.
// It is a plain state machine: callers feed it ticks.
type RestTimer struct {
	remaining int
	total     int
	running   bool
	complete  bool
}

// Start (re)starts the countdown from seconds.
func (t *RestTimer) Start(seconds int) {
	*t = RestTimer{remaining: seconds, total: seconds, running: true}
}

// Tick advances a running timer by one second. It returns true on the tick
// that completes the countdown.
func (t *RestTimer) Tick() bool {
	if !t.running {
		return false
	}
	if t.remaining <= 1 {
		t.remaining = 0
		t.running = false
		t.complete = true
		return true
	}
	t.remaining--
	return false
}

// Pause stops the countdown, keeping the remaining time.
func (t *RestTimer) Pause() {
	t.running = false
}

// Resume continues a paused countdown. Completed timers stay complete.
func (t *RestTimer) Resume() {
	if t.remaining <= 0 || t.complete {
		return
	}
	t.running = true
}

// Skip ends the countdown immediately.
func (t *RestTimer) Skip() {
	t.remaining = 0
	t.running = false
	t.complete = true
}

// Reset clears the countdown. A positive seconds replaces the total.
func (t *RestTimer) Reset(seconds int) {
	total := t.total
	if seconds > 0 {
		total = seconds
	}
	*t = RestTimer{total: total}
}

func (t *RestTimer) Remaining() int { return t.remaining }
func (t *RestTimer) Total() int { return t.total }
func (t *RestTimer) Running() bool { return t.running }
func (t *RestTimer) Complete() bool { return t.complete }

// Run feeds ticks into a started timer until it completes or ctx is done.
// onTick is called after every tick with the remaining seconds.
func (t *RestTimer) Run(ctx context.Context, ticks <-chan time.Time, onTick func(remaining int)) error {
	for t.running {
		select {
		case <-ctx.Done():
			t.Pause()
			return ctx.Err()
		case <-ticks:
			t.Tick()
			if onTick != nil {
				onTick(t.remaining)
			}
		}
	}
	return nil
}
