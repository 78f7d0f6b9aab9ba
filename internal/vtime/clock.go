// Package vtime maps real wall-clock time onto an accelerated virtual
// calendar so a multi-day campaign can be replayed in minutes.
package vtime

import "time"

// DefaultWindow is the real-time duration representing one virtual day.
const DefaultWindow = 5 * time.Minute

// Clock derives the current virtual time from real elapsed time and a
// fixed acceleration window. The epoch is fixed at construction and never
// reset. Virtual days advance in whole-window steps, not continuously:
// every record observed inside the same window lands on the same virtual
// day, which is what keeps assigned dates stable.
type Clock struct {
	epoch  time.Time
	window time.Duration
	now    func() time.Time
}

// NewClock returns a clock whose epoch is the current instant. A window
// of zero or less falls back to DefaultWindow.
func NewClock(window time.Duration) *Clock {
	return NewClockAt(time.Now(), window, time.Now)
}

// NewClockAt builds a clock with an explicit epoch and time source.
func NewClockAt(epoch time.Time, window time.Duration, now func() time.Time) *Clock {
	if window <= 0 {
		window = DefaultWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{epoch: epoch, window: window, now: now}
}

// VirtualDaysElapsed returns how many whole acceleration windows have
// passed since the epoch. Monotonic non-decreasing, starting at 0.
func (c *Clock) VirtualDaysElapsed() int {
	elapsed := c.now().Sub(c.epoch)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / c.window)
}

// VirtualNow is the "today" every other computation anchors to: real now
// shifted forward by the elapsed virtual days. The day component jumps at
// each window boundary while the time of day still flows from real time.
func (c *Clock) VirtualNow() time.Time {
	return c.now().Add(time.Duration(c.VirtualDaysElapsed()) * 24 * time.Hour)
}

// Window returns the configured acceleration window.
func (c *Clock) Window() time.Duration {
	return c.window
}
