package timer

import "time"

// Timer measures elapsed time from a start instant. time.Time carries
// a monotonic reading, so the elapsed value never goes backwards.
type Timer struct {
	start time.Time
}

// New returns a running timer.
func New() Timer {
	return Timer{start: time.Now()}
}

// Reset restarts the timer.
func (t *Timer) Reset() {
	t.start = time.Now()
}

// Milliseconds returns the elapsed wall-clock milliseconds.
func (t Timer) Milliseconds() int64 {
	return time.Since(t.start).Milliseconds()
}
