package ui

import (
	"sync"
	"time"
)

// SearchDebounceWindow is how long typing must pause before a search
// actually runs.
const SearchDebounceWindow = 300 * time.Millisecond

// Debouncer coalesces rapid calls: each Do resets the timer, and only the
// last call within the window fires. The core filter engine has no timing
// dependency; this lives entirely at the presentation boundary.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the delay, cancelling any previously
// scheduled call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
