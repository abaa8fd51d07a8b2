package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into at most one call per window.
// The first trigger after a quiet period runs fn right away; triggers that
// arrive while the window is open collapse into a single trailing call when
// it closes, which opens a new window.
type Debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
	stopped bool
}

func New(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger records an event.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.pending = true
		d.mu.Unlock()
		return
	}
	d.timer = time.AfterFunc(d.wait, d.windowClosed)
	d.mu.Unlock()

	d.fn()
}

func (d *Debouncer) windowClosed() {
	d.mu.Lock()
	if d.stopped || !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = time.AfterFunc(d.wait, d.windowClosed)
	d.mu.Unlock()

	d.fn()
}

// Stop drops any pending trailing call. Triggers after Stop are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
