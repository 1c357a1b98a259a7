// Package debounce coalesces bursts of UI events into a single call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs only the last function triggered within an interval. The
// call is handed to dispatch, which the app points at fyne.Do so work lands
// back on the UI goroutine.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	dispatch func(func())
	timer    *time.Timer
	pending  func()
	stopped  bool
}

// New creates a debouncer. An interval <= 0 disables coalescing and Trigger
// runs fn immediately on the caller's goroutine.
func New(interval time.Duration, dispatch func(func())) *Debouncer {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Debouncer{interval: interval, dispatch: dispatch}
}

func (d *Debouncer) Trigger(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

// Flush runs the pending call now, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop drops any pending call and ignores later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		d.dispatch(fn)
	}
}
