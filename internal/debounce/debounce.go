// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debounce coalesces bursts of search input so a listing is
// recomputed once per pause in typing rather than once per keystroke.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when none is configured.
const DefaultDelay = 300 * time.Millisecond

// Debouncer calls fn with the most recent value once no new value has
// arrived for the quiet period. It is safe for concurrent use; fn runs on
// its own goroutine and never concurrently with itself.
//
// Trigger never waits for a running fn and may be called from fn. Flush
// and Stop wait for a running fn to return, so fn must not call them.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	// run serializes fn and is always taken before mu.
	run sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	value   string
	gen     uint64
	stopped bool
}

// New returns a Debouncer. A non-positive delay selects DefaultDelay.
func New(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records v as the latest value and restarts the quiet period.
func (d *Debouncer) Trigger(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.value = v
	d.pending = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush runs fn immediately with the pending value, if any, and reports
// whether it did.
func (d *Debouncer) Flush() bool {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	if !d.pending || d.stopped {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.take()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Stop discards any pending value and waits for a running fn to return.
// Later Triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.run.Lock()
	d.run.Unlock()
}

func (d *Debouncer) fire(gen uint64) {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	// A newer Trigger, a Flush or Stop superseded this timer.
	if gen != d.gen || !d.pending || d.stopped {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()

	d.fn(v)
}

// take must be called with mu held.
func (d *Debouncer) take() string {
	d.pending = false
	d.gen++
	return d.value
}
