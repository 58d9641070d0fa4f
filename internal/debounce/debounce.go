// Package debounce coalesces bursts of events into a single callback.
package debounce

import (
	"sync"
	"time"
)

var afterFunc = time.AfterFunc

// Debouncer runs fn once no Trigger call has happened for the configured
// delay. Callbacks from timers replaced by a later Trigger, or scheduled
// before Stop, are dropped.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	stopped bool
	fn      func()
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Signal returns a debouncer that performs a non-blocking send on the
// returned channel instead of calling a function, so the consumer decides
// which goroutine does the work.
func Signal(delay time.Duration) (*Debouncer, <-chan struct{}) {
	ch := make(chan struct{}, 1)
	d := New(delay, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return d, ch
}

func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = afterFunc(d.delay, func() { d.fire(gen) })
}

// Stop cancels any pending callback; later Trigger calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	fn := d.fn
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}
