package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid repeated calls into a single trailing call.
// Each Call supersedes the previous pending one, so within a burst only the
// last submitted function ever runs, delay after the burst ends. A zero
// delay turns the debouncer into a synchronous pass-through.
//
// A Debouncer owns at most one pending timer at a time and is safe for
// concurrent use.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// New creates a Debouncer with the given delay.
// Negative delays are treated as zero.
func New(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Call schedules fn to run after the configured delay, cancelling any
// previously scheduled function that has not fired yet. With a zero delay
// fn runs synchronously on the calling goroutine.
//
// Call never reports a result; panics from fn propagate to the caller in
// the synchronous case and to the timer goroutine otherwise.
func (d *Debouncer) Call(fn func()) {
	if fn == nil {
		return
	}
	if d.delay == 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		run := d.pending
		d.pending = nil
		d.timer = nil
		d.mu.Unlock()
		if run != nil {
			run()
		}
	})
}

// Stop cancels the pending call, if any. It does not wait for a call that
// has already started running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs the pending call immediately on the calling goroutine and
// cancels its timer. It is a no-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	run := d.pending
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.mu.Unlock()

	if run != nil {
		run()
	}
}

// Pending reports whether a call is scheduled but has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Func wraps fn so that rapid calls collapse into a single trailing call
// carrying the argument of the latest call. With a zero delay every call is
// forwarded synchronously in order.
func Func[T any](delay time.Duration, fn func(T)) func(T) {
	d := New(delay)
	return func(v T) {
		d.Call(func() { fn(v) })
	}
}
