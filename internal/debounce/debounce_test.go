package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func captureTimers(t *testing.T) *[]func() {
	t.Helper()
	orig := afterFunc
	t.Cleanup(func() { afterFunc = orig })

	var callbacks []func()
	afterFunc = func(_ time.Duration, f func()) *time.Timer {
		callbacks = append(callbacks, f)
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		return timer
	}
	return &callbacks
}

func TestDebouncerIgnoresStaleTimerCallback(t *testing.T) {
	callbacks := captureTimers(t)

	var called atomic.Int32
	d := New(time.Second, func() { called.Add(1) })
	d.Trigger()
	d.Trigger()

	if len(*callbacks) != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", len(*callbacks))
	}
	(*callbacks)[0]()
	(*callbacks)[1]()

	if got := called.Load(); got != 1 {
		t.Fatalf("expected only latest callback to run, got %d calls", got)
	}
}

func TestDebouncerStopIgnoresPendingAndFutureTriggers(t *testing.T) {
	callbacks := captureTimers(t)

	var called atomic.Int32
	d := New(time.Second, func() { called.Add(1) })
	d.Trigger()
	d.Stop()
	d.Trigger()

	if len(*callbacks) != 1 {
		t.Fatalf("expected Trigger after Stop to schedule nothing, got %d callbacks", len(*callbacks))
	}
	(*callbacks)[0]()
	if got := called.Load(); got != 0 {
		t.Fatalf("expected callback to be ignored after stop, got %d calls", got)
	}
}

func TestDebouncerTriggerOnce(t *testing.T) {
	var count atomic.Int32
	done := make(chan struct{})
	d := New(10*time.Millisecond, func() {
		count.Add(1)
		close(done)
	})
	d.Trigger()
	d.Trigger()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debouncer did not fire")
	}
	if got := count.Load(); got != 1 {
		t.Fatalf("expected one invocation, got %d", got)
	}
}

func TestSignalCoalesces(t *testing.T) {
	callbacks := captureTimers(t)

	d, ch := Signal(time.Second)
	d.Trigger()
	(*callbacks)[0]()
	d.Trigger()
	(*callbacks)[1]()

	select {
	case <-ch:
	default:
		t.Fatal("expected a signal")
	}
	select {
	case <-ch:
		t.Fatal("signals should coalesce while unread")
	default:
	}
}
