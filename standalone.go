package cantok

import (
	"sync"
	"sync/atomic"
	"time"
)

// StandaloneToken is a concrete Token with its own private cancellation
// state. It may be cancelled exactly once per live period (repeat Cancel
// calls are no-ops), and Reset returns it to a fresh, live state once no
// guard holds it and any in-flight cancellation has fully completed.
type StandaloneToken struct {
	slot slot

	cancelled atomic.Bool

	mu         sync.Mutex
	doneCh     chan struct{}
	cancelDone bool
}

var _ Token = (*StandaloneToken)(nil)

// NewStandaloneToken returns a StandaloneToken in the live, not-cancelled
// state.
func NewStandaloneToken() *StandaloneToken {
	return &StandaloneToken{doneCh: make(chan struct{})}
}

// IsCancelled reports the current cancelled state. It never takes a lock.
func (t *StandaloneToken) IsCancelled() bool { return t.cancelled.Load() }

// Cancel marks the token cancelled, invoking the registered handler's
// Cancel (with no lock held, so the handler is free to call back into this
// token) if one is registered, then wakes anyone blocked in SleepFor or in
// the slow-path unregister.
func (t *StandaloneToken) Cancel() {
	t.mu.Lock()
	if t.cancelled.Load() {
		t.mu.Unlock()
		return
	}
	t.cancelled.Store(true)
	t.mu.Unlock()

	if handler, fired := t.slot.cancel(); fired {
		handler.Cancel()
	}

	t.mu.Lock()
	t.cancelDone = true
	close(t.doneCh)
	t.mu.Unlock()
}

// Reset returns a cancelled token to the live state. It is only legal when
// no handler is registered and any in-flight cancellation has fully
// completed; violating that precondition panics.
func (t *StandaloneToken) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.slot.v.Load()
	check(cur == nil || cur == cancelledSentinel, "cancellation token is in use")
	check(t.cancelled.Load() == t.cancelDone, "cancellation token is in use")

	t.cancelled.Store(false)
	t.cancelDone = false
	t.slot.v.Store(nil)
	t.doneCh = make(chan struct{})
}

// SleepFor performs a timed wait that returns as soon as the token is
// cancelled. The waiter never holds a lock while actually sleeping: the
// channel receive below plays the role of the C++ original's
// cv.wait_for(lock, duration), woken by the same close(doneCh) that Cancel
// performs once it has finished (with no handler registered for this call,
// that happens immediately after the cancelled flag flips).
func (t *StandaloneToken) SleepFor(d time.Duration) {
	t.mu.Lock()
	if t.cancelled.Load() {
		t.mu.Unlock()
		return
	}
	done := t.doneCh
	t.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-done:
	}
}

func (t *StandaloneToken) tryRegister(handler *Handler) bool {
	return t.slot.tryRegister(handler)
}

func (t *StandaloneToken) tryUnregister(handler *Handler) bool {
	return t.slot.tryUnregister(handler)
}

func (t *StandaloneToken) unregister(handler *Handler) {
	t.mu.Lock()
	for !t.cancelDone {
		// Wait for Cancel to finish; doneCh is closed exactly once it has.
		done := t.doneCh
		t.mu.Unlock()
		<-done
		t.mu.Lock()
	}
	t.mu.Unlock()

	(*handler).Reset()
}
