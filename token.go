package cantok

import "time"

// Handler is the unblock callback owned by a single blocking call site. It
// is registered against a Token for the lifetime of one blocking operation
// via a Guard.
//
// Contract: for every completed Cancel call there is exactly one subsequent
// Reset call, invoked on the goroutine that registered the handler, after
// the cancelling goroutine has returned from Cancel. Reset may be left as a
// no-op when a handler has nothing to restore.
type Handler interface {
	// Cancel unblocks whatever this handler's blocking call is waiting on.
	// It must never be called with any lock this handler needs held by the
	// calling goroutine -- see the adapters in this package for the
	// reverse-lock pattern that avoids that deadlock.
	Cancel()

	// Reset restores the handler to the state it was in before Cancel was
	// called, so it can be safely discarded (or, for token-owned handlers,
	// reused).
	Reset()
}

// Token is a non-owning handle onto cancellable state. Blocking primitives
// consult it to learn whether they should return early, and register a
// Handler against it for the duration of the blocking call.
//
// The register/unregister methods are unexported: only this package's own
// adapters and Guard may drive the handshake directly.
type Token interface {
	// IsCancelled reports whether the token has been cancelled. It is
	// always true immediately after Cancel returns on the same token.
	IsCancelled() bool

	// SleepFor performs a timed wait that returns early if the token is
	// cancelled before the duration elapses.
	SleepFor(d time.Duration)

	// tryRegister installs *handler as this token's active handler. It
	// returns true if registration succeeded; false means the token was
	// already cancelled and the caller must treat the blocking call as
	// having been cancelled before it began. The same handler pointer must
	// be passed to the matching tryUnregister/unregister call.
	tryRegister(handler *Handler) bool

	// tryUnregister attempts the lock-free fast path: remove handler
	// without taking any lock. It returns true on success. False means a
	// cancellation is concurrently in flight and the caller must fall back
	// to unregister.
	tryUnregister(handler *Handler) bool

	// unregister is the slow path: block until the in-flight cancellation
	// completes, then invoke (*handler).Reset().
	unregister(handler *Handler)
}

// DummyToken is a Token that is never cancelled. It gives call sites a
// zero-cost "no cancellation" option without special-casing blocking calls
// that don't need to be cancellable.
type DummyToken struct{}

var _ Token = DummyToken{}

// IsCancelled always returns false.
func (DummyToken) IsCancelled() bool { return false }

// SleepFor performs a plain, non-cancellable timed sleep.
func (DummyToken) SleepFor(d time.Duration) { time.Sleep(d) }

func (DummyToken) tryRegister(*Handler) bool   { return true }
func (DummyToken) tryUnregister(*Handler) bool { return true }
func (DummyToken) unregister(*Handler)         {}
