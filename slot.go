package cantok

import "sync/atomic"

// cancelledSentinel and notInitSentinel are the two sentinel handler
// pointers the slot uses to encode "cancelled" and "not yet linked into a
// source's token list" in the same word as a real handler pointer. Their
// addresses are what matters, never their contents, so a zero-value Handler
// behind each is fine -- the slot never dereferences a sentinel.
var (
	cancelledSentinel = new(Handler)
	notInitSentinel   = new(Handler)
)

// slot is the single word-sized atomic that holds a token's handler state:
// nil (no handler, live), a pointer to the registered Handler, or one of
// the two sentinels above. Every Token implementation in this package
// shares this type so that register/unregister stays a single atomic
// exchange on the fast path, with no mutex acquired and no branch on rare
// events -- the slow path below is taken only when a concurrent cancel()
// is actually racing the caller.
//
// Callers identify a registration by the address of the *Handler they pass
// in, not by its contents, so the same *Handler must be used for the
// matching tryRegister/tryUnregister pair (Guard arranges this by keeping
// the Handler in a field and always taking its address).
type slot struct {
	v atomic.Pointer[Handler]
}

// tryRegister is the register fast path: atomically swap in handler. If the
// slot was nil, registration succeeded. If it held cancelledSentinel, the
// token was already cancelled; the sentinel is restored and registration
// fails. Any other previous value is a double-registration bug.
func (s *slot) tryRegister(handler *Handler) bool {
	prev := s.v.Swap(handler)
	switch prev {
	case nil:
		return true
	case cancelledSentinel:
		s.v.Store(cancelledSentinel)
		return false
	default:
		check(false, "handler already registered")
		return false
	}
}

// tryUnregister is the unregister fast path: atomically swap in nil. If the
// slot held exactly this handler, unregistration succeeded cleanly. If it
// held cancelledSentinel, a concurrent cancel has begun and the sentinel is
// restored; the caller must fall back to the slow path.
func (s *slot) tryUnregister(handler *Handler) bool {
	prev := s.v.Swap(nil)
	if prev == handler {
		return true
	}
	check(prev == cancelledSentinel, "another handler was registered")
	s.v.Store(cancelledSentinel)
	return false
}

// cancel atomically swaps in cancelledSentinel and reports the handler that
// was registered, if any, so the caller can invoke its Cancel with no lock
// held. fired is false when no handler was registered (including when the
// slot was still notInitSentinel, which a source's cancel walk never sees
// because unlinked tokens aren't in its list).
func (s *slot) cancel() (handler Handler, fired bool) {
	prev := s.v.Swap(cancelledSentinel)
	if prev == nil || prev == cancelledSentinel || prev == notInitSentinel {
		return nil, false
	}
	return *prev, true
}
