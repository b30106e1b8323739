package cantok

// Guard ties one Handler to one Token for a lexical scope. It performs the
// register on construction and, via Close, the matching unregister -- fast
// path when no cancellation raced it, slow path (waiting for the
// cancellation to finish and invoking the handler's Reset) otherwise.
//
// Guard is built to be used like:
//
//	g := cantok.NewGuard(token, handler)
//	defer g.Close()
//	if g.IsCancelled() {
//		return
//	}
//	... blocking call ...
//
// A Guard must not be copied after NewGuard; pass it by pointer or let it
// go out of scope. There is no move equivalent of the C++ original's
// move-constructor: Go's defer-based scoping makes relocating a guard
// across a scope boundary unnecessary.
type Guard struct {
	token      Token
	handler    Handler
	registered bool
}

// NewGuard registers handler against token and returns the resulting
// Guard. Check IsCancelled before proceeding with the blocking call: if
// true, the token was already cancelled and no handler was registered, so
// there is nothing for Close to undo later, but skipping the blocking call
// is still the caller's responsibility.
func NewGuard(token Token, handler Handler) *Guard {
	g := &Guard{token: token, handler: handler}
	g.registered = token.tryRegister(&g.handler)
	return g
}

// IsCancelled reports whether no handler is currently registered: before
// Close, that means the token was already cancelled at registration time;
// after Close, it always reports true.
func (g *Guard) IsCancelled() bool { return !g.registered }

// Close unregisters the handler, taking the slow path if a cancellation is
// concurrently in flight. It is idempotent: calling it more than once after
// the first successful unregistration is a no-op.
func (g *Guard) Close() {
	if !g.registered {
		return
	}
	if g.token.tryUnregister(&g.handler) {
		g.registered = false
		return
	}
	g.token.unregister(&g.handler)
	g.registered = false
}
