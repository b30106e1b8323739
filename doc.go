// Package cantok provides cooperative cancellation for blocking operations.
//
// It is built around a small handshake between a Token, which a blocking
// call consults, and a Handler, which knows how to unblock that particular
// call. For a StandaloneToken, registering and unregistering a handler each
// cost one atomic exchange on the common path, with no mutex acquired and no
// branch on rare events; a slow path taking a lock is only reached when a
// cancellation is actually racing the blocking call. A SourcedToken's common
// path is not lock-free: each registration and unregistration also updates
// its source's count of registered handlers, which takes or releases a read
// lock.
//
// A typical adapter looks like:
//
//	func sleepFor(d time.Duration, token cantok.Token) {
//		handler := newSleepHandler()
//		guard := cantok.NewGuard(token, handler)
//		defer guard.Close()
//		if guard.IsCancelled() {
//			return
//		}
//		handler.wait(d)
//	}
//
// This package ships three such adapters: SleepFor, the condition-variable
// Wait family, and the Unix poll/read adapter (Poll, Read). A StandaloneToken
// carries its own cancellation state; a Source vends any number of
// SourcedTokens that a single Source.Cancel fans out to. DummyToken is a
// Token that is never cancelled, for call sites that want the adapters
// above without opting into cancellation.
//
// cantok has no preemption: a goroutine that never checks its token, or is
// blocked on something other than one of these adapters, keeps running.
// Cancellation carries no result or error through the token -- it is a
// boolean signal, not a channel for propagating failure.
package cantok
