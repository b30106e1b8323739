package cantok

// Thread owns a goroutine and the StandaloneToken threaded into it. Close
// cancels the token and waits for the goroutine to return, the Go
// equivalent of the original's destructor: Go has no destructors, so
// callers that want the "cancel and join on scope exit" guarantee call
// Close explicitly, typically via defer.
type Thread struct {
	token *StandaloneToken
	done  chan struct{}
}

// Go spawns fn on a new goroutine, passing it a fresh StandaloneToken.
// Callers that need extra arguments close over them the way any Go
// goroutine launch would, rather than forwarding a variadic argument list.
func Go(fn func(token Token)) *Thread {
	th := &Thread{
		token: NewStandaloneToken(),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(th.done)
		fn(th.token)
	}()
	return th
}

// Cancel cancels the thread's token without waiting for the goroutine to
// return.
func (th *Thread) Cancel() { th.token.Cancel() }

// Join blocks until the goroutine returns, without cancelling it.
func (th *Thread) Join() { <-th.done }

// Close cancels the token and waits for the goroutine to return. It is
// idempotent: token.Cancel and the done-channel receive are both safe to
// repeat.
func (th *Thread) Close() {
	th.token.Cancel()
	<-th.done
}
