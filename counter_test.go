package cantok

import (
	"testing"
	"time"

	"github.com/zeebo/assert"
)

// TestSourceActiveCounter_TracksOutstandingGuards drives counter's
// Acquire/Release through Source's real register/unregister path rather
// than calling them directly: a guard held against a sourced token keeps
// the source's active count nonzero, and closing it returns the count to
// zero, exactly the invariant Source.Reset relies on.
func TestSourceActiveCounter_TracksOutstandingGuards(t *testing.T) {
	src := NewSource()
	tok := src.CreateToken()
	active := &src.state.Load().active

	assert.That(t, active.Zero())

	h := &recordingHandler{}
	g := NewGuard(tok, h)
	assert.That(t, !active.Zero())

	g.Close()
	assert.That(t, active.Zero())
}

// TestSourceActiveCounter_WaitUnblocksOnceGuardCloses drives counter.Wait
// the same way: it should block for as long as any sourced token has a
// handler registered and unblock the instant the last guard closes.
func TestSourceActiveCounter_WaitUnblocksOnceGuardCloses(t *testing.T) {
	src := NewSource()
	tok := src.CreateToken()
	active := &src.state.Load().active

	h := &recordingHandler{}
	g := NewGuard(tok, h)

	waited := make(chan struct{})
	go func() {
		active.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while a guard is still registered")
	case <-time.After(20 * time.Millisecond):
	}

	g.Close()

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not unblock after the guard closed")
	}
}

// TestSourceActiveCounter_ManyConcurrentGuards exercises Acquire/Release
// with many guards held at once across many sourced tokens, mirroring the
// fan-out shape Source.Cancel itself deals with.
func TestSourceActiveCounter_ManyConcurrentGuards(t *testing.T) {
	const n = 100

	src := NewSource()
	active := &src.state.Load().active

	tokens := make([]*SourcedToken, n)
	guards := make([]*Guard, n)
	handlers := make([]recordingHandler, n)
	for i := range tokens {
		tokens[i] = src.CreateToken()
		guards[i] = NewGuard(tokens[i], &handlers[i])
	}
	assert.That(t, !active.Zero())

	for _, g := range guards {
		g.Close()
	}
	assert.That(t, active.Zero())
}
