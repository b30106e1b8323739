package cantok

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestGuard_CloseIsIdempotent(t *testing.T) {
	tok := NewStandaloneToken()
	h := &recordingHandler{}
	g := NewGuard(tok, h)
	assert.That(t, !g.IsCancelled())

	g.Close()
	g.Close()
	g.Close()

	assert.That(t, !h.cancelled)
	assert.That(t, !h.reset)
}
