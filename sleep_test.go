package cantok

import (
	"testing"
	"time"

	"github.com/zeebo/assert"
)

// TestSleepFor_CancelWhileIdleSleeper covers the "cancel while idle
// sleeper" scenario: a goroutine loops SleepFor(60s, token) while the token
// is live; the main goroutine cancels it after a short delay and expects
// the loop to exit promptly.
func TestSleepFor_CancelWhileIdleSleeper(t *testing.T) {
	tok := NewStandaloneToken()

	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for !tok.IsCancelled() {
			SleepFor(60*time.Second, tok)
		}
	}()

	time.Sleep(100 * time.Millisecond)
	tok.Cancel()

	select {
	case <-exited:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("sleeper did not exit within 100ms of cancel")
	}
}

func TestSleepFor_DummyTokenSleepsFullDuration(t *testing.T) {
	var tok DummyToken
	start := time.Now()
	SleepFor(30*time.Millisecond, tok)
	assert.That(t, time.Since(start) >= 30*time.Millisecond)
}
