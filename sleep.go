package cantok

import "time"

// SleepFor is a free-standing convenience wrapper around token.SleepFor: it
// delegates entirely to the token, which is a DummyToken's plain time.Sleep
// or a real token's cancellable timed wait.
func SleepFor(d time.Duration, token Token) {
	token.SleepFor(d)
}
