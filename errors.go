package cantok

// ProtocolError is panicked when a caller violates the register/unregister
// handshake that tokens and guards rely on: registering a handler twice,
// resetting a token that is still in use, or any other ordering the
// handshake was not built to survive. These are programmer errors, not
// runtime conditions a caller can recover from, so they panic rather than
// return an error -- the same choice sync.Mutex makes for unlock-of-unlocked.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "cantok: " + e.Msg }

func protocolViolation(msg string) {
	panic(&ProtocolError{Msg: msg})
}
