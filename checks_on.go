//go:build !cantok_nocheck

package cantok

// check panics with a ProtocolError when cond is false. Compiled out
// entirely under the cantok_nocheck build tag for callers who have
// validated their usage and want the fast path free of branches.
func check(cond bool, msg string) {
	if !cond {
		protocolViolation(msg)
	}
}
