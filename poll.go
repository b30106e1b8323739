//go:build unix

package cantok

import "golang.org/x/sys/unix"

// pollSignal is a self-signalling file descriptor: one goroutine's raise
// wakes another goroutine blocked in a poll on fd. It is implemented by an
// eventfd where available (signal_eventfd.go) and a pipe elsewhere or when
// the cantok_disable_eventfd build tag forces it (signal_pipe.go).
type pollSignal interface {
	fd() int
	raise() error
	drain() error
	close() error
}

// pollHandler is the Handler the poll/read adapter registers: Cancel writes
// to the self-pipe to wake a concurrent poll, Reset drains it so the
// underlying fd can be reused by another call.
type pollHandler struct {
	sig       pollSignal
	cancelErr error
}

func newPollHandler() (*pollHandler, error) {
	sig, err := newPollSignal()
	if err != nil {
		return nil, err
	}
	return &pollHandler{sig: sig}, nil
}

func (h *pollHandler) Cancel() {
	h.cancelErr = h.sig.raise()
}

func (h *pollHandler) Reset() {
	if err := h.sig.drain(); err != nil && h.cancelErr == nil {
		h.cancelErr = err
	}
}

// Poll is a cancellable version of POSIX poll(2). It polls fd for events
// alongside a self-signalling fd that token's cancellation writes to, and
// returns fd's revents. If token is already cancelled, or is cancelled
// before fd becomes ready, Poll returns 0 with no error.
func Poll(fd int, events int16, timeoutMs int, token Token) (int16, error) {
	handler, err := newPollHandler()
	if err != nil {
		return 0, err
	}
	defer handler.sig.close()

	guard := NewGuard(token, handler)
	defer guard.Close()

	if guard.IsCancelled() {
		return 0, nil
	}

	fds := []unix.PollFd{
		{Fd: int32(fd), Events: events},
		{Fd: int32(handler.sig.fd()), Events: unix.POLLIN},
	}

	for {
		_, err := unix.Poll(fds, timeoutMs)
		if err == nil {
			break
		}
		if err == unix.EINTR {
			continue
		}
		return 0, err
	}

	// Close synchronizes with a concurrent Cancel before cancelErr is read
	// below: the slow path only returns once Reset has run on this
	// goroutine, which is the same handshake that makes it safe for Reset to
	// touch handler state Cancel wrote. Reading cancelErr any earlier (e.g.
	// through the deferred Close above) would race the canceller's write.
	guard.Close()

	if handler.cancelErr != nil {
		return 0, handler.cancelErr
	}

	return fds[0].Revents, nil
}

// Read is the obvious composition of a cancellable poll for readability
// followed by the underlying read: it returns 0, nil if token is cancelled
// before fd becomes readable.
func Read(fd int, buf []byte, token Token) (int, error) {
	revents, err := Poll(fd, unix.POLLIN, -1, token)
	if err != nil {
		return 0, err
	}
	if revents&unix.POLLIN == 0 {
		return 0, nil
	}
	return unix.Read(fd, buf)
}
