//go:build unix && (!linux || cantok_disable_eventfd)

package cantok

import "golang.org/x/sys/unix"

// pipeSignal is the pollSignal fallback for platforms without eventfd (any
// non-Linux Unix) or when the cantok_disable_eventfd build tag forces it:
// a close-on-exec, non-blocking pipe, woken by a single byte write.
type pipeSignal struct {
	r, w int
}

func newPollSignal() (pollSignal, error) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_CLOEXEC|unix.O_NONBLOCK); err != nil {
		return nil, err
	}
	return &pipeSignal{r: fds[0], w: fds[1]}, nil
}

func (p *pipeSignal) fd() int { return p.r }

func (p *pipeSignal) raise() error {
	_, err := unix.Write(p.w, []byte{0})
	return err
}

func (p *pipeSignal) drain() error {
	var buf [1]byte
	_, err := unix.Read(p.r, buf[:])
	return err
}

func (p *pipeSignal) close() error {
	err := unix.Close(p.r)
	if werr := unix.Close(p.w); err == nil {
		err = werr
	}
	return err
}
