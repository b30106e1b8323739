//go:build linux && !cantok_disable_eventfd

package cantok

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// eventfdSignal is the preferred pollSignal on Linux: a single fd, readable
// once written, that eventfd(2) accounts for without the two file
// descriptors a pipe needs.
type eventfdSignal struct {
	fdNum int
}

func newPollSignal() (pollSignal, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &eventfdSignal{fdNum: fd}, nil
}

func (e *eventfdSignal) fd() int { return e.fdNum }

func (e *eventfdSignal) raise() error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 1)
	_, err := unix.Write(e.fdNum, buf[:])
	return err
}

func (e *eventfdSignal) drain() error {
	var buf [8]byte
	_, err := unix.Read(e.fdNum, buf[:])
	return err
}

func (e *eventfdSignal) close() error {
	return unix.Close(e.fdNum)
}
