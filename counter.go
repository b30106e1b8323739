package cantok

import (
	"sync"
	"sync/atomic"
)

// counter is a simple wait-group-like primitive: Acquire/Release bracket a
// unit of work, Zero is a non-blocking check for "nothing outstanding", and
// Wait blocks until that becomes true. Source uses it to track how many of
// its sourced tokens currently have a handler registered, so that Reset can
// refuse (via Zero, as a debug check rather than a block) to swap the
// shared state out from under an active guard.
type counter struct {
	mu    sync.RWMutex
	count int32
}

// Acquire increments the counter and blocks Wait calls.
func (c *counter) Acquire() {
	atomic.AddInt32(&c.count, 1)
	c.mu.RLock()
}

// Release decrements the counter and unblocks Wait if the counter is empty.
func (c *counter) Release() {
	c.mu.RUnlock()
	atomic.AddInt32(&c.count, -1)
}

// Zero reports whether the counter is not currently Acquired.
func (c *counter) Zero() bool {
	return atomic.LoadInt32(&c.count) == 0
}

// Wait blocks until the counter is zero.
func (c *counter) Wait() {
	c.mu.Lock()
	c.mu.Unlock()
}
