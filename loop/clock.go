package loop

import (
	"sync"
	"time"
)

// Clock supplies monotonic timestamps measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reports the time elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the elapsed time, immune to wall clock adjustments.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Use it to drive a scheduler from tests
// without real time passing.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Duration
}

// NewManualClock creates a manual clock reading start.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d and returns the new reading.
func (c *ManualClock) Advance(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	return c.now
}
