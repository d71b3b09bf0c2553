package engine

import (
	"sync/atomic"
	"time"
)

// ManualClock is a TimeProvider that only moves when told to, for deterministic frame tests
type ManualClock struct {
	start   time.Time
	elapsed atomic.Int64 // Nanoseconds since start
}

// NewManualClock returns a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{start: start}
}

func (c *ManualClock) Now() time.Time {
	return c.start.Add(time.Duration(c.elapsed.Load()))
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.elapsed.Add(int64(d))
}

// Set jumps the clock to t; t may be earlier than the current reading
func (c *ManualClock) Set(t time.Time) {
	c.elapsed.Store(int64(t.Sub(c.start)))
}
