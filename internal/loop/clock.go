package loop

import "time"

// Clock is a monotonic millisecond counter. It may wrap around.
type Clock interface {
	NowMillis() uint32
}

// TicksDiff returns a-b in milliseconds, correct across one wraparound.
func TicksDiff(a, b uint32) int32 {
	return int32(a - b)
}

// SystemClock counts milliseconds since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis implements Clock. It uses the monotonic reading of time.Now.
func (c *SystemClock) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
