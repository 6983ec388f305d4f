//go:build !tinygo

package hal

import "time"

// hostClock reports milliseconds since construction, truncated to the
// 32-bit counter width the firmware timing model uses.
type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}
