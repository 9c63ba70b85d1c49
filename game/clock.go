package game

import "time"

// Clock accumulates frame time and releases at most one tick per frame.
// The interval is subtracted rather than the accumulator zeroed, so
// uneven frame times do not lose game time.
type Clock struct {
	acc time.Duration
}

// Advance adds dt and reports whether a tick is due.
func (c *Clock) Advance(dt, interval time.Duration) bool {
	c.acc += dt
	if c.acc >= interval {
		c.acc -= interval
		return true
	}
	return false
}

// Progress is how far the accumulator is into the current interval, in [0, 1].
func (c *Clock) Progress(interval time.Duration) float64 {
	if interval <= 0 {
		return 1
	}
	p := float64(c.acc) / float64(interval)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func (c *Clock) Reset() {
	c.acc = 0
}
