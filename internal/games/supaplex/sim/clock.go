package sim

import "time"

// Clock is a fixed-step accumulator. Real time goes in, whole ticks come
// out, and time short of a full tick is kept for the next call.
type Clock struct {
	TickRate int // ticks per second

	acc time.Duration
}

// NewClock returns a clock running at the given tick rate.
func NewClock(tickRate int) *Clock {
	return &Clock{TickRate: tickRate}
}

// Interval returns the duration of one tick.
func (c *Clock) Interval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

// StepSeconds returns the duration of one tick in seconds.
func (c *Clock) StepSeconds() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1 / float64(c.TickRate)
}

// Advance adds elapsed real time and returns how many ticks are due.
func (c *Clock) Advance(elapsed time.Duration) int {
	step := c.Interval()
	if step <= 0 || elapsed <= 0 {
		return 0
	}
	c.acc += elapsed
	n := int(c.acc / step)
	c.acc -= time.Duration(n) * step
	return n
}

// Pending returns the time accumulated toward the next tick.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
