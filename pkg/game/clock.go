package game

// StepClock converts irregular frame deltas into whole logical steps. The
// caller supplies elapsed time; the clock is otherwise time-source agnostic.
type StepClock struct {
	acc float64 // seconds
}

// Tick adds dt seconds to the accumulator and consumes every whole step now
// due, returning the count. All due steps are reported in one call: a long
// stall (for example a suspended process) replays every implied move rather
// than discarding time.
func (c *StepClock) Tick(dt, stepInterval float64) int {
	if dt <= 0 || stepInterval <= 0 {
		return 0
	}
	c.acc += dt
	n := 0
	for c.acc >= stepInterval {
		c.acc -= stepInterval
		n++
	}
	return n
}

// Reset drops any accumulated partial step.
func (c *StepClock) Reset() {
	c.acc = 0
}
