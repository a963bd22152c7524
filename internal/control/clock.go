package control

import "time"

// Clock is the animation clock. It only moves while running, so pausing
// freezes the pattern and resuming continues where it stopped.
type Clock struct {
	elapsed time.Duration
	paused  bool
}

// Advance moves the clock forward by dt unless paused.
func (c *Clock) Advance(dt time.Duration) {
	if c.paused || dt <= 0 {
		return
	}
	c.elapsed += dt
}

// TogglePause flips the paused state and returns the new one.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

func (c *Clock) Paused() bool {
	return c.paused
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Seconds is the frame time handed to the evaluator.
func (c *Clock) Seconds() float64 {
	return c.elapsed.Seconds()
}
