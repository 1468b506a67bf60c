// Package clock drives the animation time uniform and the global pause flag.
package clock

// Clock accumulates scaled frame time while not paused.
// Pausing stops only this clock; pointer interaction keeps running.
type Clock struct {
	elapsed float32
	scale   float32
	paused  bool
}

// New returns a running clock at scale 1.
func New() *Clock {
	return &Clock{scale: 1}
}

// Tick advances the clock by dt seconds times the scale, unless paused.
func (c *Clock) Tick(dt float32) {
	if c.paused {
		return
	}
	c.elapsed += dt * c.scale
}

// Elapsed returns the accumulated time in seconds.
func (c *Clock) Elapsed() float32 {
	return c.elapsed
}

// SetScale sets the time multiplier. Negative values are treated as 0.
func (c *Clock) SetScale(s float32) {
	if s < 0 {
		s = 0
	}
	c.scale = s
}

// TogglePause flips the pause flag and returns the new state.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}
