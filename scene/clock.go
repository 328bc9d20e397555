package scene

import "github.com/groundgeom/stripe"

// Clock advances scene time in fixed steps.
type Clock struct {
	// Current is the time updates sample at.
	Current stripe.Time
	// Step is the per-tick advance, in seconds.
	Step float64
}

// NewClock starts a clock at start, advancing by step per tick.
func NewClock(start stripe.Time, step float64) *Clock {
	return &Clock{Current: start, Step: step}
}

// Tick advances the clock one step and returns the new time.
func (c *Clock) Tick() stripe.Time {
	c.Current = c.Current.Add(c.Step)
	return c.Current
}
