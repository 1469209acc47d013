package drawable

import "time"

// A Clock reports logical time in milliseconds. It must never run backwards.
type Clock interface {
	CurrentTime() float64
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	current float64
}

// NewManualClock creates a ManualClock starting at the given time.
func NewManualClock(startMs float64) *ManualClock {
	c := new(ManualClock)
	c.current = startMs
	return c
}

// CurrentTime returns the last time set on the clock.
func (c *ManualClock) CurrentTime() float64 {
	return c.current
}

// Set moves the clock to an absolute time. Earlier times are ignored.
func (c *ManualClock) Set(ms float64) {
	if ms > c.current {
		c.current = ms
	}
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.Set(c.current + milliseconds(d))
}

// StopwatchClock measures real elapsed time since it was started.
type StopwatchClock struct {
	start time.Time
	now   func() time.Time
}

// NewStopwatchClock creates a StopwatchClock running from now.
func NewStopwatchClock() *StopwatchClock {
	c := new(StopwatchClock)
	c.now = time.Now
	c.start = c.now()
	return c
}

// CurrentTime returns the milliseconds elapsed since the stopwatch started.
func (c *StopwatchClock) CurrentTime() float64 {
	return milliseconds(c.now().Sub(c.start))
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
