package engine

import (
	"time"
)

// TimeProvider supplies frame timestamps
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// Now returns the current time with monotonic clock reading
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer measures variable frame durations from a time provider
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
}

// NewFrameTimer starts measuring from the provider's current time
func NewFrameTimer(provider TimeProvider) *FrameTimer {
	if provider == nil {
		provider = MonotonicTimeProvider{}
	}
	return &FrameTimer{provider: provider, last: provider.Now()}
}

// Tick returns the time elapsed since the previous tick
func (t *FrameTimer) Tick() time.Duration {
	now := t.provider.Now()
	dt := now.Sub(t.last)
	t.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// FixedClock converts variable frame durations into whole fixed steps
// Catch-up is capped at maxSteps per frame, surplus time is dropped
type FixedClock struct {
	step     time.Duration
	maxSteps int

	accumulator time.Duration
	paused      bool
	dropped     time.Duration
}

// NewFixedClock creates a clock with the given step and catch-up cap
func NewFixedClock(step time.Duration, maxSteps int) *FixedClock {
	return &FixedClock{step: step, maxSteps: max(maxSteps, 1)}
}

// Advance accumulates frame time and returns how many fixed steps are due
// Paused clocks accumulate nothing
func (c *FixedClock) Advance(frame time.Duration) int {
	if c.paused || frame <= 0 {
		return 0
	}
	c.accumulator += frame

	n := int(c.accumulator / c.step)
	if n > c.maxSteps {
		surplus := c.accumulator - time.Duration(c.maxSteps)*c.step
		c.dropped += surplus - surplus%c.step
		c.accumulator = surplus % c.step
		n = c.maxSteps
	} else {
		c.accumulator -= time.Duration(n) * c.step
	}
	return n
}

// Step returns the fixed step duration
func (c *FixedClock) Step() time.Duration {
	return c.step
}

// Pending returns accumulated time not yet converted to a step
func (c *FixedClock) Pending() time.Duration {
	return c.accumulator
}

// Dropped returns the total catch-up time discarded by the cap
func (c *FixedClock) Dropped() time.Duration {
	return c.dropped
}

// Pause stops accumulation and discards the partial step
func (c *FixedClock) Pause() {
	c.paused = true
	c.accumulator = 0
}

// Resume restarts accumulation
func (c *FixedClock) Resume() {
	c.paused = false
}

// IsPaused reports whether the clock is paused
func (c *FixedClock) IsPaused() bool {
	return c.paused
}
