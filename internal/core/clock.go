package core

import "time"

// TimeSource supplies the current time to a Clock.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock.
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time {
	return time.Now()
}

// Clock measures elapsed time between frames and knows the frame cadence.
// The first Tick establishes the baseline and returns 0.
type Clock struct {
	src      TimeSource
	last     time.Time
	started  bool
	fps      int
	maxDelta time.Duration
}

// NewClock creates a clock targeting fps frames per second whose deltas are
// capped at maxDelta. A nil source uses the wall clock.
func NewClock(src TimeSource, fps int, maxDelta time.Duration) *Clock {
	if src == nil {
		src = SystemTime{}
	}
	if fps <= 0 {
		fps = 60
	}
	return &Clock{src: src, fps: fps, maxDelta: maxDelta}
}

// Tick returns the time elapsed since the previous call, clamped into
// [0, maxDelta]. Stalls (suspended terminal, debugger) therefore never
// produce a huge step, and a clock that goes backwards produces 0.
func (c *Clock) Tick() time.Duration {
	now := c.src.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the baseline; the next Tick returns 0.
func (c *Clock) Reset() {
	c.started = false
}

// FrameInterval returns the target time between frames.
func (c *Clock) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.fps)
}

// FPS returns the target frame rate.
func (c *Clock) FPS() int {
	return c.fps
}

// ManualTime is a TimeSource that only moves when told to.
type ManualTime struct {
	now time.Time
}

// NewManualTime creates a manual time source starting at start.
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

// Now returns the current manual time.
func (m *ManualTime) Now() time.Time {
	return m.now
}

// Advance moves the time forward (or backward for negative d).
func (m *ManualTime) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
