package thicket

import "time"

// defaultDelta is the frame delta, in seconds, assumed before the first tick.
const defaultDelta = 1.0 / 60

// wallClock measures real elapsed time.
type wallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock returns a Clock backed by the system monotonic clock. The first
// Tick reports the time elapsed since the clock was created.
func NewWallClock() Clock {
	return &wallClock{now: time.Now, last: time.Now()}
}

func (c *wallClock) Tick() time.Duration {
	t := c.now()
	elapsed := t.Sub(c.last)
	c.last = t
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// FrameClock turns a Clock into a per-frame delta in seconds. The delta only
// scales input response; shapes never read it.
type FrameClock struct {
	src    Clock
	delta  float64
	frames uint64
}

// NewFrameClock wraps src. A nil src uses NewWallClock.
func NewFrameClock(src Clock) *FrameClock {
	if src == nil {
		src = NewWallClock()
	}
	return &FrameClock{src: src, delta: defaultDelta}
}

// Tick measures the time since the previous tick, stores it as the delta and
// returns it.
func (f *FrameClock) Tick() float64 {
	f.delta = f.src.Tick().Seconds()
	f.frames++
	return f.delta
}

// Delta returns the most recent frame delta in seconds.
func (f *FrameClock) Delta() float64 {
	return f.delta
}

// Frames returns the number of ticks so far.
func (f *FrameClock) Frames() uint64 {
	return f.frames
}
