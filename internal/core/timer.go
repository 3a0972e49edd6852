package core

import "time"

// FixedStep decouples the game-logic tick cadence from the render frame
// rate. Elapsed wall-clock time accumulates each frame; when the
// accumulator reaches the tick interval, exactly one tick fires and the
// accumulator resets to zero.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller with the given tick interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 160 * time.Millisecond
	}
	f.interval = interval
}

// Interval returns the configured tick interval.
func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// Advance adds delta to the accumulator and reports whether one tick
// should fire. Firing resets the accumulator, so a late frame still
// produces at most one tick.
func (f *FixedStep) Advance(delta time.Duration) bool {
	f.accumulator += delta
	if f.accumulator >= f.interval {
		f.accumulator = 0
		return true
	}
	return false
}

// ShouldStep measures elapsed wall-clock time since the previous call
// and reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}
