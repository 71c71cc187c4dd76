package core

import "time"

// DefaultFPS is the frame rate used when none, or a non-positive one, is given.
const DefaultFPS = 10.0

// FixedStep helps run simulation updates at a steady generations-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first call to ShouldStep fires immediately.
func NewFixedStep(fps float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetFPS(fps float64) {
	if !(fps > 0) {
		fps = DefaultFPS
	}
	f.step = time.Duration(float64(time.Second) / fps)
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
