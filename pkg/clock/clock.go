// Package clock provides the timing services Tide components schedule
// against: current time, delayed callbacks and animation frames.
//
// Components never reach for the time package directly. They accept a
// Scheduler so that tests can substitute Manual and drive time
// deterministically, the same way a fake clock drives animation tests.
package clock

import "time"

// FrameInterval approximates one animation frame at 60fps.
const FrameInterval = 16 * time.Millisecond

// Scheduler is the timing surface used by toolkit components.
//
// The cancel funcs returned by AfterFunc and RequestFrame are idempotent:
// calling them twice, or after the callback already ran, is a no-op.
type Scheduler interface {
	// Now reports the scheduler's current time.
	Now() time.Time

	// AfterFunc runs fn once after d has elapsed.
	AfterFunc(d time.Duration, fn func()) (cancel func())

	// RequestFrame runs fn on the next animation frame.
	RequestFrame(fn func()) (cancel func())
}

// Wall schedules against real time. Callbacks run on timer goroutines.
type Wall struct{}

// NewWall returns a Scheduler backed by real timers.
func NewWall() Wall { return Wall{} }

func (Wall) Now() time.Time { return time.Now() }

func (Wall) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func (w Wall) RequestFrame(fn func()) func() {
	return w.AfterFunc(FrameInterval, fn)
}
