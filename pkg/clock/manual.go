package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler under test control. Time only moves when Advance is
// called, and frame callbacks only run when FlushFrames is called, so tests
// observe every intermediate state.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
	frames []*manualFrame
}

type manualTimer struct {
	at      time.Time
	seq     int
	fn      func()
	stopped bool
}

type manualFrame struct {
	fn      func()
	stopped bool
}

// NewManual returns a Manual scheduler starting at a fixed epoch.
func NewManual() *Manual {
	return &Manual{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.seq++
	m.timers = append(m.timers, t)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		t.stopped = true
	}
}

func (m *Manual) RequestFrame(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := &manualFrame{fn: fn}
	m.frames = append(m.frames, f)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		f.stopped = true
	}
}

// Advance moves time forward by d, firing due timers in deadline order.
// Timers scheduled by a firing callback run in the same pass when their
// deadline falls within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for {
		t := m.popDueLocked(target)
		if t == nil {
			break
		}
		m.now = t.at
		fn := t.fn
		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

// popDueLocked removes and returns the earliest live timer due at or before
// target, preferring registration order on equal deadlines.
func (m *Manual) popDueLocked(target time.Time) *manualTimer {
	best := -1
	for i, t := range m.timers {
		if t.stopped || t.at.After(target) {
			continue
		}
		if best == -1 || t.at.Before(m.timers[best].at) ||
			(t.at.Equal(m.timers[best].at) && t.seq < m.timers[best].seq) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	t := m.timers[best]
	m.timers = append(m.timers[:best], m.timers[best+1:]...)
	return t
}

// FlushFrames runs every queued frame callback once, in request order.
// Frames requested by a running callback wait for the next flush.
func (m *Manual) FlushFrames() {
	m.mu.Lock()
	frames := m.frames
	m.frames = nil
	m.mu.Unlock()
	for _, f := range frames {
		m.mu.Lock()
		stopped := f.stopped
		m.mu.Unlock()
		if !stopped {
			f.fn()
		}
	}
}

// TimerCount reports the number of pending, uncancelled timers.
func (m *Manual) TimerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// FrameCount reports the number of pending, uncancelled frame requests.
func (m *Manual) FrameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, f := range m.frames {
		if !f.stopped {
			n++
		}
	}
	return n
}
