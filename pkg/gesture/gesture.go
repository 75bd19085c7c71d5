// Package gesture tracks per-entity touch state and classifies raw touch
// sequences into taps and swipes.
//
// Classification is split from delivery. State records the facts of an
// in-progress touch; the pure Classify helpers turn those facts into
// gesture payloads. The element binder drives both and emits the results
// through the entity's emitter.
package gesture

import (
	"math"
	"time"

	"github.com/go-tide/tide/pkg/dom"
)

const (
	// TapMaxDuration is the longest press still classified as a tap.
	TapMaxDuration = 250 * time.Millisecond

	// SwipeMinDistance is the horizontal travel, in pixels, past which a
	// move classifies as a swipe.
	SwipeMinDistance = 50.0
)

// Point is a position in page coordinates.
type Point struct {
	X, Y float64
}

// State is the touch bookkeeping an entity keeps between touch events.
// Begin and End are the only mutation points. End clears Touching and the
// active target but leaves the start facts readable, so classification
// that runs as a sequence ends still sees where it began.
type State struct {
	StartTime    time.Time
	Start        Point
	Touching     bool
	ActiveTarget *dom.Element
}

// Begin records the start of a touch sequence.
func (s *State) Begin(at Point, target *dom.Element, now time.Time) {
	s.StartTime = now
	s.Start = at
	s.Touching = true
	s.ActiveTarget = target
}

// End closes the touch sequence.
func (s *State) End() {
	s.Touching = false
	s.ActiveTarget = nil
}

// Duration reports how long the touch had been held as of now.
func (s *State) Duration(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// Delta reports movement from the start position to p.
func (s *State) Delta(p Point) (dx, dy float64) {
	return p.X - s.Start.X, p.Y - s.Start.Y
}

// Tap is the payload emitted for a completed quick press.
type Tap struct {
	Duration time.Duration
	X, Y     float64
}

// Direction is the horizontal sense of a swipe.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Swipe is the payload emitted when horizontal travel crosses
// SwipeMinDistance. One touch sequence may produce several swipes: every
// move past the threshold classifies again.
type Swipe struct {
	Direction Direction
	DeltaX    float64
	DeltaY    float64
}

// ClassifyTap reports the tap payload for a touch ending at now and
// position p, and whether the press was quick enough to qualify.
func ClassifyTap(s *State, p Point, now time.Time) (Tap, bool) {
	d := s.Duration(now)
	if d >= TapMaxDuration {
		return Tap{}, false
	}
	return Tap{Duration: d, X: p.X, Y: p.Y}, true
}

// ClassifySwipe reports the swipe payload for a move to p, and whether the
// horizontal travel qualifies.
func ClassifySwipe(s *State, p Point) (Swipe, bool) {
	dx, dy := s.Delta(p)
	if math.Abs(dx) <= SwipeMinDistance {
		return Swipe{}, false
	}
	dir := DirectionRight
	if dx < 0 {
		dir = DirectionLeft
	}
	return Swipe{Direction: dir, DeltaX: dx, DeltaY: dy}, true
}
