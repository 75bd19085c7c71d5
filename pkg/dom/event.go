package dom

import "time"

// Event is a normalized input or document event. X and Y are page
// coordinates; DeltaX and DeltaY are filled by gesture forwarding. A zero
// Time means the receiver should consult its own clock.
type Event struct {
	Type   string
	Target *Element
	X, Y   float64
	DeltaX float64
	DeltaY float64
	Time   time.Time
	Data   any

	stopped bool
}

// StopPropagation prevents the event from bubbling past the current element.
// Listeners already snapshotted on the same element still run.
func (e *Event) StopPropagation() { e.stopped = true }

type listener struct {
	fn      func(*Event)
	removed bool
}

// invoke calls each listener that is still live at call time. Listeners
// removed earlier in the same dispatch are skipped, matching the usual
// remove-during-dispatch contract.
func invoke(d *Document, ls []*listener, evt *Event) {
	for _, l := range ls {
		d.mu.Lock()
		dead := l.removed
		d.mu.Unlock()
		if dead {
			continue
		}
		l.fn(evt)
	}
}
