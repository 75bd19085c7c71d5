// Package uitest provides a widget testing harness for Tide.
//
// # Quick Start
//
// Create a harness, assemble a widget against its document and scheduler,
// and simulate input:
//
//	func TestMyWidget(t *testing.T) {
//	    h := uitest.New()
//	    w, err := widgets.NewTabs(h.Config("tabs"), widgets.TabsOptions{
//	        Items: []string{"One", "Two"},
//	    })
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    h.TouchStart(w.Element(), 10, 10)
//	    h.Advance(50 * time.Millisecond)
//	    h.TouchEnd(w.Element(), 10, 10)
//	}
//
// The harness document is touch-capable and the scheduler is manual, so
// gesture timing and deferred cleanup are fully deterministic: Advance
// fires timers, FlushFrames runs animation-frame callbacks, and nothing
// happens between those calls.
package uitest

import (
	"time"

	"github.com/go-tide/tide/pkg/clock"
	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
)

// Harness bundles the environment a widget under test runs in: a
// touch-capable document and a manual scheduler.
type Harness struct {
	Doc   *dom.Document
	Clock *clock.Manual
}

// New returns a harness with a fresh document and scheduler.
func New() *Harness {
	return &Harness{
		Doc:   dom.NewDocument(dom.WithTouchSupport(true)),
		Clock: clock.NewManual(),
	}
}

// Config returns an entity configuration bound to the harness environment.
func (h *Harness) Config(name string) core.Config {
	return core.Config{Name: name, Document: h.Doc, Scheduler: h.Clock}
}

// Dispatch delivers an event of the given type to el at page coordinates
// (x, y), stamped with the harness clock.
func (h *Harness) Dispatch(el *dom.Element, typ string, x, y float64) {
	el.Dispatch(&dom.Event{Type: typ, X: x, Y: y, Time: h.Clock.Now()})
}

// TouchStart simulates a finger going down on el.
func (h *Harness) TouchStart(el *dom.Element, x, y float64) {
	h.Dispatch(el, "touchstart", x, y)
}

// TouchMove simulates a finger moving while down.
func (h *Harness) TouchMove(el *dom.Element, x, y float64) {
	h.Dispatch(el, "touchmove", x, y)
}

// TouchEnd simulates a finger lifting off el.
func (h *Harness) TouchEnd(el *dom.Element, x, y float64) {
	h.Dispatch(el, "touchend", x, y)
}

// Tap simulates a quick touch with no movement: start, 50ms, end.
func (h *Harness) Tap(el *dom.Element, x, y float64) {
	h.TouchStart(el, x, y)
	h.Advance(50 * time.Millisecond)
	h.TouchEnd(el, x, y)
}

// MouseDown simulates a pointer press on el.
func (h *Harness) MouseDown(el *dom.Element, x, y float64) {
	h.Dispatch(el, "mousedown", x, y)
}

// Click simulates a click on el.
func (h *Harness) Click(el *dom.Element, x, y float64) {
	h.Dispatch(el, "click", x, y)
}

// Input simulates the user typing into el: an input event carrying the new
// value.
func (h *Harness) Input(el *dom.Element, value string) {
	el.Dispatch(&dom.Event{Type: "input", Data: value, Time: h.Clock.Now()})
}

// Focus delivers a focus event to el.
func (h *Harness) Focus(el *dom.Element) {
	h.Dispatch(el, "focus", 0, 0)
}

// Blur delivers a blur event to el.
func (h *Harness) Blur(el *dom.Element) {
	h.Dispatch(el, "blur", 0, 0)
}

// DocMouseUp delivers a document-level mouseup, the way a pointer released
// anywhere on the page reaches document listeners.
func (h *Harness) DocMouseUp() {
	h.Doc.DispatchToDocument(&dom.Event{Type: "mouseup", Time: h.Clock.Now()})
}

// DocMouseLeave delivers a document-level mouseleave, the way a pointer
// leaving the page reaches document listeners.
func (h *Harness) DocMouseLeave() {
	h.Doc.DispatchToDocument(&dom.Event{Type: "mouseleave", Time: h.Clock.Now()})
}

// Advance moves the manual clock forward, firing due timers in order.
func (h *Harness) Advance(d time.Duration) {
	h.Clock.Advance(d)
}

// FlushFrames runs queued animation-frame callbacks once.
func (h *Harness) FlushFrames() {
	h.Clock.FlushFrames()
}

// CountByClass reports how many elements under root (inclusive) carry the
// given class.
func CountByClass(root *dom.Element, class string) int {
	return len(root.QueryAllByClass(class))
}
