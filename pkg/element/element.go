// Package element binds entities to host elements and wires touch gesture
// detection onto them.
//
// Bind is the enhancer widgets use to acquire their host element. On
// touch-capable documents an interactive binding listens for the raw touch
// events, keeps the entity's touch state current and classifies the
// sequence into tap and swipe events emitted through the entity:
//
//	entity, err := core.Assemble(cfg,
//	    core.WithEvents(),
//	    element.Bind(element.Options{Tag: "nav", Interactive: true}),
//	    core.WithLifecycle(),
//	)
//	entity.On(element.EventTap, func(data any) {
//	    tap := data.(gesture.Tap)
//	    // ...
//	})
//
// Classification is deliberately not exclusive: a single touch sequence
// that travels far enough and ends quickly produces both swipe and tap
// events, and every move past the swipe threshold emits again. Consumers
// that want one-shot swipes debounce on their side.
package element

import (
	"fmt"

	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/gesture"
)

// Event names emitted or forwarded by bound entities.
const (
	// EventTap is emitted when a touch sequence ends quickly enough.
	EventTap = "tap"
	// EventSwipe is emitted on every move whose horizontal travel exceeds
	// the swipe threshold.
	EventSwipe = "swipe"
	// EventTouchStart, EventTouchMove and EventTouchEnd are the raw touch
	// events, forwarded when Options.ForwardEvents is set.
	EventTouchStart = "touchstart"
	EventTouchMove  = "touchmove"
	EventTouchEnd   = "touchend"
)

// Options configures a Bind enhancer.
type Options struct {
	// Tag is the host element's tag. Empty means "div". Ignored when
	// Container is set.
	Tag string
	// Attributes are applied to the host element as-is.
	Attributes map[string]string
	// ClassNames are added after the entity's base class.
	ClassNames []string
	// ForwardEvents re-emits the raw touch events through the entity's
	// emitter, with deltas attached to moves.
	ForwardEvents bool
	// Interactive opts the widget in to touch gesture detection. It has
	// no effect on documents without touch support.
	Interactive bool
	// Container adopts an existing element as the host instead of
	// creating a new one.
	Container *dom.Element
}

// Bind returns the enhancer that attaches the element capability: it
// creates or adopts the host element, applies the computed class names and,
// for interactive bindings on touch-capable documents, wires gesture
// detection. The binding's teardown removes every host listener and detaches
// the host from the document.
func Bind(opts Options) core.Enhancer {
	return func(e *core.Entity) (*core.Entity, error) {
		doc := e.Config.Document
		if doc == nil {
			return nil, fmt.Errorf("element: config carries no document")
		}

		host := opts.Container
		if host == nil {
			tag := opts.Tag
			if tag == "" {
				tag = "div"
			}
			host = doc.CreateElement(tag)
		} else if host.Document() != doc {
			return nil, fmt.Errorf("element: container belongs to a different document")
		}

		for name, value := range opts.Attributes {
			host.SetAttribute(name, value)
		}
		host.AddClass(e.BaseClass())
		for _, class := range opts.ClassNames {
			host.AddClass(class)
		}

		interactive := opts.Interactive && doc.TouchEnabled()
		if interactive {
			host.AddClass(e.Class("interactive"))
		}

		var removes []func()
		if interactive {
			b := &binding{entity: e, host: host, forward: opts.ForwardEvents}
			removes = append(removes,
				host.AddEventListener(EventTouchStart, b.touchStart),
				host.AddEventListener(EventTouchEnd, b.touchEnd),
				host.AddEventListener(EventTouchMove, b.touchMove),
			)
		}

		e.Element = host
		e.RegisterTeardown(func() {
			for _, remove := range removes {
				remove()
			}
			host.RemoveAllListeners()
			host.Remove()
		})
		return e, nil
	}
}

// binding holds the wiring between one host element and its entity.
type binding struct {
	entity  *core.Entity
	host    *dom.Element
	forward bool
}

func (b *binding) touchStart(evt *dom.Event) {
	e := b.entity
	now := e.Config.Scheduler.Now()
	target := evt.Target
	if target == nil {
		target = b.host
	}
	e.UpdateTouch(core.TouchBegin, gesture.Point{X: evt.X, Y: evt.Y}, target, now)
	b.host.AddClass(e.Class("touch-active"))
	if b.forward {
		e.Emit(EventTouchStart, evt)
	}
}

func (b *binding) touchEnd(evt *dom.Event) {
	e := b.entity
	if !e.Touch.Touching {
		// Spurious end without a matching start.
		return
	}
	now := e.Config.Scheduler.Now()
	at := gesture.Point{X: evt.X, Y: evt.Y}
	b.host.RemoveClass(e.Class("touch-active"))
	e.UpdateTouch(core.TouchEnd, at, nil, now)
	if tap, ok := gesture.ClassifyTap(&e.Touch, at, now); ok {
		e.Emit(EventTap, tap)
	}
	if b.forward {
		e.Emit(EventTouchEnd, evt)
	}
}

func (b *binding) touchMove(evt *dom.Event) {
	e := b.entity
	if !e.Touch.Touching {
		return
	}
	at := gesture.Point{X: evt.X, Y: evt.Y}
	if swipe, ok := gesture.ClassifySwipe(&e.Touch, at); ok {
		e.Emit(EventSwipe, swipe)
	}
	if b.forward {
		evt.DeltaX, evt.DeltaY = e.Touch.Delta(at)
		e.Emit(EventTouchMove, evt)
	}
}
