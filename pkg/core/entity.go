package core

import (
	"sync"

	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/events"
	"github.com/go-tide/tide/pkg/lifecycle"
)

// RippleController is the press-feedback capability contract. It is defined
// here so the entity can hold the capability without depending on the ripple
// package; pkg/ripple provides the implementation.
type RippleController interface {
	// Mount prepares host to spawn press feedback.
	Mount(host *dom.Element)
	// Unmount removes the spawner and every in-flight feedback node.
	Unmount(host *dom.Element)
}

// Entity is the capability record a widget accumulates while its enhancer
// pipeline runs. Capability fields start nil and are attached by their
// enhancer; attached capabilities are never dropped by a later step.
type Entity struct {
	*Base

	// Element is the bound host element. Attached by the element binder.
	Element *dom.Element
	// Events dispatches the entity's gesture and widget notifications.
	// Attached by WithEvents.
	Events *events.Emitter
	// Lifecycle tracks mount state and owns the cleanup stack. Attached
	// by WithLifecycle.
	Lifecycle *lifecycle.Lifecycle
	// Ripple spawns press feedback on the host element. Attached by the
	// ripple enhancer.
	Ripple RippleController

	mu        sync.Mutex
	parts     map[string]*dom.Element
	staged    []func()
	destroyed bool
}

// New returns an entity holding only the base capability.
func New(cfg Config) *Entity {
	return &Entity{Base: NewBase(cfg)}
}

// On registers h for the named event and returns the entity for chaining.
// Without the events capability it is a no-op.
func (e *Entity) On(event string, h events.Handler) *Entity {
	if e.Events != nil {
		e.Events.On(event, h)
	}
	return e
}

// Off removes the first registration of h for the named event. Without the
// events capability it is a no-op.
func (e *Entity) Off(event string, h events.Handler) *Entity {
	if e.Events != nil {
		e.Events.Off(event, h)
	}
	return e
}

// Emit dispatches the named event to the entity's handlers. Without the
// events capability it is a no-op.
func (e *Entity) Emit(event string, data any) *Entity {
	if e.Events != nil {
		e.Events.Emit(event, data)
	}
	return e
}

// SetPart records a named sub-element such as "text" or "icon". Parts are
// addressable by widgets after assembly and released by their own teardowns.
func (e *Entity) SetPart(name string, el *dom.Element) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.parts == nil {
		e.parts = make(map[string]*dom.Element)
	}
	e.parts[name] = el
}

// Part returns the named sub-element, or nil when absent.
func (e *Entity) Part(name string) *dom.Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.parts[name]
}

// RegisterTeardown schedules fn to run when the entity is destroyed. With a
// lifecycle capability attached the teardown joins the lifecycle's cleanup
// stack; before that it is staged on the entity and adopted by WithLifecycle.
// Either way teardowns run in reverse registration order. Registering on a
// destroyed entity runs fn immediately.
func (e *Entity) RegisterTeardown(fn func()) {
	if fn == nil {
		return
	}
	if e.Lifecycle != nil {
		e.Lifecycle.RegisterCleanup(fn)
		return
	}
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		fn()
		return
	}
	e.staged = append(e.staged, fn)
	e.mu.Unlock()
}

// takeStaged hands the staged teardowns, in registration order, to the
// lifecycle enhancer and clears the stage.
func (e *Entity) takeStaged() []func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	staged := e.staged
	e.staged = nil
	return staged
}

// Destroy releases everything the entity acquired. With a lifecycle attached
// it delegates to the lifecycle's terminal destroy; otherwise it runs the
// staged teardowns in reverse registration order. Destroy is idempotent.
func (e *Entity) Destroy() {
	if e.Lifecycle != nil {
		e.Lifecycle.Destroy()
		return
	}
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	staged := e.staged
	e.staged = nil
	e.mu.Unlock()
	for i := len(staged) - 1; i >= 0; i-- {
		staged[i]()
	}
}
