// Package events implements the synchronous event emitter Tide entities
// expose for gesture and widget notifications.
package events

import (
	"reflect"
	"sync"
)

// Handler receives the payload passed to Emit.
type Handler func(data any)

// Emitter dispatches named events to registered handlers in registration
// order. Mutating methods return the emitter so calls chain. An Emitter is
// safe for concurrent use; dispatch snapshots the handler list and runs
// handlers outside the lock.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]Handler
}

// NewEmitter returns an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[string][]Handler)}
}

// On registers h for the named event. The same function may be registered
// more than once and is invoked once per registration. Nil handlers are
// ignored.
func (e *Emitter) On(event string, h Handler) *Emitter {
	if h == nil {
		return e
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[event] = append(e.handlers[event], h)
	return e
}

// Off removes the first registration of h for the named event, matched by
// function identity. Unknown events and unregistered handlers are no-ops.
func (e *Emitter) Off(event string, h Handler) *Emitter {
	if h == nil {
		return e
	}
	target := reflect.ValueOf(h).Pointer()
	e.mu.Lock()
	defer e.mu.Unlock()
	hs := e.handlers[event]
	for i, reg := range hs {
		if reflect.ValueOf(reg).Pointer() == target {
			e.handlers[event] = append(hs[:i], hs[i+1:]...)
			break
		}
	}
	return e
}

// Emit synchronously invokes the handlers registered for the named event,
// in registration order, passing data to each. Registrations and removals
// made during dispatch take effect on the next emit. A panicking handler
// propagates to the caller and the remaining handlers for that dispatch do
// not run.
func (e *Emitter) Emit(event string, data any) *Emitter {
	e.mu.Lock()
	snapshot := append([]Handler(nil), e.handlers[event]...)
	e.mu.Unlock()
	for _, h := range snapshot {
		h(data)
	}
	return e
}

// Len reports the number of handlers registered for the named event.
func (e *Emitter) Len(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[event])
}

// Clear drops every registration for every event.
func (e *Emitter) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = make(map[string][]Handler)
}
