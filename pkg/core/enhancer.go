package core

import (
	"github.com/go-tide/tide/pkg/compose"
	"github.com/go-tide/tide/pkg/events"
	"github.com/go-tide/tide/pkg/lifecycle"
)

// Enhancer extends an entity with one capability. Enhancers only attach;
// they never remove a capability an earlier step added, and they must not
// assume which other enhancers ran beyond the capabilities they check for.
type Enhancer = compose.Step[*Entity]

// Assemble builds an entity by threading a fresh one through the enhancers
// left to right. The first failing enhancer aborts the run and no entity is
// returned; widget factories wrap the error with their own context.
func Assemble(cfg Config, enhancers ...Enhancer) (*Entity, error) {
	return compose.Pipe(enhancers...)(New(cfg))
}

// WithEvents attaches the emitter capability. The emitter's registrations
// are cleared again on destroy. Running twice is a no-op.
func WithEvents() Enhancer {
	return func(e *Entity) (*Entity, error) {
		if e.Events != nil {
			return e, nil
		}
		em := events.NewEmitter()
		e.Events = em
		e.RegisterTeardown(em.Clear)
		return e, nil
	}
}

// WithLifecycle attaches the mount state machine. Teardowns staged before
// the lifecycle existed are adopted in their registration order, so the
// entity-wide reverse-order cleanup guarantee holds across the attachment.
// Running twice is a no-op.
func WithLifecycle() Enhancer {
	return func(e *Entity) (*Entity, error) {
		if e.Lifecycle != nil {
			return e, nil
		}
		lc := lifecycle.New()
		for _, fn := range e.takeStaged() {
			lc.RegisterCleanup(fn)
		}
		e.Lifecycle = lc
		return e, nil
	}
}
