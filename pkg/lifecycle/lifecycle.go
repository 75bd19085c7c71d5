// Package lifecycle implements the mount state machine Tide entities carry.
//
// An entity moves between Unmounted and Mounted any number of times and is
// destroyed exactly once. Mount and unmount notify hook subscribers; hooks
// are single-use per mount cycle because every unmount clears all hook
// subscriptions. Destroy forces an unmount, then runs registered cleanups
// in reverse registration order and becomes terminal.
package lifecycle

import (
	"sync"

	"github.com/go-tide/tide/pkg/events"
)

// State identifies where an entity is in its lifecycle.
type State int

const (
	// Unmounted is the initial state and the state after every Unmount.
	Unmounted State = iota
	// Mounted means the entity is live in its document.
	Mounted
	// Destroyed is terminal. No further transitions occur.
	Destroyed
)

func (s State) String() string {
	switch s {
	case Unmounted:
		return "unmounted"
	case Mounted:
		return "mounted"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

const (
	hookMount   = "mount"
	hookUnmount = "unmount"
)

// Lifecycle tracks mount state, notifies mount/unmount hooks and owns the
// cleanup stack executed on Destroy.
type Lifecycle struct {
	mu       sync.Mutex
	state    State
	hooks    *events.Emitter
	cleanups []func()
}

// New returns a lifecycle in the Unmounted state.
func New() *Lifecycle {
	return &Lifecycle{hooks: events.NewEmitter()}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// IsMounted reports whether the entity is currently mounted.
func (l *Lifecycle) IsMounted() bool {
	return l.State() == Mounted
}

// IsDestroyed reports whether Destroy has run.
func (l *Lifecycle) IsDestroyed() bool {
	return l.State() == Destroyed
}

// Mount transitions to Mounted and notifies mount hooks once. Mounting
// while already mounted, or after Destroy, is a no-op.
func (l *Lifecycle) Mount() {
	l.mu.Lock()
	if l.state != Unmounted {
		l.mu.Unlock()
		return
	}
	l.state = Mounted
	l.mu.Unlock()
	l.hooks.Emit(hookMount, nil)
}

// Unmount transitions to Unmounted, notifies unmount hooks, then clears
// every mount and unmount hook subscription. Unmounting while not mounted
// is a no-op.
func (l *Lifecycle) Unmount() {
	l.mu.Lock()
	if l.state != Mounted {
		l.mu.Unlock()
		return
	}
	l.state = Unmounted
	l.mu.Unlock()
	l.hooks.Emit(hookUnmount, nil)
	l.hooks.Clear()
}

// OnMount registers fn to run on mount transitions. It returns an
// unregister func. The subscription also ends when an unmount clears hooks.
func (l *Lifecycle) OnMount(fn func()) (remove func()) {
	return l.subscribe(hookMount, fn)
}

// OnUnmount registers fn to run on the next unmount transition.
func (l *Lifecycle) OnUnmount(fn func()) (remove func()) {
	return l.subscribe(hookUnmount, fn)
}

func (l *Lifecycle) subscribe(hook string, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	if l.state == Destroyed {
		l.mu.Unlock()
		return func() {}
	}
	l.mu.Unlock()
	h := events.Handler(func(any) { fn() })
	l.hooks.On(hook, h)
	return func() { l.hooks.Off(hook, h) }
}

// RegisterCleanup schedules fn to run when the lifecycle is destroyed.
// Cleanups run once each, in reverse registration order. Registering after
// Destroy runs fn immediately. The returned func unregisters the cleanup.
func (l *Lifecycle) RegisterCleanup(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	if l.state == Destroyed {
		l.mu.Unlock()
		fn()
		return func() {}
	}
	index := len(l.cleanups)
	l.cleanups = append(l.cleanups, fn)
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if index < len(l.cleanups) {
			l.cleanups[index] = nil
		}
	}
}

// Destroy forces an unmount when mounted, runs the cleanup stack in reverse
// registration order and moves to the terminal Destroyed state. Calling
// Destroy again is a no-op.
func (l *Lifecycle) Destroy() {
	l.Unmount()
	l.mu.Lock()
	if l.state == Destroyed {
		l.mu.Unlock()
		return
	}
	l.state = Destroyed
	cleanups := l.cleanups
	l.cleanups = nil
	l.mu.Unlock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		if cleanups[i] != nil {
			cleanups[i]()
		}
	}
	l.hooks.Clear()
}
