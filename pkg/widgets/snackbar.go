package widgets

import (
	"sync"
	"time"

	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/element"
	"github.com/go-tide/tide/pkg/errors"
	"github.com/go-tide/tide/pkg/events"
	"github.com/go-tide/tide/pkg/ripple"
	"github.com/go-tide/tide/pkg/theme"
)

// EventDismiss is emitted once per dismissal, whether the timer expired,
// the action was clicked, or Dismiss was called directly.
const EventDismiss = "dismiss"

// SnackbarOptions configures NewSnackbar.
type SnackbarOptions struct {
	// Message is the snackbar text.
	Message string
	// ActionLabel adds an action button when non-empty. The button gets
	// ripple press feedback.
	ActionLabel string
	// OnAction runs when the action button is clicked, before the
	// snackbar dismisses itself.
	OnAction func()
	// ShowFor overrides the theme's auto-dismiss delay. Zero means the
	// theme value; negative disables auto-dismiss entirely.
	ShowFor time.Duration
}

// Snackbar is a transient notification bar. It stays constructed across
// show/dismiss cycles: Show raises the "--open" modifier and arms the
// auto-dismiss timer, Dismiss lowers it again. One snackbar can therefore
// be reused, or handed to a Queue which shows many in turn.
type Snackbar struct {
	entity   *core.Entity
	duration time.Duration

	mu          sync.Mutex
	cancelTimer func()
}

// NewSnackbar assembles a snackbar. The host element starts without the
// "--open" modifier; append it wherever the stylesheet's fixed positioning
// should apply and call Show.
func NewSnackbar(env Env, opts SnackbarOptions) (*Snackbar, error) {
	const op = "widgets.NewSnackbar"

	th := env.theme()
	st := th.SnackbarThemeOf()

	enhancers := []core.Enhancer{
		core.WithEvents(),
		element.Bind(element.Options{Attributes: map[string]string{"role": "status"}}),
		element.Part("text", "span", "", opts.Message),
	}
	if opts.ActionLabel != "" {
		enhancers = append(enhancers, element.Part("action", "button", "", opts.ActionLabel))
	}
	enhancers = append(enhancers, core.WithLifecycle())

	e, err := core.Assemble(env.config("snackbar"), enhancers...)
	if err != nil {
		return nil, errors.Construct(op, err)
	}

	e.Element.SetStyle("background-color", theme.CSS(st.Background))
	e.Element.SetStyle("color", theme.CSS(st.Text))

	duration := st.ShowDuration
	if opts.ShowFor != 0 {
		duration = opts.ShowFor
	}
	s := &Snackbar{entity: e, duration: duration}

	if opts.ActionLabel != "" {
		action := e.Part("action")
		action.SetStyle("color", theme.CSS(st.Action))

		rt := th.RippleThemeOf()
		m := ripple.NewManager(env.scheduler(), ripple.Options{
			Duration: rt.Duration,
			Color:    theme.CSS(rt.Ink),
			Prefix:   e.Config.Prefix,
		})
		m.Mount(action)
		e.Ripple = m
		e.RegisterTeardown(func() { m.Unmount(action) })

		onAction := opts.OnAction
		removeClick := action.AddEventListener("click", func(*dom.Event) {
			if onAction != nil {
				onAction()
			}
			s.Dismiss()
		})
		e.RegisterTeardown(removeClick)
	}

	e.RegisterTeardown(s.stopTimer)
	return s, nil
}

// Show raises the "--open" modifier and arms the auto-dismiss timer.
// Showing an already-visible snackbar restarts the timer. Show after
// Destroy is a no-op.
func (s *Snackbar) Show() {
	e := s.entity
	if e.Lifecycle.IsDestroyed() {
		return
	}
	s.stopTimer()
	e.Lifecycle.Mount()
	e.Element.AddClass(s.openClass())

	if s.duration < 0 {
		return
	}
	s.mu.Lock()
	s.cancelTimer = e.Config.Scheduler.AfterFunc(s.duration, s.Dismiss)
	s.mu.Unlock()
}

// Dismiss cancels the pending timer, lowers the "--open" modifier, unmounts
// and emits "dismiss". Dismissing a snackbar that is not showing is a
// no-op, so the timer-driven and action-driven paths cannot double-fire.
func (s *Snackbar) Dismiss() {
	s.stopTimer()
	e := s.entity
	if !e.Lifecycle.IsMounted() {
		return
	}
	e.Element.RemoveClass(s.openClass())
	e.Lifecycle.Unmount()
	e.Emit(EventDismiss, nil)
}

// Showing reports whether the snackbar is currently raised.
func (s *Snackbar) Showing() bool {
	return s.entity.Lifecycle.IsMounted()
}

// OnDismiss registers fn for every dismissal. It returns an unregister
// func bound to the exact handler, mirroring events.Emitter.Off.
func (s *Snackbar) OnDismiss(fn func()) (remove func()) {
	h := events.Handler(func(any) { fn() })
	s.entity.On(EventDismiss, h)
	return func() { s.entity.Off(EventDismiss, h) }
}

// Element returns the host element for insertion into the document.
func (s *Snackbar) Element() *dom.Element {
	return s.entity.Element
}

// Destroy stops the timer, sweeps any ripple state on the action and
// detaches the host. Idempotent. A destroy while showing does not emit
// "dismiss"; it is a teardown, not a dismissal.
func (s *Snackbar) Destroy() {
	s.entity.Destroy()
}

func (s *Snackbar) openClass() string {
	return core.ModifierClass(s.entity.BaseClass(), "open")
}

func (s *Snackbar) stopTimer() {
	s.mu.Lock()
	cancel := s.cancelTimer
	s.cancelTimer = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
