package widgets

import (
	"github.com/go-tide/tide/pkg/clock"
	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/theme"
)

// Env bundles the services every widget factory needs. Construct one per
// document and pass it to each factory; widgets never reach for globals.
type Env struct {
	// Document is the document widgets bind their elements into. Required.
	Document *dom.Document
	// Scheduler drives dismiss timers and ripple frames. Nil means the
	// wall clock; tests inject clock.NewManual().
	Scheduler clock.Scheduler
	// Theme supplies styling tokens. Nil means theme.Default().
	Theme *theme.Theme
	// Prefix namespaces the generated class names. Empty means "tide".
	Prefix string
}

func (e Env) config(name string) core.Config {
	return core.Config{
		Name:      name,
		Prefix:    e.Prefix,
		Document:  e.Document,
		Scheduler: e.Scheduler,
	}
}

func (e Env) theme() *theme.Theme {
	if e.Theme != nil {
		return e.Theme
	}
	return theme.Default()
}

func (e Env) scheduler() clock.Scheduler {
	if e.Scheduler != nil {
		return e.Scheduler
	}
	return clock.Wall{}
}
