package core

import (
	"github.com/go-tide/tide/pkg/clock"
	"github.com/go-tide/tide/pkg/dom"
)

// Config carries the construction inputs shared by every enhancer.
type Config struct {
	// Name identifies the component kind ("badge", "snackbar"). It seeds
	// the entity's base class name.
	Name string
	// Prefix namespaces generated class names. Empty means DefaultPrefix.
	Prefix string
	// Document is the document the entity binds into. Enhancers that
	// create elements fail without one.
	Document *dom.Document
	// Scheduler provides time, timers and animation frames. Nil means the
	// wall scheduler.
	Scheduler clock.Scheduler
}

func (c Config) withDefaults() Config {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Scheduler == nil {
		c.Scheduler = clock.NewWall()
	}
	return c
}
