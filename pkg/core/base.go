package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/gesture"
)

// Base is the capability every entity starts with: identity, configuration,
// class naming and touch bookkeeping.
type Base struct {
	// ID uniquely identifies this entity instance.
	ID string
	// Config is the construction configuration with defaults applied.
	Config Config
	// Touch is the entity's touch state. UpdateTouch is its only
	// mutation point.
	Touch gesture.State
}

// NewBase returns a Base with config defaults applied and a fresh ID.
func NewBase(cfg Config) *Base {
	return &Base{ID: uuid.NewString(), Config: cfg.withDefaults()}
}

// Class returns the prefixed class for name: "<prefix>-<name>".
func (b *Base) Class(name string) string {
	return b.Config.Prefix + "-" + name
}

// BaseClass returns the entity's own class, derived from its configured
// component name.
func (b *Base) BaseClass() string {
	return b.Class(b.Config.Name)
}

// TouchPhase selects the transition UpdateTouch applies.
type TouchPhase int

const (
	// TouchBegin opens a touch sequence.
	TouchBegin TouchPhase = iota
	// TouchEnd closes one.
	TouchEnd
)

// UpdateTouch applies a touch transition. All touch-state writes go through
// here so gesture classification always reads consistent facts.
func (b *Base) UpdateTouch(phase TouchPhase, at gesture.Point, target *dom.Element, now time.Time) {
	switch phase {
	case TouchBegin:
		b.Touch.Begin(at, target, now)
	case TouchEnd:
		b.Touch.End()
	}
}
