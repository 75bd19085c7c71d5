package core

import (
	"testing"
	"time"

	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/gesture"
)

func TestBase_ClassNames(t *testing.T) {
	b := NewBase(Config{Name: "badge"})

	if got := b.Class("badge"); got != "tide-badge" {
		t.Errorf("Class: expected tide-badge, got %q", got)
	}
	if got := b.BaseClass(); got != "tide-badge" {
		t.Errorf("BaseClass: expected tide-badge, got %q", got)
	}
	if got := ModifierClass("tide-badge", "open"); got != "tide-badge--open" {
		t.Errorf("ModifierClass: expected tide-badge--open, got %q", got)
	}
	if got := ElementClass("tide-badge", "text"); got != "tide-badge-text" {
		t.Errorf("ElementClass: expected tide-badge-text, got %q", got)
	}
}

func TestBase_CustomPrefix(t *testing.T) {
	b := NewBase(Config{Name: "tabs", Prefix: "app"})

	if got := b.BaseClass(); got != "app-tabs" {
		t.Errorf("expected app-tabs, got %q", got)
	}
}

func TestBase_ConfigDefaults(t *testing.T) {
	b := NewBase(Config{Name: "badge"})

	if b.Config.Prefix != DefaultPrefix {
		t.Errorf("expected default prefix %q, got %q", DefaultPrefix, b.Config.Prefix)
	}
	if b.Config.Scheduler == nil {
		t.Error("expected a default scheduler")
	}
	if b.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestBase_DistinctIDs(t *testing.T) {
	a := NewBase(Config{Name: "badge"})
	b := NewBase(Config{Name: "badge"})

	if a.ID == b.ID {
		t.Errorf("expected distinct IDs, both %q", a.ID)
	}
}

func TestBase_UpdateTouch(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	b := NewBase(Config{Name: "tabs"})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	b.UpdateTouch(TouchBegin, gesture.Point{X: 10, Y: 20}, el, start)

	if !b.Touch.Touching {
		t.Error("expected touching after begin")
	}
	if b.Touch.ActiveTarget != el {
		t.Error("expected active target recorded")
	}
	if b.Touch.Start.X != 10 || b.Touch.Start.Y != 20 {
		t.Errorf("expected start position (10,20), got %+v", b.Touch.Start)
	}

	b.UpdateTouch(TouchEnd, gesture.Point{}, nil, start.Add(50*time.Millisecond))

	if b.Touch.Touching {
		t.Error("expected not touching after end")
	}
	if b.Touch.ActiveTarget != nil {
		t.Error("expected active target cleared")
	}
	// Start facts stay readable for classification after the sequence ends.
	if !b.Touch.StartTime.Equal(start) {
		t.Errorf("expected start time preserved, got %v", b.Touch.StartTime)
	}
	if b.Touch.Start.X != 10 {
		t.Errorf("expected start position preserved, got %+v", b.Touch.Start)
	}
}
