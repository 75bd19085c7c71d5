package widgets

import (
	"fmt"
	"sync"

	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/element"
	"github.com/go-tide/tide/pkg/errors"
	"github.com/go-tide/tide/pkg/gesture"
)

// EventChange is emitted after the active tab changes. The payload is the
// new index as an int.
const EventChange = "change"

// TabsOptions configures NewTabs.
type TabsOptions struct {
	// Labels are the tab captions, one item per label. At least one is
	// required.
	Labels []string
	// Active is the initially active index. Out-of-range values are
	// reported as a warning and fall back to 0.
	Active int
}

// Tabs is a horizontal tab bar. Clicking an item activates it; on
// touch-capable documents a swipe across the bar moves the selection one
// step against the swipe direction, clamped at the ends.
type Tabs struct {
	entity *core.Entity
	items  []*dom.Element

	mu     sync.Mutex
	active int
}

// NewTabs assembles a tab bar from the given labels.
func NewTabs(env Env, opts TabsOptions) (*Tabs, error) {
	const op = "widgets.NewTabs"

	if len(opts.Labels) == 0 {
		return nil, errors.Construct(op, fmt.Errorf("at least one tab label required"))
	}
	active := opts.Active
	if active < 0 || active >= len(opts.Labels) {
		errors.Warnf(op, "active index %d out of range [0,%d), using 0", active, len(opts.Labels))
		active = 0
	}

	e, err := core.Assemble(env.config("tabs"),
		core.WithEvents(),
		element.Bind(element.Options{
			Tag:         "nav",
			Attributes:  map[string]string{"role": "tablist"},
			Interactive: true,
		}),
		core.WithLifecycle(),
	)
	if err != nil {
		return nil, errors.Construct(op, err)
	}

	t := &Tabs{entity: e, active: active}

	itemClass := core.ElementClass(e.BaseClass(), "item")
	for i, label := range opts.Labels {
		item := env.Document.CreateElement("button")
		item.AddClass(itemClass)
		item.SetAttribute("role", "tab")
		item.SetAttribute("aria-selected", "false")
		item.SetText(label)
		e.Element.AppendChild(item)

		index := i
		removeClick := item.AddEventListener("click", func(*dom.Event) {
			t.Activate(index)
		})
		e.RegisterTeardown(func() {
			removeClick()
			item.Remove()
		})
		t.items = append(t.items, item)
	}
	t.markActive(t.items[active], itemClass)

	e.On(element.EventSwipe, func(data any) {
		sw, ok := data.(gesture.Swipe)
		if !ok {
			return
		}
		step := 1
		if sw.Direction == gesture.DirectionRight {
			step = -1
		}
		t.Activate(t.Active() + step)
	})

	return t, nil
}

// Activate makes the tab at index the active one and emits "change".
// Out-of-range indexes and re-activating the current tab are no-ops.
func (t *Tabs) Activate(index int) {
	t.mu.Lock()
	if index < 0 || index >= len(t.items) || index == t.active {
		t.mu.Unlock()
		return
	}
	prev := t.items[t.active]
	next := t.items[index]
	t.active = index
	t.mu.Unlock()

	itemClass := core.ElementClass(t.entity.BaseClass(), "item")
	prev.RemoveClass(core.ModifierClass(itemClass, "active"))
	prev.SetAttribute("aria-selected", "false")
	t.markActive(next, itemClass)

	t.entity.Emit(EventChange, index)
}

// Active returns the index of the active tab.
func (t *Tabs) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Len returns the number of tabs.
func (t *Tabs) Len() int {
	return len(t.items)
}

// Item returns the element backing the tab at index, or nil when out of
// range. Useful for dispatching clicks in tests and for decorating items.
func (t *Tabs) Item(index int) *dom.Element {
	if index < 0 || index >= len(t.items) {
		return nil
	}
	return t.items[index]
}

// OnChange registers fn for every activation. It returns an unregister
// func bound to the exact handler.
func (t *Tabs) OnChange(fn func(index int)) (remove func()) {
	h := func(data any) {
		if i, ok := data.(int); ok {
			fn(i)
		}
	}
	t.entity.On(EventChange, h)
	return func() { t.entity.Off(EventChange, h) }
}

// Element returns the host element for insertion into the document.
func (t *Tabs) Element() *dom.Element {
	return t.entity.Element
}

// Destroy removes the items, their listeners and the host. Idempotent.
func (t *Tabs) Destroy() {
	t.entity.Destroy()
}

func (t *Tabs) markActive(item *dom.Element, itemClass string) {
	item.AddClass(core.ModifierClass(itemClass, "active"))
	item.SetAttribute("aria-selected", "true")
}
