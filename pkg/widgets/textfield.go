package widgets

import (
	"sync"

	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/element"
	"github.com/go-tide/tide/pkg/errors"
	"github.com/go-tide/tide/pkg/theme"
)

// EventInput is re-emitted through the entity for every input event the
// field receives. The payload is the new value as a string.
const EventInput = "input"

// TextFieldOptions configures NewTextField.
type TextFieldOptions struct {
	// Label is the floating label text.
	Label string
	// Value is the initial field value. A non-empty value floats the
	// label from the start.
	Value string
	// Type is the input element's type attribute. Empty means "text".
	Type string
}

// TextField is a labeled input with a floating label. The label floats
// while the field is focused or holds a value; focus also raises the
// host's "--focused" modifier so the stylesheet can highlight the border.
type TextField struct {
	entity *core.Entity

	mu      sync.Mutex
	value   string
	focused bool
}

// NewTextField assembles a text field.
func NewTextField(env Env, opts TextFieldOptions) (*TextField, error) {
	const op = "widgets.NewTextField"

	typ := opts.Type
	if typ == "" {
		typ = "text"
	}

	e, err := core.Assemble(env.config("textfield"),
		core.WithEvents(),
		element.Bind(element.Options{}),
		element.Part("label", "label", "", opts.Label),
		element.Part("input", "input", "", ""),
		core.WithLifecycle(),
	)
	if err != nil {
		return nil, errors.Construct(op, err)
	}

	ft := env.theme().TextFieldThemeOf()
	e.Element.SetStyle("color", theme.CSS(ft.Text))

	f := &TextField{entity: e, value: opts.Value}

	input := e.Part("input")
	input.SetAttribute("type", typ)
	input.SetAttribute("value", opts.Value)

	removeFocus := input.AddEventListener("focus", func(*dom.Event) { f.setFocused(true) })
	removeBlur := input.AddEventListener("blur", func(*dom.Event) { f.setFocused(false) })
	removeInput := input.AddEventListener("input", func(evt *dom.Event) {
		v, ok := evt.Data.(string)
		if !ok {
			return
		}
		f.store(v)
		f.refresh()
		e.Emit(EventInput, v)
	})
	e.RegisterTeardown(func() {
		removeFocus()
		removeBlur()
		removeInput()
	})

	f.refresh()
	return f, nil
}

// Value returns the current field value.
func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue replaces the field value programmatically. Unlike a user input
// event it does not emit "input", matching how setting a DOM input's value
// behaves.
func (f *TextField) SetValue(v string) {
	f.store(v)
	f.refresh()
}

// Focus marks the field focused, raising the "--focused" modifier and
// floating the label. Equivalent to the input part receiving a focus event.
func (f *TextField) Focus() {
	f.setFocused(true)
}

// Blur removes focus. The label stays floated while the field holds a
// value.
func (f *TextField) Blur() {
	f.setFocused(false)
}

// Focused reports whether the field is focused.
func (f *TextField) Focused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

// OnInput registers fn for every user input. It returns an unregister func
// bound to the exact handler.
func (f *TextField) OnInput(fn func(value string)) (remove func()) {
	h := func(data any) {
		if v, ok := data.(string); ok {
			fn(v)
		}
	}
	f.entity.On(EventInput, h)
	return func() { f.entity.Off(EventInput, h) }
}

// Element returns the host element for insertion into the document.
func (f *TextField) Element() *dom.Element {
	return f.entity.Element
}

// Input returns the input part, for dispatching events in tests and for
// embedders that need the raw element.
func (f *TextField) Input() *dom.Element {
	return f.entity.Part("input")
}

// Destroy removes the parts, their listeners and the host. Idempotent.
func (f *TextField) Destroy() {
	f.entity.Destroy()
}

func (f *TextField) store(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
	f.entity.Part("input").SetAttribute("value", v)
}

func (f *TextField) setFocused(on bool) {
	f.mu.Lock()
	if f.focused == on {
		f.mu.Unlock()
		return
	}
	f.focused = on
	f.mu.Unlock()

	focusedClass := core.ModifierClass(f.entity.BaseClass(), "focused")
	if on {
		f.entity.Element.AddClass(focusedClass)
	} else {
		f.entity.Element.RemoveClass(focusedClass)
	}
	f.refresh()
}

// refresh recomputes the label float from focus and value.
func (f *TextField) refresh() {
	f.mu.Lock()
	float := f.focused || f.value != ""
	f.mu.Unlock()

	label := f.entity.Part("label")
	floatClass := core.ModifierClass(core.ElementClass(f.entity.BaseClass(), "label"), "float")
	if float {
		label.AddClass(floatClass)
	} else {
		label.RemoveClass(floatClass)
	}
}
