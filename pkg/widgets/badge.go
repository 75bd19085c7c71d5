package widgets

import (
	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/element"
	"github.com/go-tide/tide/pkg/errors"
	"github.com/go-tide/tide/pkg/theme"
)

// Badge positions. An unknown position is reported as a warning and the
// badge falls back to PositionTopRight.
const (
	PositionTopRight    = "top-right"
	PositionTopLeft     = "top-left"
	PositionBottomRight = "bottom-right"
	PositionBottomLeft  = "bottom-left"
)

var badgePositions = map[string]bool{
	PositionTopRight:    true,
	PositionTopLeft:     true,
	PositionBottomRight: true,
	PositionBottomLeft:  true,
}

// BadgeOptions configures NewBadge.
type BadgeOptions struct {
	// Label is the badge text, typically a short count like "3" or "99+".
	Label string
	// Position picks the corner the badge anchors to. Empty means the
	// theme's default corner.
	Position string
}

// Badge is a small status marker anchored to a corner of its parent. The
// host is a span carrying the position modifier; the label lives in a
// "text" part so SetLabel never disturbs the host's other children.
type Badge struct {
	entity   *core.Entity
	position string
}

// NewBadge assembles a badge. Append Element() to the element the badge
// should annotate; that element needs a positioning context for the corner
// offsets to resolve against.
func NewBadge(env Env, opts BadgeOptions) (*Badge, error) {
	const op = "widgets.NewBadge"

	bt := env.theme().BadgeThemeOf()
	pos := opts.Position
	if pos == "" {
		pos = bt.Position
	}
	if !badgePositions[pos] {
		errors.Warnf(op, "unknown position %q, using %q", pos, PositionTopRight)
		pos = PositionTopRight
	}

	e, err := core.Assemble(env.config("badge"),
		core.WithEvents(),
		element.Bind(element.Options{Tag: "span"}),
		element.Part("text", "span", "", opts.Label),
		core.WithLifecycle(),
	)
	if err != nil {
		return nil, errors.Construct(op, err)
	}

	e.Element.AddClass(core.ModifierClass(e.BaseClass(), pos))
	e.Element.SetStyle("background-color", theme.CSS(bt.Background))
	e.Element.SetStyle("color", theme.CSS(bt.Text))

	return &Badge{entity: e, position: pos}, nil
}

// SetLabel replaces the badge text.
func (b *Badge) SetLabel(label string) {
	b.entity.Part("text").SetText(label)
}

// Label returns the current badge text.
func (b *Badge) Label() string {
	return b.entity.Part("text").Text()
}

// Position returns the resolved corner, after any fallback.
func (b *Badge) Position() string {
	return b.position
}

// Element returns the host element for insertion into the document.
func (b *Badge) Element() *dom.Element {
	return b.entity.Element
}

// Destroy detaches the badge and releases its resources. Idempotent.
func (b *Badge) Destroy() {
	b.entity.Destroy()
}
