// Package preview builds the kitchen-sink page behind `tide preview` and
// the showcase binary: every widget wired against one fresh document, plus
// a ripple demo button, rendered to standalone HTML with the theme's
// stylesheet inlined.
package preview

import (
	"fmt"
	"strings"

	"github.com/go-tide/tide/pkg/clock"
	"github.com/go-tide/tide/pkg/core"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/element"
	"github.com/go-tide/tide/pkg/ripple"
	"github.com/go-tide/tide/pkg/theme"
	"github.com/go-tide/tide/pkg/widgets"
)

// Options configures Build.
type Options struct {
	// Theme styles the page. Nil means theme.Default().
	Theme *theme.Theme
	// Prefix namespaces the generated class names. Empty means "tide".
	Prefix string
	// Scheduler drives timers and frames. Nil means the wall clock; the
	// showcase injects clock.NewManual() to script interactions.
	Scheduler clock.Scheduler
}

// Page is one assembled preview: a fresh document holding every widget.
// The widget handles stay exposed so callers can script interactions
// against them before rendering.
type Page struct {
	Doc   *dom.Document
	Env   widgets.Env
	Badge *widgets.Badge
	Tabs  *widgets.Tabs
	Field *widgets.TextField
	Queue *widgets.Queue
	// Save is the ripple demo button, assembled through the full
	// enhancer pipeline.
	Save *core.Entity

	theme  *theme.Theme
	prefix string
	main   *dom.Element
	bars   []*widgets.Snackbar
}

// Build assembles the preview page against a fresh document. Every call
// returns an independent page; nothing is shared between builds.
func Build(opts Options) (*Page, error) {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = core.DefaultPrefix
	}

	doc := dom.NewDocument(dom.WithTouchSupport(true))
	env := widgets.Env{
		Document:  doc,
		Scheduler: opts.Scheduler,
		Theme:     th,
		Prefix:    prefix,
	}
	p := &Page{Doc: doc, Env: env, theme: th, prefix: prefix}

	p.main = doc.CreateElement("main")
	p.main.AddClass(prefix + "-preview")
	doc.Body().AppendChild(p.main)

	header := doc.CreateElement("header")
	title := doc.CreateElement("h1")
	title.SetText("Tide components")
	header.AppendChild(title)

	inbox := doc.CreateElement("span")
	inbox.AddClass(prefix + "-preview-inbox")
	inbox.SetStyle("position", "relative")
	inbox.SetText("Inbox")
	header.AppendChild(inbox)
	p.main.AppendChild(header)

	badge, err := widgets.NewBadge(env, widgets.BadgeOptions{Label: "3"})
	if err != nil {
		return nil, fmt.Errorf("preview: badge: %w", err)
	}
	p.Badge = badge
	inbox.AppendChild(badge.Element())

	tabs, err := widgets.NewTabs(env, widgets.TabsOptions{
		Labels: []string{"Components", "Theme", "About"},
	})
	if err != nil {
		return nil, fmt.Errorf("preview: tabs: %w", err)
	}
	p.Tabs = tabs
	tabs.Element().SetBounds(dom.Rect{X: 0, Y: 64, Width: 480, Height: 48})
	p.main.AppendChild(tabs.Element())

	section := doc.CreateElement("section")
	p.main.AppendChild(section)

	field, err := widgets.NewTextField(env, widgets.TextFieldOptions{Label: "Email"})
	if err != nil {
		return nil, fmt.Errorf("preview: textfield: %w", err)
	}
	p.Field = field
	section.AppendChild(field.Element())

	save, err := buildSaveButton(env, th)
	if err != nil {
		return nil, fmt.Errorf("preview: save button: %w", err)
	}
	p.Save = save
	section.AppendChild(save.Element)

	p.Queue = widgets.NewQueue()
	return p, nil
}

// buildSaveButton runs the whole enhancer pipeline, ripple included, so the
// preview exercises press feedback end to end.
func buildSaveButton(env widgets.Env, th *theme.Theme) (*core.Entity, error) {
	rt := th.RippleThemeOf()
	e, err := core.Assemble(
		core.Config{
			Name:      "button",
			Prefix:    env.Prefix,
			Document:  env.Document,
			Scheduler: env.Scheduler,
		},
		core.WithEvents(),
		element.Bind(element.Options{Tag: "button", Interactive: true}),
		ripple.With(ripple.Options{
			Duration: rt.Duration,
			Color:    theme.CSS(rt.Ink),
		}),
		core.WithLifecycle(),
	)
	if err != nil {
		return nil, err
	}
	e.Element.SetText("Save")
	e.Element.SetBounds(dom.Rect{X: 16, Y: 220, Width: 120, Height: 40})
	return e, nil
}

// Notify builds a snackbar for msg, attaches it to the page and enqueues
// it. An empty action omits the action button.
func (p *Page) Notify(msg, action string) (*widgets.Snackbar, error) {
	bar, err := widgets.NewSnackbar(p.Env, widgets.SnackbarOptions{
		Message:     msg,
		ActionLabel: action,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: snackbar: %w", err)
	}
	p.main.AppendChild(bar.Element())
	p.bars = append(p.bars, bar)
	p.Queue.Enqueue(bar)
	return bar, nil
}

// HTML renders the page as a standalone document with the theme's
// stylesheet inlined.
func (p *Page) HTML() string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\" />\n")
	b.WriteString("<title>tide preview</title>\n")
	b.WriteString("<style>\n")
	b.WriteString(theme.Stylesheet(p.theme, p.prefix))
	b.WriteString("</style>\n</head>\n")
	b.WriteString(p.Doc.Body().OuterHTML())
	b.WriteString("</html>\n")
	return b.String()
}

// Destroy tears the page's widgets down. Tests use it to assert the
// document ends up empty.
func (p *Page) Destroy() {
	for _, bar := range p.bars {
		bar.Destroy()
	}
	p.bars = nil
	p.Save.Destroy()
	p.Field.Destroy()
	p.Tabs.Destroy()
	p.Badge.Destroy()
	p.main.Remove()
}
