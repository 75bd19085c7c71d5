package element

import (
	"fmt"

	"github.com/go-tide/tide/pkg/core"
)

// Part returns an enhancer that attaches a named child element to the bound
// host: the "text" span of a badge, the "icon" of a snackbar action. The
// class defaults to the entity's element class for the name
// ("tide-badge-text"); pass class to override. The part is registered on the
// entity under name and its removal is scheduled as a teardown, so destroy
// releases sub-elements before the host itself.
func Part(name, tag, class, text string) core.Enhancer {
	return func(e *core.Entity) (*core.Entity, error) {
		if name == "" {
			return nil, fmt.Errorf("element: part requires a name")
		}
		if e.Element == nil {
			return nil, fmt.Errorf("element: part %q requires a bound element", name)
		}
		if tag == "" {
			tag = "span"
		}
		if class == "" {
			class = core.ElementClass(e.BaseClass(), name)
		}

		child := e.Config.Document.CreateElement(tag)
		child.AddClass(class)
		if text != "" {
			child.SetText(text)
		}
		e.Element.AppendChild(child)
		e.SetPart(name, child)
		e.RegisterTeardown(func() {
			child.RemoveAllListeners()
			child.Remove()
		})
		return e, nil
	}
}
