package dom

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

var voidTags = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// Render writes the element subtree as indented HTML. Text content and
// attribute values are escaped; bounds and listeners do not serialize.
func Render(w io.Writer, e *Element) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return renderLocked(w, e, 0)
}

// OuterHTML returns the subtree serialized as HTML.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	if err := Render(&sb, e); err != nil {
		return ""
	}
	return sb.String()
}

func renderLocked(w io.Writer, e *Element, depth int) error {
	indent := strings.Repeat("  ", depth)
	open := e.openTagLocked()
	if voidTags[e.tag] {
		_, err := fmt.Fprintf(w, "%s%s\n", indent, open)
		return err
	}
	if len(e.children) == 0 {
		_, err := fmt.Fprintf(w, "%s%s%s</%s>\n", indent, open, html.EscapeString(e.text), e.tag)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, open); err != nil {
		return err
	}
	if e.text != "" {
		if _, err := fmt.Fprintf(w, "%s  %s\n", indent, html.EscapeString(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := renderLocked(w, c, depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, e.tag)
	return err
}

func (e *Element) openTagLocked() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.tag)
	if len(e.classes) > 0 {
		fmt.Fprintf(&sb, ` class="%s"`, html.EscapeString(strings.Join(e.classes, " ")))
	}
	if len(e.styles) > 0 {
		props := make([]string, 0, len(e.styles))
		for p := range e.styles {
			props = append(props, p)
		}
		sort.Strings(props)
		pairs := make([]string, len(props))
		for i, p := range props {
			pairs[i] = p + ": " + e.styles[p]
		}
		fmt.Fprintf(&sb, ` style="%s"`, html.EscapeString(strings.Join(pairs, "; ")))
	}
	if len(e.attrs) > 0 {
		names := make([]string, 0, len(e.attrs))
		for n := range e.attrs {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(&sb, ` %s="%s"`, n, html.EscapeString(e.attrs[n]))
		}
	}
	sb.WriteString(">")
	return sb.String()
}
