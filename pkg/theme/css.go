package theme

import (
	"fmt"
	"strings"
)

// Stylesheet renders the CSS rules backing the toolkit's class-name grammar
// for one theme, namespaced under prefix. The preview server and showcase
// embed the result in a <style> block; embedders with their own pipeline can
// write it to a file instead.
func Stylesheet(t *Theme, prefix string) string {
	var b strings.Builder
	cls := func(name string) string { return "." + prefix + "-" + name }
	rule := func(selector string, decls ...string) {
		fmt.Fprintf(&b, "%s { %s }\n", selector, strings.Join(decls, " "))
	}

	rule(cls("interactive"),
		"touch-action: manipulation;",
		"cursor: pointer;",
	)
	rule(cls("touch-active"),
		"opacity: 0.85;",
	)

	badge := t.BadgeThemeOf()
	rule(cls("badge"),
		"position: absolute;",
		fmt.Sprintf("background-color: %s;", CSS(badge.Background)),
		fmt.Sprintf("color: %s;", CSS(badge.Text)),
		"border-radius: 10px;",
		"padding: 2px 6px;",
		"font-size: 12px;",
		"line-height: 1;",
	)
	rule(cls("badge--top-right"), "top: -8px;", "right: -8px;")
	rule(cls("badge--top-left"), "top: -8px;", "left: -8px;")
	rule(cls("badge--bottom-right"), "bottom: -8px;", "right: -8px;")
	rule(cls("badge--bottom-left"), "bottom: -8px;", "left: -8px;")

	snack := t.SnackbarThemeOf()
	rule(cls("snackbar"),
		"position: fixed;",
		"left: 16px;",
		"bottom: 16px;",
		fmt.Sprintf("background-color: %s;", CSS(snack.Background)),
		fmt.Sprintf("color: %s;", CSS(snack.Text)),
		"border-radius: 4px;",
		"padding: 12px 16px;",
		"opacity: 0;",
		"visibility: hidden;",
		"transition: opacity 150ms ease-in-out;",
	)
	rule(cls("snackbar--open"),
		"opacity: 1;",
		"visibility: visible;",
	)
	rule(cls("snackbar-action"),
		fmt.Sprintf("color: %s;", CSS(snack.Action)),
		"background: none;",
		"border: none;",
		"margin-left: 12px;",
		"text-transform: uppercase;",
	)

	tabs := t.TabsThemeOf()
	rule(cls("tabs"),
		"display: flex;",
	)
	rule(cls("tabs-item"),
		fmt.Sprintf("color: %s;", CSS(tabs.Inactive)),
		"padding: 12px 16px;",
		"border-bottom: 2px solid transparent;",
	)
	rule(cls("tabs-item--active"),
		fmt.Sprintf("color: %s;", CSS(tabs.Active)),
		fmt.Sprintf("border-bottom-color: %s;", CSS(tabs.Indicator)),
	)

	field := t.TextFieldThemeOf()
	rule(cls("textfield"),
		"position: relative;",
		"padding-top: 16px;",
	)
	rule(cls("textfield-label"),
		fmt.Sprintf("color: %s;", CSS(field.Label)),
		"position: absolute;",
		"top: 20px;",
		"transition: all 150ms ease-out;",
	)
	rule(cls("textfield-label--float"),
		fmt.Sprintf("color: %s;", CSS(field.Focus)),
		"top: 0;",
		"font-size: 12px;",
	)
	rule(cls("textfield-input"),
		fmt.Sprintf("color: %s;", CSS(field.Text)),
		"border: none;",
		fmt.Sprintf("border-bottom: 1px solid %s;", CSS(field.Border)),
		"background: transparent;",
		"outline: none;",
	)
	rule(cls("textfield--focused")+" "+cls("textfield-input"),
		fmt.Sprintf("border-bottom-color: %s;", CSS(field.Focus)),
	)

	ink := t.RippleThemeOf()
	ms := ink.Duration.Milliseconds()
	rule(cls("ripple-container"),
		"position: absolute;",
		"inset: 0;",
		"overflow: hidden;",
		"pointer-events: none;",
	)
	rule(cls("ripple"),
		"position: absolute;",
		"border-radius: 50%;",
		fmt.Sprintf("background-color: %s;", CSS(ink.Ink)),
		"transform: scale(0);",
		fmt.Sprintf("transition: transform %dms ease-out, opacity %dms ease-out;", ms, ms),
	)
	rule(cls("ripple--active"), "transform: scale(1);")
	rule(cls("ripple--fade-out"), "opacity: 0;")

	return b.String()
}
