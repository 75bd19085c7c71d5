// Package main provides the Tide showcase: it assembles the preview page
// against a manual clock, walks it through a short scripted session and
// prints the resulting HTML.
//
// The script taps and swipes the tab strip, types into the text field,
// presses the save button through a full ripple cycle and runs two
// snackbars through the queue. Narration goes to stderr so stdout stays a
// clean HTML document:
//
//	go run ./showcase > preview.html
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-tide/tide/internal/preview"
	"github.com/go-tide/tide/pkg/clock"
	"github.com/go-tide/tide/pkg/dom"
	"github.com/go-tide/tide/pkg/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "showcase:", err)
		os.Exit(1)
	}
}

func run() error {
	clk := clock.NewManual()
	page, err := preview.Build(preview.Options{Scheduler: clk})
	if err != nil {
		return err
	}

	page.Tabs.OnChange(func(index int) {
		note("tabs: %q active", []string{"Components", "Theme", "About"}[index])
	})

	// Touch tap on the strip: the press marker appears for the duration
	// of the touch.
	strip := page.Tabs.Element()
	dispatch(clk, strip, "touchstart", 60, 88)
	note("tabs: pressed %v", strip.HasClass("tide-touch-active"))
	clk.Advance(50 * time.Millisecond)
	dispatch(clk, strip, "touchend", 60, 88)
	note("tabs: pressed %v after tap", strip.HasClass("tide-touch-active"))

	// Tab by click, then forward and back by swipe across the strip.
	click(clk, page.Tabs.Item(1))
	swipe(clk, strip, 400, 80)
	swipe(clk, strip, 80, 400)
	note("tabs: settled on index %d", page.Tabs.Active())

	// Type into the text field; the floating label follows the value.
	dispatch(clk, page.Field.Input(), "focus", 0, 0)
	for _, v := range []string{"a", "ad", "ada@tide.dev"} {
		page.Field.Input().Dispatch(&dom.Event{Type: "input", Data: v, Time: clk.Now()})
		clk.Advance(120 * time.Millisecond)
	}
	dispatch(clk, page.Field.Input(), "blur", 0, 0)
	note("textfield: value %q, focused %v", page.Field.Value(), page.Field.Focused())

	page.Badge.SetLabel("4")
	note("badge: label now %q", page.Badge.Label())

	// Full ripple cycle on the save button: press spawns a wave, frames
	// grow it, the document-level release fades it, the fade timer
	// retires it.
	pressSave(clk, page)

	// Two snackbars through the queue; the second waits for the first
	// dismissal.
	first, err := page.Notify("Draft saved", "UNDO")
	if err != nil {
		return err
	}
	first.OnDismiss(func() { note("snackbar: %q dismissed", "Draft saved") })
	if _, err := page.Notify("Synced with server", ""); err != nil {
		return err
	}
	note("queue: showing one bar, %d pending", page.Queue.Pending())
	clk.Advance(theme.Default().SnackbarThemeOf().ShowDuration)
	note("queue: advanced, %d pending", page.Queue.Pending())

	fmt.Print(page.HTML())
	return nil
}

// pressSave runs one press-feedback cycle and narrates the wave count at
// each stage.
func pressSave(clk *clock.Manual, page *preview.Page) {
	dispatch(clk, page.Save.Element, "mousedown", 60, 240)
	clk.FlushFrames()
	note("ripple: %d wave after press", waves(page))
	clk.Advance(90 * time.Millisecond)
	page.Doc.DispatchToDocument(&dom.Event{Type: "mouseup", Time: clk.Now()})
	clk.Advance(theme.Default().RippleThemeOf().Duration)
	note("ripple: %d waves after release and fade", waves(page))
}

// waves counts live ripple nodes on the page.
func waves(page *preview.Page) int {
	return len(page.Doc.Body().QueryAllByClass("tide-ripple"))
}

// dispatch delivers one event to el, stamped with the script clock.
func dispatch(clk *clock.Manual, el *dom.Element, typ string, x, y float64) {
	el.Dispatch(&dom.Event{Type: typ, X: x, Y: y, Time: clk.Now()})
}

// click activates el the way a pointer tap on a non-touch surface would.
func click(clk *clock.Manual, el *dom.Element) {
	dispatch(clk, el, "click", 0, 0)
}

// swipe drags a finger across el from fromX to toX. The hold is long
// enough that the release does not double as a tap.
func swipe(clk *clock.Manual, el *dom.Element, fromX, toX float64) {
	dispatch(clk, el, "touchstart", fromX, 88)
	clk.Advance(200 * time.Millisecond)
	dispatch(clk, el, "touchmove", toX, 88)
	clk.Advance(120 * time.Millisecond)
	dispatch(clk, el, "touchend", toX, 88)
}

// note prints one narration line to stderr so stdout stays pure HTML.
func note(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
