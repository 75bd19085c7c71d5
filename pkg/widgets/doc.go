// Package widgets provides ready-made components assembled over the core
// enhancer pipeline: Badge, Snackbar (with a Queue), Tabs and TextField.
//
// # Construction
//
// Every widget is built by a NewXxx factory taking an Env plus a
// widget-specific options struct:
//
//	env := widgets.Env{Document: doc}
//	bar, err := widgets.NewSnackbar(env, widgets.SnackbarOptions{
//	    Message:     "Draft saved",
//	    ActionLabel: "UNDO",
//	    OnAction:    restoreDraft,
//	})
//
// Factories return an error when assembly fails (for example when the Env
// carries no document); they never return a half-built widget. Recoverable
// problems, such as an unknown badge position or an out-of-range initial
// tab, are reported through pkg/errors as warnings and the widget falls
// back to a safe default instead of failing.
//
// # Styling
//
// Widgets emit class names only; theme.Stylesheet renders the CSS those
// names expect. A few theme tokens that CSS cannot express from a class
// name alone (badge colors, snackbar timing) are applied as inline styles
// or read from the Env's theme at construction.
//
// # Teardown
//
// Destroy releases everything a widget acquired: timers, document and host
// listeners, ripple nodes, and the host element itself. Destroy is
// idempotent. Widgets do not remove themselves from the document before
// Destroy; hiding is a class toggle (snackbar "--open", textfield
// "--focused") so embedders keep control of the tree.
package widgets
