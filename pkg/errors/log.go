package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that logs errors and warnings to a writer,
// stderr by default.
type LogHandler struct {
	// Out overrides the destination. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a TideError.
func (h *LogHandler) HandleError(err *TideError) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.writer(), "[tide error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
}

// HandleWarning logs a Warning.
func (h *LogHandler) HandleWarning(w *Warning) {
	if w == nil {
		return
	}
	fmt.Fprintf(h.writer(), "[tide warning] %s: %s\n", w.Op, w.Message)
}
