package errors

import (
	"fmt"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler writing to stderr.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// Handler receives errors and warnings reported by the toolkit.
type Handler interface {
	// HandleError is called for errors surfaced outside a return path,
	// such as failures inside watcher or timer callbacks.
	HandleError(err *TideError)
	// HandleWarning is called for recoverable misuse the toolkit
	// corrected with a fallback.
	HandleWarning(w *Warning)
}

// SetHandler configures the global handler and returns the previous one.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) Handler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := DefaultHandler
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
	return prev
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *TideError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// Warnf formats and sends a warning to the global handler.
func Warnf(op, format string, args ...any) {
	w := &Warning{
		Op:        op,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	}
	if h := getHandler(); h != nil {
		h.HandleWarning(w)
	}
}
