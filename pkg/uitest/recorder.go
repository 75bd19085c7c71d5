package uitest

import (
	"sync"
	"testing"

	"github.com/go-tide/tide/pkg/errors"
)

// Recorder is an errors.Handler that collects reports instead of logging
// them, so tests can assert on warnings and out-of-band errors.
type Recorder struct {
	mu       sync.Mutex
	errs     []*errors.TideError
	warnings []*errors.Warning
}

// Capture installs a fresh Recorder as the global error handler and
// restores the previous handler when the test finishes.
func Capture(t *testing.T) *Recorder {
	t.Helper()
	r := &Recorder{}
	prev := errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return r
}

// HandleError records err.
func (r *Recorder) HandleError(err *errors.TideError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandleWarning records w.
func (r *Recorder) HandleWarning(w *errors.Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

// Errors returns the recorded errors in arrival order.
func (r *Recorder) Errors() []*errors.TideError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.TideError(nil), r.errs...)
}

// Warnings returns the recorded warnings in arrival order.
func (r *Recorder) Warnings() []*errors.Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.Warning(nil), r.warnings...)
}
