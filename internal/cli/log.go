package cli

import (
	"github.com/charmbracelet/log"

	tideerrors "github.com/go-tide/tide/pkg/errors"
)

// logBridge forwards toolkit error reports and fallback warnings to the CLI
// logger. Installed for the duration of a command run.
type logBridge struct {
	logger *log.Logger
}

func (b *logBridge) HandleError(e *tideerrors.TideError) {
	b.logger.Error("toolkit error", "op", e.Op, "kind", e.Kind.String(), "err", e.Err)
}

func (b *logBridge) HandleWarning(w *tideerrors.Warning) {
	b.logger.Warn(w.Message, "op", w.Op)
}
