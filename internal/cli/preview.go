package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/go-tide/tide/internal/preview"
	"github.com/go-tide/tide/pkg/config"
)

// shutdownTimeout bounds the graceful drain when the preview server stops.
const shutdownTimeout = 5 * time.Second

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		addr      string
		configDir string
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the component preview page",
		Long: `Render the component preview page with the configured theme.

By default the page is written to stdout as standalone HTML. With --addr
the page is served over HTTP instead, rebuilt per request; --watch reloads
tide.yaml on change so theme edits show up on the next refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				if watch {
					c.Logger.Warn("--watch has no effect without --addr")
				}
				return c.renderPreview(cmd.OutOrStdout(), configDir)
			}
			return c.servePreview(cmd.Context(), addr, configDir, watch)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "serve the preview over HTTP on this address (e.g. :8080)")
	cmd.Flags().StringVar(&configDir, "config", ".", "directory holding "+config.File)
	cmd.Flags().BoolVar(&watch, "watch", false, "reload configuration on change")

	return cmd
}

// renderPreview builds the page once and writes it to out.
func (c *CLI) renderPreview(out io.Writer, dir string) error {
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}
	resolved := cfg.Resolve()
	page, err := preview.Build(preview.Options{Theme: resolved.Theme, Prefix: resolved.Prefix})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, page.HTML())
	return err
}

// servePreview serves the page over HTTP until ctx is cancelled. Each
// request rebuilds the page from the current configuration snapshot.
func (c *CLI) servePreview(ctx context.Context, addr, dir string, watch bool) error {
	snapshot, closeSource, err := c.configSource(dir, watch)
	if err != nil {
		return err
	}
	defer closeSource()

	r := chi.NewRouter()
	r.Use(c.requestLogger)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		resolved := snapshot()
		page, err := preview.Build(preview.Options{Theme: resolved.Theme, Prefix: resolved.Prefix})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page.HTML())
	})

	srv := &http.Server{Addr: addr, Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	c.Logger.Info("preview listening", "addr", addr, "watch", watch)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		c.Logger.Info("preview stopped")
		return ctx.Err()
	}
}

// configSource returns a snapshot function for the resolved configuration.
// With watch it is backed by a config.Watcher, so each call sees the latest
// good configuration; otherwise the configuration is loaded once.
func (c *CLI) configSource(dir string, watch bool) (func() *config.Resolved, func(), error) {
	if !watch {
		cfg, err := config.LoadOptional(dir)
		if err != nil {
			return nil, nil, err
		}
		resolved := cfg.Resolve()
		return func() *config.Resolved { return resolved }, func() {}, nil
	}

	w, err := config.NewWatcher(dir)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Info("watching configuration", "dir", dir, "file", config.File)
	return w.Current, func() { _ = w.Close() }, nil
}

// requestLogger logs one line per request through the CLI logger.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		c.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	})
}
