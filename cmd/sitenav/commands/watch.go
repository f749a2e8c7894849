package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
	"git.home.luguber.info/inful/sitenav/internal/site"
	"git.home.luguber.info/inful/sitenav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Content     string        `help:"Docs directory for link checks (disabled when empty)"`
	Recheck     time.Duration `help:"Interval between link checks" default:"5m"`
	Debounce    time.Duration `help:"Quiet period before reloading" default:"500ms"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9108)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, root)
}

func (w *WatchCmd) run(ctx context.Context, root *CLI) error {
	reg := prom.NewRegistry()
	opts := []watch.Option{
		watch.WithDebounce(w.Debounce),
		watch.WithRecorder(metrics.NewPrometheusRecorder(reg)),
		watch.OnReload(func(id string, cfg *site.Config) {
			s := cfg.Stats()
			slog.Info("Navigation model updated",
				logfields.ReloadID(id),
				slog.Int("nav", s.NavItems),
				slog.Int("sidebar_links", s.SidebarLinks))
		}),
	}
	if w.Content != "" {
		opts = append(opts, watch.WithLinkCheck(w.Content, w.Recheck))
	}
	watcher := watch.New(root.Config, opts...)

	if w.MetricsAddr != "" {
		srv := &http.Server{Addr: w.MetricsAddr, ReadHeaderTimeout: 5 * time.Second}
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		srv.Handler = mux
		go func() {
			slog.Info("Serving metrics", slog.String("addr", w.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if err := watcher.Run(ctx); err != nil {
		if ferrors.IsClassified(err) {
			return err
		}
		return ferrors.RuntimeError("watcher failed").WithCause(err).Build()
	}
	return nil
}
