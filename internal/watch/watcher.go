// Package watch keeps a validated navigation model in memory and reloads it
// when the configuration file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/content"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload runs.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc is called with each newly accepted configuration.
type ReloadFunc func(reloadID string, cfg *site.Config)

// Watcher monitors a configuration file and keeps the last valid model.
type Watcher struct {
	configPath  string
	contentRoot string
	debounce    time.Duration
	recheck     time.Duration
	recorder    metrics.Recorder
	onReload    []ReloadFunc

	mu       sync.RWMutex
	current  *site.Config
	snapshot string

	reloadChan chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce period.
func WithDebounce(d time.Duration) Option { return func(w *Watcher) { w.debounce = d } }

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option { return func(w *Watcher) { w.recorder = r } }

// WithLinkCheck re-checks navigation links against the documents under root
// every interval, and after every accepted reload.
func WithLinkCheck(root string, interval time.Duration) Option {
	return func(w *Watcher) {
		w.contentRoot = root
		w.recheck = interval
	}
}

// OnReload registers fn to run after a configuration is accepted.
func OnReload(fn ReloadFunc) Option { return func(w *Watcher) { w.onReload = append(w.onReload, fn) } }

// New creates a watcher for configPath.
func New(configPath string, opts ...Option) *Watcher {
	w := &Watcher{
		configPath: configPath,
		debounce:   DefaultDebounce,
		recorder:   metrics.NoopRecorder{},
		reloadChan: make(chan struct{}, 1),
	}
	if abs, err := filepath.Abs(configPath); err == nil {
		w.configPath = abs
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Current returns the last accepted configuration, nil before the first
// successful load. Callers must not mutate it.
func (w *Watcher) Current() *site.Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Reload loads the file once. It reports whether the model changed. An
// invalid file leaves the current model in place and returns the error.
func (w *Watcher) Reload() (bool, error) {
	reloadID := uuid.NewString()
	log := slog.With(logfields.ReloadID(reloadID), logfields.Path(w.configPath))
	start := time.Now()

	cfg, err := config.Load(w.configPath)
	w.recorder.ObserveLoadDuration(time.Since(start))
	if err != nil {
		if ferrors.IsConfigurationError(err) {
			w.recorder.IncLoad(metrics.ResultInvalid)
			w.recorder.IncValidationFailure(string(ferrors.GetCategory(err)))
		} else {
			w.recorder.IncLoad(metrics.ResultFailed)
		}
		log.Error("Configuration rejected, keeping previous model", logfields.Error(err))
		return false, err
	}

	snap, err := config.Snapshot(cfg)
	if err != nil {
		w.recorder.IncLoad(metrics.ResultFailed)
		return false, err
	}

	w.mu.Lock()
	if snap == w.snapshot {
		w.mu.Unlock()
		w.recorder.IncLoad(metrics.ResultUnchanged)
		log.Debug("Configuration unchanged", logfields.Snapshot(snap))
		return false, nil
	}
	w.current = cfg
	w.snapshot = snap
	w.mu.Unlock()

	w.recorder.IncLoad(metrics.ResultSuccess)
	w.recorder.SetNavStats(cfg.Stats())
	log.Info("Configuration loaded",
		logfields.Snapshot(snap),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))

	for _, fn := range w.onReload {
		fn(reloadID, cfg)
	}
	if w.contentRoot != "" {
		w.CheckLinks()
	}
	return true, nil
}

// CheckLinks checks the current model against the content root and returns
// the problems found. Problems are logged and recorded, never fatal.
func (w *Watcher) CheckLinks() []content.Problem {
	cfg := w.Current()
	if cfg == nil || w.contentRoot == "" {
		return nil
	}
	idx, err := content.Build(w.contentRoot)
	if err != nil {
		slog.Error("Link check failed", logfields.Path(w.contentRoot), logfields.Error(err))
		return nil
	}
	problems := content.CheckLinks(cfg, idx)
	w.recorder.SetLinkProblems(len(problems))
	for _, p := range problems {
		slog.Warn("Broken navigation link", logfields.Field(p.Field), logfields.Route(p.Link), slog.String("reason", p.Reason))
	}
	slog.Debug("Link check complete", logfields.Count(len(problems)))
	return problems
}

// Run loads the configuration, then watches for changes until ctx is done.
// The initial load must succeed.
func (w *Watcher) Run(ctx context.Context) error {
	if _, err := w.Reload(); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.RuntimeError("failed to create file watcher").WithCause(err).Build()
	}
	defer func() {
		if cerr := fsw.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	// Watch the directory: editors replace files instead of writing in place.
	dir := filepath.Dir(w.configPath)
	if err := fsw.Add(dir); err != nil {
		return ferrors.FileSystemError(fmt.Sprintf("failed to watch config directory %s", dir)).
			WithPath(dir).WithCause(err).Build()
	}

	if w.contentRoot != "" && w.recheck > 0 {
		sched, err := NewScheduler()
		if err != nil {
			return ferrors.RuntimeError("failed to create scheduler").WithCause(err).Build()
		}
		if _, err := sched.ScheduleEvery("link-check", w.recheck, func() { w.CheckLinks() }); err != nil {
			return ferrors.RuntimeError("failed to schedule link check").WithCause(err).Build()
		}
		sched.Start()
		defer func() { _ = sched.Stop() }()
	}

	slog.Info("Watching configuration", logfields.Path(w.configPath))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); w.watchLoop(ctx, fsw) }()
	go func() { defer wg.Done(); w.reloadLoop(ctx) }()
	<-ctx.Done()
	wg.Wait()
	slog.Info("Stopped watching configuration")
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	configFile := filepath.Base(w.configPath)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.triggerReload()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed, keeping previous model", logfields.Path(event.Name))
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.reloadChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			_, _ = w.Reload()
		}
	}
}

// triggerReload requests a debounced reload.
func (w *Watcher) triggerReload() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}
