package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/genricoloni/displayfollow/internal/display"
	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultPollInterval is the pause between the end of one tick and the start of the next
	DefaultPollInterval = 400 * time.Millisecond

	eventBufferSize      = 10
	probeWarningInterval = 5 * time.Second
)

// Watcher polls the cursor and emits the owning display whenever it changes
type Watcher struct {
	logger   *zap.Logger
	source   domain.DisplaySource
	probe    domain.CursorProbe
	interval time.Duration
	events   chan domain.DisplayGeometry

	mu         sync.Mutex
	running    bool
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	registry   *display.Registry

	// Owned by the tick goroutine
	lastEmitted      *int
	lastProbeWarning time.Time
}

// NewWatcher creates a stopped watcher
func NewWatcher(logger *zap.Logger, source domain.DisplaySource, probe domain.CursorProbe, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		logger:   logger,
		source:   source,
		probe:    probe,
		interval: interval,
		events:   make(chan domain.DisplayGeometry, eventBufferSize),
	}
}

// NewWatcherFromConfig creates a watcher using the configured poll interval
func NewWatcherFromConfig(logger *zap.Logger, cfg domain.Config, source domain.DisplaySource, probe domain.CursorProbe) *Watcher {
	return NewWatcher(logger, source, probe, cfg.GetPollInterval())
}

// Events returns the channel of display changes.
// The channel stays open across Stop/Start cycles.
func (w *Watcher) Events() <-chan domain.DisplayGeometry {
	return w.events
}

// Registry returns the display registry captured by the last Start, or nil
func (w *Watcher) Registry() *display.Registry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry
}

// Start loads the display registry and begins polling. It is a no-op when running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	previous := w.done
	w.mu.Unlock()

	// A loop from an earlier generation may still be finishing its last tick
	if previous != nil {
		select {
		case <-previous:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	registry := display.LoadRegistry(ctx, w.source, w.logger)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	w.running = true
	w.generation++
	w.cancel = cancel
	w.done = make(chan struct{})
	w.registry = registry

	go w.loop(loopCtx, w.generation, registry, w.done)

	w.logger.Info("Display watcher started",
		zap.Int("displays", registry.Len()),
		zap.Duration("interval", w.interval))
	return nil
}

// Stop halts polling. A tick that is already executing completes but schedules no successor.
// Stop waits for that tick until ctx expires.
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.cancel()
	done := w.done
	w.mu.Unlock()

	select {
	case <-done:
		w.logger.Info("Display watcher stopped")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Display watcher did not stop in time", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

// current reports whether gen is the live generation
func (w *Watcher) current(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running && w.generation == gen
}

// loop runs ticks back to back, sleeping interval between the end of one and the start of the next
func (w *Watcher) loop(ctx context.Context, gen uint64, registry *display.Registry, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if !w.current(gen) {
			return
		}
		w.tick(ctx, registry)

		if !w.current(gen) {
			return
		}
		timer.Reset(w.interval)
	}
}

// tick probes the cursor once and emits the owning display if it changed
func (w *Watcher) tick(ctx context.Context, registry *display.Registry) {
	// Stop must not abort a probe that is already running
	pos, err := w.probe.Position(context.WithoutCancel(ctx))
	if err != nil {
		w.logProbeFailure(err)
		return
	}

	owner := registry.Resolve(pos)
	if w.lastEmitted != nil && *w.lastEmitted == owner.Index {
		return
	}

	w.logger.Debug("Active display changed",
		zap.Int("cursorX", pos.X),
		zap.Int("cursorY", pos.Y),
		zap.Int("index", owner.Index),
		zap.String("name", owner.Name))

	if w.emit(ctx, owner) {
		index := owner.Index
		w.lastEmitted = &index
		return
	}

	// lastEmitted is untouched so the next Start emits this display again
	w.logger.Debug("Watcher stopped before change was delivered", zap.Int("index", owner.Index))
}

// emit delivers owner, preferring a free buffer slot over a cancelled ctx.
// A tick that was already running when Stop was called still hands over its change.
func (w *Watcher) emit(ctx context.Context, owner domain.DisplayGeometry) bool {
	select {
	case w.events <- owner:
		return true
	default:
	}

	select {
	case w.events <- owner:
		return true
	case <-ctx.Done():
		return false
	}
}

// logProbeFailure logs cursor probe errors, at most one warning per interval
func (w *Watcher) logProbeFailure(err error) {
	now := time.Now()
	if now.Sub(w.lastProbeWarning) >= probeWarningInterval {
		w.logger.Warn("Cursor probe failed, skipping tick", zap.Error(err))
		w.lastProbeWarning = now
		return
	}
	w.logger.Debug("Cursor probe failed", zap.Error(err))
}
