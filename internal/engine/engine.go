package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/genricoloni/displayfollow/internal/capture"
	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/genricoloni/displayfollow/internal/transition"
	"go.uber.org/zap"
)

// Engine turns display changes into capture updates.
// It listens to watcher events and queues one retarget-and-transition task per change.
type Engine struct {
	logger     *zap.Logger
	cfg        domain.Config
	watcher    domain.Watcher
	updater    *capture.Updater
	transition *transition.Runner
	notifier   domain.Notifier
	queue      *Queue

	mu      sync.Mutex
	running bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	watcher domain.Watcher,
	updater *capture.Updater,
	runner *transition.Runner,
	notifier domain.Notifier,
	queue *Queue,
) *Engine {
	return &Engine{
		logger:     logger,
		cfg:        cfg,
		watcher:    watcher,
		updater:    updater,
		transition: runner,
		notifier:   notifier,
		queue:      queue,
	}
}

// Start launches the event forwarding loop in a goroutine.
// It returns immediately (non-blocking) and is a no-op when already running.
// Stop is final: Start after Stop returns ErrQueueClosed.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return ErrQueueClosed
	}
	if e.running {
		return nil
	}

	e.logger.Info("Engine starting...", zap.String("input", e.cfg.GetInputName()))

	loopCtx, cancel := context.WithCancel(context.Background())
	e.running = true
	e.cancel = cancel
	e.done = make(chan struct{})

	go e.runLoop(loopCtx, e.done)
	return nil
}

// runLoop forwards every display change to the queue in arrival order
func (e *Engine) runLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	events := e.watcher.Events()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case display, ok := <-events:
			if !ok {
				e.logger.Info("Watcher events channel closed")
				return
			}
			e.logger.Info("Display change received",
				zap.Int("index", display.Index),
				zap.String("name", display.Name))

			name := fmt.Sprintf("retarget:%d", display.Index)
			if err := e.queue.Enqueue(name, e.newTask(display)); err != nil {
				e.logger.Warn("Dropping display change", zap.Error(err))
			}
		}
	}
}

// newTask binds a display to the update pipeline
func (e *Engine) newTask(display domain.DisplayGeometry) Task {
	return func(ctx context.Context) error {
		if err := e.processDisplay(ctx, display); err != nil {
			e.report(ctx, display, err)
			return err
		}
		return nil
	}
}

// processDisplay retargets the capture input then plays the transition
func (e *Engine) processDisplay(ctx context.Context, display domain.DisplayGeometry) error {
	// 1. Pick the value identifying the display
	value := SelectionValue(display)

	e.logger.Debug("Updating input",
		zap.String("input", e.cfg.GetInputName()),
		zap.Int("displayIndex", display.Index),
		zap.String("name", display.Name),
		zap.String("id", display.ID),
		zap.Stringer("chosenValue", value),
		zap.Ints("pos", []int{display.X, display.Y}),
		zap.Ints("size", []int{display.Width, display.Height}))

	// 2. Point the capture input at it
	index := display.Index
	if err := e.updater.Update(ctx, e.cfg.GetInputName(), value, &index); err != nil {
		return err
	}

	// 3. Show the change
	if err := e.transition.Run(ctx); err != nil {
		return err
	}

	e.logger.Info("Capture input retargeted",
		zap.String("input", e.cfg.GetInputName()),
		zap.Stringer("display", value))
	return nil
}

// report forwards a failed update to the desktop notifier
func (e *Engine) report(ctx context.Context, display domain.DisplayGeometry, err error) {
	summary := fmt.Sprintf("Could not switch capture to %s", SelectionValue(display))
	if nerr := e.notifier.Notify(ctx, summary, err.Error()); nerr != nil {
		e.logger.Debug("Failure notification not delivered", zap.Error(nerr))
	}
}

// Stop stops forwarding events and drains the queue
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	running := e.running
	cancel, done := e.cancel, e.done
	e.running = false
	e.stopped = true
	e.mu.Unlock()

	e.logger.Info("Engine stopping...")

	if running {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return e.queue.Close(ctx)
}

// SelectionValue prefers a non-blank name, then a non-blank id, then the numeric index
func SelectionValue(display domain.DisplayGeometry) domain.DisplayValue {
	if strings.TrimSpace(display.Name) != "" {
		return domain.StringValue(display.Name)
	}
	if strings.TrimSpace(display.ID) != "" {
		return domain.StringValue(display.ID)
	}
	return domain.NumberValue(float64(display.Index))
}
