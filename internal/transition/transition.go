package transition

import (
	"context"
	"fmt"
	"time"

	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

// Options controls the studio-mode transition played after each retarget
type Options struct {
	// Name selects a transition first; empty keeps the current one
	Name string
	// Duration is applied only when HasDuration is set
	Duration    time.Duration
	HasDuration bool
	// AutoStudioMode turns studio mode on when it is off
	AutoStudioMode bool
}

// Runner plays the transition through the controller
type Runner struct {
	logger     *zap.Logger
	controller domain.Controller
	opts       Options
}

// NewRunner creates a transition runner with fixed options
func NewRunner(logger *zap.Logger, controller domain.Controller, opts Options) *Runner {
	return &Runner{logger: logger, controller: controller, opts: opts}
}

// NewRunnerFromConfig builds the options from the application configuration
func NewRunnerFromConfig(logger *zap.Logger, cfg domain.Config, controller domain.Controller) *Runner {
	duration, ok := cfg.GetTransitionDuration()
	return NewRunner(logger, controller, Options{
		Name:           cfg.GetTransitionName(),
		Duration:       duration,
		HasDuration:    ok,
		AutoStudioMode: cfg.GetAutoStudioMode(),
	})
}

// Run issues, in order: the studio mode check, transition name, duration and the trigger.
// The first failing request aborts the sequence.
func (r *Runner) Run(ctx context.Context) error {
	if r.opts.AutoStudioMode {
		enabled, err := r.controller.GetStudioModeEnabled(ctx)
		if err != nil {
			return fmt.Errorf("failed to query studio mode: %w", err)
		}
		if !enabled {
			r.logger.Info("Enabling studio mode")
			if err := r.controller.SetStudioModeEnabled(ctx, true); err != nil {
				return fmt.Errorf("failed to enable studio mode: %w", err)
			}
		}
	}

	if r.opts.Name != "" {
		if err := r.controller.SetCurrentSceneTransition(ctx, r.opts.Name); err != nil {
			return fmt.Errorf("failed to select transition %q: %w", r.opts.Name, err)
		}
	}

	if r.opts.HasDuration {
		if err := r.controller.SetCurrentSceneTransitionDuration(ctx, r.opts.Duration); err != nil {
			return fmt.Errorf("failed to set transition duration: %w", err)
		}
	}

	if err := r.controller.TriggerStudioModeTransition(ctx); err != nil {
		return fmt.Errorf("failed to trigger transition: %w", err)
	}

	r.logger.Debug("Transition triggered", zap.String("transition", r.opts.Name))
	return nil
}
