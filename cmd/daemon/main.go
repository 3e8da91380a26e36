package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/displayfollow/internal/capture"
	"github.com/genricoloni/displayfollow/internal/config"
	"github.com/genricoloni/displayfollow/internal/display"
	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/genricoloni/displayfollow/internal/engine"
	"github.com/genricoloni/displayfollow/internal/executor"
	"github.com/genricoloni/displayfollow/internal/monitor"
	"github.com/genricoloni/displayfollow/internal/notify"
	"github.com/genricoloni/displayfollow/internal/obs"
	"github.com/genricoloni/displayfollow/internal/probe"
	"github.com/genricoloni/displayfollow/internal/transition"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AppOptions is the full dependency graph of the daemon
var AppOptions = fx.Options(
	fx.Provide(
		newLogLevel,
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(executor.NewExecRunner, fx.As(new(domain.CommandRunner))),

		// Display detection
		display.NewSource,
		probe.NewProbe,
		fx.Annotate(monitor.NewWatcherFromConfig, fx.As(new(domain.Watcher))),

		// OBS side
		obs.NewClient,
		func(c *obs.Client) domain.Controller { return c },
		capture.NewUpdater,
		transition.NewRunnerFromConfig,
		notify.NewNotifier,
		func(n notify.Closer) domain.Notifier { return n },

		// Orchestration
		engine.NewQueue,
		engine.NewEngine,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "displayfollow: %v\n", err)
		os.Exit(1)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Stop the application gracefully
	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "displayfollow: shutdown: %v\n", err)
		os.Exit(1)
	}
}

// newLogLevel is shared so the configuration can switch to debug after loading
func newLogLevel() zap.AtomicLevel {
	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

// newLogger creates a new zap logger instance
func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	return cfg.Build()
}

// registerHooks sets up application lifecycle hooks.
// Start order is OBS, watcher, engine; stop runs in reverse.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	client *obs.Client,
	watcher domain.Watcher,
	cursor domain.CursorProbe,
	eng *engine.Engine,
	notifier notify.Closer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Connect(ctx); err != nil {
				return fmt.Errorf("failed to connect to OBS: %w", err)
			}
			if err := watcher.Start(ctx); err != nil {
				return multierr.Append(err, client.Close())
			}
			if err := eng.Start(ctx); err != nil {
				return multierr.Combine(err, watcher.Stop(ctx), client.Close())
			}
			logger.Info("displayfollow daemon started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")

			err := multierr.Combine(
				eng.Stop(ctx),
				watcher.Stop(ctx),
				client.Close(),
				notifier.Close(),
			)
			if closer, ok := cursor.(io.Closer); ok {
				err = multierr.Append(err, closer.Close())
			}
			_ = logger.Sync()
			return err
		},
	})
}
