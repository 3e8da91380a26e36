package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/genricoloni/displayfollow/internal/domain DisplaySource,CursorProbe,Controller,CommandRunner,Notifier

// Watcher reports which display owns the pointer
type Watcher interface {
	// Start begins polling; calling it while running is a no-op
	Start(ctx context.Context) error

	// Stop halts polling
	Stop(ctx context.Context) error

	// Events emits a display each time the pointer moves to another one
	Events() <-chan DisplayGeometry
}

// DisplaySource lists the displays attached to the desktop
type DisplaySource interface {
	// Displays returns the displays in listing order.
	// An empty result is not an error; callers apply their own fallback.
	Displays(ctx context.Context) ([]DisplayGeometry, error)
}

// CursorProbe reports the current pointer position
type CursorProbe interface {
	// Position is called once per poll tick
	Position(ctx context.Context) (CursorPosition, error)
}

// Controller is the subset of the OBS request API the daemon drives
type Controller interface {
	// GetInputSettings returns the current settings of a capture input, in key order
	GetInputSettings(ctx context.Context, inputName string) (Settings, error)

	// SetInputSettings writes settings; with overlay only the given keys change
	SetInputSettings(ctx context.Context, inputName string, settings Settings, overlay bool) error

	// GetStudioModeEnabled reports whether studio mode is on
	GetStudioModeEnabled(ctx context.Context) (bool, error)

	// SetStudioModeEnabled toggles studio mode
	SetStudioModeEnabled(ctx context.Context, enabled bool) error

	// SetCurrentSceneTransition selects the transition used by the next trigger
	SetCurrentSceneTransition(ctx context.Context, name string) error

	// SetCurrentSceneTransitionDuration sets the transition duration
	SetCurrentSceneTransitionDuration(ctx context.Context, duration time.Duration) error

	// TriggerStudioModeTransition swaps preview and program
	TriggerStudioModeTransition(ctx context.Context) error
}

// CommandRunner executes external programs
type CommandRunner interface {
	// Output runs the binary and returns its standard output.
	// A non-zero exit status is reported as an error.
	Output(ctx context.Context, binary string, args ...string) ([]byte, error)
}

// Notifier surfaces failures to the desktop user
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetOBSURL returns the obs-websocket endpoint
	GetOBSURL() string

	// GetOBSPassword returns the obs-websocket password, empty when auth is disabled
	GetOBSPassword() string

	// GetInputName returns the capture input to retarget
	GetInputName() string

	// GetTransitionName returns the transition to select, empty to keep the current one
	GetTransitionName() string

	// GetTransitionDuration returns the transition duration and whether one was configured
	GetTransitionDuration() (time.Duration, bool)

	// GetAutoStudioMode reports whether studio mode is switched on before transitions
	GetAutoStudioMode() bool

	// GetPollInterval returns the delay between two cursor probes
	GetPollInterval() time.Duration

	// GetDebug reports whether verbose logging is enabled
	GetDebug() bool

	// GetDisplaySource returns the display listing backend name
	GetDisplaySource() string

	// GetCursorSource returns the cursor probe backend name
	GetCursorSource() string

	// GetXrandrBinary returns the display listing command
	GetXrandrBinary() string

	// GetXdotoolBinary returns the cursor query command
	GetXdotoolBinary() string

	// GetNotifyOnFailure reports whether failed updates raise a desktop notification
	GetNotifyOnFailure() bool
}
