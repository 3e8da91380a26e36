package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileEnv names an optional YAML file loaded before the environment
	ConfigFileEnv = "DISPLAYFOLLOW_CONFIG"

	defaultOBSURL       = "ws://127.0.0.1:4455"
	defaultPollInterval = 400
	defaultDisplaySrc   = "xrandr"
	defaultCursorSrc    = "xdotool"
	defaultXrandrBin    = "xrandr"
	defaultXdotoolBin   = "xdotool"
)

// ErrMissingInputName is returned when no capture input is configured
var ErrMissingInputName = errors.New("OBS_WINDOW_CAPTURE_INPUT_NAME is required (must match an existing capture input in OBS)")

// Values is the raw configuration as read from file and environment
type Values struct {
	OBSURL               string `envconfig:"OBS_WEBSOCKET_URL" yaml:"obs_websocket_url"`
	OBSPassword          string `envconfig:"OBS_WEBSOCKET_PASSWORD" yaml:"obs_websocket_password"`
	InputName            string `envconfig:"OBS_WINDOW_CAPTURE_INPUT_NAME" yaml:"input_name"`
	TransitionName       string `envconfig:"OBS_TRANSITION_NAME" yaml:"transition_name"`
	TransitionDurationMS *int   `envconfig:"OBS_TRANSITION_DURATION_MS" yaml:"transition_duration_ms"`
	AutoStudioMode       bool   `envconfig:"OBS_AUTO_STUDIO_MODE" yaml:"auto_studio_mode"`
	PollIntervalMS       int    `envconfig:"ACTIVE_WINDOW_POLL_MS" yaml:"poll_interval_ms"`
	Debug                bool   `envconfig:"DEBUG" yaml:"debug"`
	DisplaySource        string `envconfig:"DISPLAY_SOURCE" yaml:"display_source"`
	CursorSource         string `envconfig:"CURSOR_SOURCE" yaml:"cursor_source"`
	XrandrBinary         string `envconfig:"XRANDR_BIN" yaml:"xrandr_bin"`
	XdotoolBinary        string `envconfig:"XDOTOOL_BIN" yaml:"xdotool_bin"`
	NotifyOnFailure      bool   `envconfig:"NOTIFY_ON_FAILURE" yaml:"notify_on_failure"`
}

// Defaults returns the built-in configuration
func Defaults() Values {
	return Values{
		OBSURL:         defaultOBSURL,
		AutoStudioMode: true,
		PollIntervalMS: defaultPollInterval,
		DisplaySource:  defaultDisplaySrc,
		CursorSource:   defaultCursorSrc,
		XrandrBinary:   defaultXrandrBin,
		XdotoolBinary:  defaultXdotoolBin,
	}
}

// Load layers defaults, the optional YAML file, a .env file and the environment.
// Later layers win.
func Load() (Values, error) {
	v := Defaults()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := loadFile(expandPath(path), &v); err != nil {
			return Values{}, err
		}
	}

	// A missing .env is fine; existing variables are never overridden
	_ = godotenv.Load()

	if err := envconfig.Process("", &v); err != nil {
		return Values{}, fmt.Errorf("invalid environment: %w", err)
	}

	return v, nil
}

func loadFile(path string, v *Values) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// expandPath resolves environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks the values the daemon cannot run without
func (v Values) Validate() error {
	if v.InputName == "" {
		return ErrMissingInputName
	}
	if v.PollIntervalMS <= 0 {
		return fmt.Errorf("ACTIVE_WINDOW_POLL_MS must be positive, got %d", v.PollIntervalMS)
	}
	if v.TransitionDurationMS != nil && *v.TransitionDurationMS < 0 {
		return fmt.Errorf("OBS_TRANSITION_DURATION_MS must not be negative, got %d", *v.TransitionDurationMS)
	}
	return nil
}

// AppConfig holds application configuration
type AppConfig struct {
	values Values
}

// New validates values and wraps them
func New(values Values) (*AppConfig, error) {
	if err := values.Validate(); err != nil {
		return nil, err
	}
	return &AppConfig{values: values}, nil
}

// NewAppConfig loads the configuration and raises the log level when debug is on
func NewAppConfig(logger *zap.Logger, level zap.AtomicLevel) (*AppConfig, error) {
	values, err := Load()
	if err != nil {
		return nil, err
	}

	cfg, err := New(values)
	if err != nil {
		return nil, err
	}

	if cfg.GetDebug() {
		level.SetLevel(zap.DebugLevel)
	}

	duration, hasDuration := cfg.GetTransitionDuration()
	logger.Info("Configuration loaded",
		zap.String("obsURL", cfg.GetOBSURL()),
		zap.Bool("auth", cfg.GetOBSPassword() != ""),
		zap.String("input", cfg.GetInputName()),
		zap.String("transition", cfg.GetTransitionName()),
		zap.Duration("transitionDuration", duration),
		zap.Bool("hasTransitionDuration", hasDuration),
		zap.Duration("pollInterval", cfg.GetPollInterval()),
		zap.String("displaySource", cfg.GetDisplaySource()),
		zap.String("cursorSource", cfg.GetCursorSource()),
		zap.Bool("debug", cfg.GetDebug()))

	return cfg, nil
}

// GetOBSURL returns the obs-websocket endpoint
func (c *AppConfig) GetOBSURL() string {
	return c.values.OBSURL
}

// GetOBSPassword returns the obs-websocket password
func (c *AppConfig) GetOBSPassword() string {
	return c.values.OBSPassword
}

// GetInputName returns the capture input to retarget
func (c *AppConfig) GetInputName() string {
	return c.values.InputName
}

// GetTransitionName returns the transition to select before triggering
func (c *AppConfig) GetTransitionName() string {
	return c.values.TransitionName
}

// GetTransitionDuration returns the configured transition duration, if any
func (c *AppConfig) GetTransitionDuration() (time.Duration, bool) {
	if c.values.TransitionDurationMS == nil {
		return 0, false
	}
	return time.Duration(*c.values.TransitionDurationMS) * time.Millisecond, true
}

// GetAutoStudioMode reports whether studio mode is enabled on demand
func (c *AppConfig) GetAutoStudioMode() bool {
	return c.values.AutoStudioMode
}

// GetPollInterval returns the delay between cursor probes
func (c *AppConfig) GetPollInterval() time.Duration {
	return time.Duration(c.values.PollIntervalMS) * time.Millisecond
}

// GetDebug reports whether verbose logging is on
func (c *AppConfig) GetDebug() bool {
	return c.values.Debug
}

// GetDisplaySource returns the display listing backend
func (c *AppConfig) GetDisplaySource() string {
	return c.values.DisplaySource
}

// GetCursorSource returns the cursor probe backend
func (c *AppConfig) GetCursorSource() string {
	return c.values.CursorSource
}

// GetXrandrBinary returns the xrandr command
func (c *AppConfig) GetXrandrBinary() string {
	return c.values.XrandrBinary
}

// GetXdotoolBinary returns the xdotool command
func (c *AppConfig) GetXdotoolBinary() string {
	return c.values.XdotoolBinary
}

// GetNotifyOnFailure reports whether failed updates raise a desktop notification
func (c *AppConfig) GetNotifyOnFailure() bool {
	return c.values.NotifyOnFailure
}
