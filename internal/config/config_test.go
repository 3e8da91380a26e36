package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var managedKeys = []string{
	ConfigFileEnv,
	"OBS_WEBSOCKET_URL", "OBS_WEBSOCKET_PASSWORD", "OBS_WINDOW_CAPTURE_INPUT_NAME",
	"OBS_TRANSITION_NAME", "OBS_TRANSITION_DURATION_MS", "OBS_AUTO_STUDIO_MODE",
	"ACTIVE_WINDOW_POLL_MS", "DEBUG", "DISPLAY_SOURCE", "CURSOR_SOURCE",
	"XRANDR_BIN", "XDOTOOL_BIN", "NOTIFY_ON_FAILURE",
}

// clearEnv unsets every key the loader reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	v, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ws://127.0.0.1:4455", v.OBSURL)
	assert.Equal(t, 400, v.PollIntervalMS)
	assert.True(t, v.AutoStudioMode)
	assert.Nil(t, v.TransitionDurationMS)
	assert.Equal(t, "xrandr", v.DisplaySource)
	assert.Equal(t, "xdotool", v.CursorSource)

	assert.ErrorIs(t, v.Validate(), ErrMissingInputName)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("OBS_WEBSOCKET_URL", "ws://obs.local:4455")
	t.Setenv("OBS_WINDOW_CAPTURE_INPUT_NAME", "Screen")
	t.Setenv("OBS_TRANSITION_DURATION_MS", "250")
	t.Setenv("ACTIVE_WINDOW_POLL_MS", "100")
	t.Setenv("DEBUG", "1")

	v, err := Load()
	require.NoError(t, err)

	cfg, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, "ws://obs.local:4455", cfg.GetOBSURL())
	assert.Equal(t, "Screen", cfg.GetInputName())
	assert.Equal(t, 100*time.Millisecond, cfg.GetPollInterval())
	assert.True(t, cfg.GetDebug())

	d, ok := cfg.GetTransitionDuration()
	assert.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "displayfollow.yaml")
	content := "input_name: From File\ntransition_name: Fade\npoll_interval_ms: 250\nauto_studio_mode: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("OBS_TRANSITION_NAME", "Cut")

	v, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "From File", v.InputName)
	assert.Equal(t, "Cut", v.TransitionName, "environment must win over the file")
	assert.Equal(t, 250, v.PollIntervalMS)
	assert.False(t, v.AutoStudioMode)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACTIVE_WINDOW_POLL_MS", "fast")

	_, err := Load()
	assert.Error(t, err)
}

func TestValues_Validate(t *testing.T) {
	negative := -5

	tests := []struct {
		name    string
		mutate  func(*Values)
		wantErr bool
	}{
		{name: "Valid", mutate: func(v *Values) {}},
		{name: "Missing Input", mutate: func(v *Values) { v.InputName = "" }, wantErr: true},
		{name: "Zero Interval", mutate: func(v *Values) { v.PollIntervalMS = 0 }, wantErr: true},
		{name: "Negative Duration", mutate: func(v *Values) { v.TransitionDurationMS = &negative }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Defaults()
			v.InputName = "Screen"
			tt.mutate(&v)

			err := v.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAppConfig_RaisesLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("OBS_WINDOW_CAPTURE_INPUT_NAME", "Screen")
	t.Setenv("DEBUG", "true")

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg, err := NewAppConfig(zap.NewNop(), level)
	require.NoError(t, err)

	assert.True(t, cfg.GetDebug())
	assert.Equal(t, zap.DebugLevel, level.Level())
}
