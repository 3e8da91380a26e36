package obs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/genricoloni/displayfollow/internal/domain"
)

var _ domain.Controller = (*Client)(nil)

// GetInputSettings returns the settings of an input in OBS order
func (c *Client) GetInputSettings(ctx context.Context, inputName string) (domain.Settings, error) {
	raw, err := c.Call(ctx, "GetInputSettings", map[string]any{"inputName": inputName})
	if err != nil {
		return nil, err
	}

	var resp struct {
		InputSettings domain.Settings `json:"inputSettings"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("malformed GetInputSettings response: %w", err)
	}
	return resp.InputSettings, nil
}

// SetInputSettings applies settings to an input, merging them when overlay is set
func (c *Client) SetInputSettings(ctx context.Context, inputName string, settings domain.Settings, overlay bool) error {
	_, err := c.Call(ctx, "SetInputSettings", map[string]any{
		"inputName":     inputName,
		"inputSettings": settings,
		"overlay":       overlay,
	})
	return err
}

// GetStudioModeEnabled reports whether studio mode is on
func (c *Client) GetStudioModeEnabled(ctx context.Context) (bool, error) {
	raw, err := c.Call(ctx, "GetStudioModeEnabled", nil)
	if err != nil {
		return false, err
	}

	var resp struct {
		StudioModeEnabled bool `json:"studioModeEnabled"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return false, fmt.Errorf("malformed GetStudioModeEnabled response: %w", err)
	}
	return resp.StudioModeEnabled, nil
}

// SetStudioModeEnabled switches studio mode
func (c *Client) SetStudioModeEnabled(ctx context.Context, enabled bool) error {
	_, err := c.Call(ctx, "SetStudioModeEnabled", map[string]any{"studioModeEnabled": enabled})
	return err
}

// SetCurrentSceneTransition selects the transition used by the next trigger
func (c *Client) SetCurrentSceneTransition(ctx context.Context, name string) error {
	_, err := c.Call(ctx, "SetCurrentSceneTransition", map[string]any{"transitionName": name})
	return err
}

// SetCurrentSceneTransitionDuration sets the transition duration in whole milliseconds
func (c *Client) SetCurrentSceneTransitionDuration(ctx context.Context, d time.Duration) error {
	_, err := c.Call(ctx, "SetCurrentSceneTransitionDuration", map[string]any{"transitionDuration": d.Milliseconds()})
	return err
}

// TriggerStudioModeTransition swaps preview and program
func (c *Client) TriggerStudioModeTransition(ctx context.Context) error {
	_, err := c.Call(ctx, "TriggerStudioModeTransition", nil)
	return err
}
