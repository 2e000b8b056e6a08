package controller

import (
	"context"
	"fmt"
	"sync"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
)

const settingsPath = "/api/v1/admin/settings"

type settingsEnvelope struct {
	Settings model.AppSettings `json:"settings"`
}

type SettingsController struct {
	client *upstream.Client

	guard   fetchGuard
	mu      sync.Mutex
	last    model.AppSettings
	hasLast bool
}

func NewSettingsController(client *upstream.Client) *SettingsController {
	return &SettingsController{client: client}
}

// Load fetches the whole settings document. When the fetch fails and no
// earlier fetch succeeded, the documented defaults are returned so the form
// still renders editable.
func (c *SettingsController) Load(ctx context.Context, token string) (model.AppSettings, error) {
	seq := c.guard.begin()

	var resp settingsEnvelope
	if err := c.client.Get(ctx, token, settingsPath, &resp); err != nil {
		return c.snapshot(), err
	}

	if !c.guard.tryApply(seq) {
		return c.snapshot(), nil
	}
	c.mu.Lock()
	c.last = resp.Settings
	c.hasLast = true
	c.mu.Unlock()
	return resp.Settings, nil
}

func (c *SettingsController) snapshot() model.AppSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLast {
		return model.DefaultSettings()
	}
	return c.last
}

// Save persists the settings document whole, the way it was fetched.
func (c *SettingsController) Save(ctx context.Context, token string, settings model.AppSettings) error {
	if err := c.client.Put(ctx, token, settingsPath, settingsEnvelope{Settings: settings}, nil); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
