package client

import (
	"context"
	"net/url"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// monitorRequest contains only the fields the API accepts for create/update.
type monitorRequest struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	URL       string `json:"url"`
	Kind      string `json:"kind"`
	Query     string `json:"query,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Channel   string `json:"channel"`
	Transport string `json:"transport,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

func newMonitorRequest(m *domain.Monitor, withID bool) monitorRequest {
	enabled := m.Enabled
	req := monitorRequest{
		Name:      m.Name,
		URL:       m.URL,
		Kind:      string(m.Kind),
		Query:     m.Query,
		Currency:  m.Currency,
		Channel:   m.Channel,
		Transport: string(m.Transport),
		Enabled:   &enabled,
	}
	if withID {
		req.ID = m.ID
	}
	return req
}

// CheckAllResponse is the result of a manual check cycle.
type CheckAllResponse struct {
	Status  string                 `json:"status"`
	Results []engine.MonitorResult `json:"results"`
}

// ListMonitors returns all monitors, or only the enabled ones.
func (c *Client) ListMonitors(ctx context.Context, enabledOnly bool) ([]domain.Monitor, error) {
	path := "/api/v1/monitors"
	if enabledOnly {
		path += "?enabled=true"
	}

	var monitors []domain.Monitor
	if err := c.get(ctx, path, &monitors); err != nil {
		return nil, err
	}
	return monitors, nil
}

// GetMonitor returns a single monitor by id.
func (c *Client) GetMonitor(ctx context.Context, id string) (*domain.Monitor, error) {
	var m domain.Monitor
	if err := c.get(ctx, "/api/v1/monitors/"+url.PathEscape(id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMonitor creates a monitor. An empty id is generated by the server.
func (c *Client) CreateMonitor(ctx context.Context, m *domain.Monitor) (*domain.Monitor, error) {
	var created domain.Monitor
	if err := c.post(ctx, "/api/v1/monitors", newMonitorRequest(m, true), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMonitor replaces an existing monitor's configuration.
func (c *Client) UpdateMonitor(ctx context.Context, m *domain.Monitor) (*domain.Monitor, error) {
	var updated domain.Monitor
	path := "/api/v1/monitors/" + url.PathEscape(m.ID)
	if err := c.put(ctx, path, newMonitorRequest(m, false), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetMonitorEnabled enables or disables a monitor.
func (c *Client) SetMonitorEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return c.put(ctx, "/api/v1/monitors/"+url.PathEscape(id)+"/enabled", body, nil)
}

// DeleteMonitor deletes a monitor and its recorded variants.
func (c *Client) DeleteMonitor(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/monitors/"+url.PathEscape(id))
}

// ListVariants returns the variants recorded for a monitor, optionally for
// one product only.
func (c *Client) ListVariants(ctx context.Context, monitorID, productID string) ([]domain.PersistedVariant, error) {
	path := "/api/v1/monitors/" + url.PathEscape(monitorID) + "/variants"
	if productID != "" {
		path += "?product_id=" + url.QueryEscape(productID)
	}

	var variants []domain.PersistedVariant
	if err := c.get(ctx, path, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// CheckMonitor runs one monitor immediately.
func (c *Client) CheckMonitor(ctx context.Context, id string) (*engine.MonitorResult, error) {
	var res engine.MonitorResult
	if err := c.post(ctx, "/api/v1/monitors/"+url.PathEscape(id)+"/check", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckAll runs one check cycle over every enabled monitor.
func (c *Client) CheckAll(ctx context.Context) (*CheckAllResponse, error) {
	var resp CheckAllResponse
	if err := c.post(ctx, "/api/v1/check", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
