package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/config"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// MonitorsHandler handles Monitor CRUD operations.
type MonitorsHandler struct {
	store store.Store
}

// NewMonitorsHandler creates a new MonitorsHandler.
func NewMonitorsHandler(s store.Store) *MonitorsHandler {
	return &MonitorsHandler{store: s}
}

// --- Input/Output types ---

// MonitorBody is the writable part of a monitor.
type MonitorBody struct {
	ID        string `json:"id,omitempty"        doc:"Monitor id (generated when empty on create)"`
	Name      string `json:"name,omitempty"      doc:"Display name"`
	URL       string `json:"url"                 doc:"Storefront product, collection or shop URL" example:"https://shop.example/product-category/matcha/"`
	Kind      string `json:"kind"                doc:"Monitor kind"                               enum:"product,collection,search"`
	Query     string `json:"query,omitempty"     doc:"Search terms (search monitors only)"`
	Currency  string `json:"currency,omitempty"  doc:"ISO 4217 display currency (default USD)"    example:"USD"`
	Channel   string `json:"channel"             doc:"Channel id, webhook URL, chat id or email"  minLength:"1"`
	Transport string `json:"transport,omitempty" doc:"Notification transport (default discord)"   enum:"discord,telegram,email"`
	Enabled   *bool  `json:"enabled,omitempty"   doc:"Whether the monitor is polled (default true)"`
}

// ListMonitorsInput is the input for listing monitors.
type ListMonitorsInput struct {
	Enabled bool `query:"enabled" doc:"Only return enabled monitors"`
}

// ListMonitorsOutput is the response for listing monitors.
type ListMonitorsOutput struct {
	Body []domain.Monitor
}

// MonitorIDInput addresses a single monitor.
type MonitorIDInput struct {
	ID string `path:"id" doc:"Monitor id"`
}

// MonitorOutput is the response for a single monitor.
type MonitorOutput struct {
	Body domain.Monitor
}

// CreateMonitorInput is the input for creating a monitor.
type CreateMonitorInput struct {
	Body MonitorBody
}

// UpdateMonitorInput is the input for replacing a monitor.
type UpdateMonitorInput struct {
	ID   string `path:"id" doc:"Monitor id"`
	Body MonitorBody
}

// SetEnabledInput is the input for enabling or disabling a monitor.
type SetEnabledInput struct {
	ID   string `path:"id" doc:"Monitor id"`
	Body struct {
		Enabled bool `json:"enabled" example:"true" doc:"Enabled status"`
	}
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// --- Handlers ---

// ListMonitors returns all monitors, optionally only the enabled ones.
func (h *MonitorsHandler) ListMonitors(
	ctx context.Context,
	input *ListMonitorsInput,
) (*ListMonitorsOutput, error) {
	monitors, err := h.store.ListMonitors(ctx, input.Enabled)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing monitors: " + err.Error())
	}

	if monitors == nil {
		monitors = []domain.Monitor{}
	}

	return &ListMonitorsOutput{Body: monitors}, nil
}

// GetMonitor returns a single monitor.
func (h *MonitorsHandler) GetMonitor(
	ctx context.Context,
	input *MonitorIDInput,
) (*MonitorOutput, error) {
	m, err := h.store.GetMonitor(ctx, input.ID)
	if err != nil {
		return nil, storeError("getting monitor", err)
	}

	return &MonitorOutput{Body: *m}, nil
}

// CreateMonitor validates and stores a new monitor.
func (h *MonitorsHandler) CreateMonitor(
	ctx context.Context,
	input *CreateMonitorInput,
) (*MonitorOutput, error) {
	m, err := toMonitor(&input.Body)
	if err != nil {
		return nil, err
	}

	if err := h.store.CreateMonitor(ctx, m); err != nil {
		return nil, storeError("creating monitor", err)
	}

	return &MonitorOutput{Body: *m}, nil
}

// UpdateMonitor replaces the configuration of an existing monitor.
func (h *MonitorsHandler) UpdateMonitor(
	ctx context.Context,
	input *UpdateMonitorInput,
) (*MonitorOutput, error) {
	input.Body.ID = input.ID
	m, err := toMonitor(&input.Body)
	if err != nil {
		return nil, err
	}

	if err := h.store.UpdateMonitor(ctx, m); err != nil {
		return nil, storeError("updating monitor", err)
	}

	updated, err := h.store.GetMonitor(ctx, input.ID)
	if err != nil {
		return nil, storeError("getting monitor", err)
	}

	return &MonitorOutput{Body: *updated}, nil
}

// SetEnabled enables or disables a monitor.
func (h *MonitorsHandler) SetEnabled(
	ctx context.Context,
	input *SetEnabledInput,
) (*StatusOutput, error) {
	if err := h.store.SetMonitorEnabled(ctx, input.ID, input.Body.Enabled); err != nil {
		return nil, storeError("setting monitor enabled", err)
	}

	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// DeleteMonitor removes a monitor and its recorded variants.
func (h *MonitorsHandler) DeleteMonitor(
	ctx context.Context,
	input *MonitorIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteMonitor(ctx, input.ID); err != nil {
		return nil, storeError("deleting monitor", err)
	}

	return nil, nil
}

// toMonitor validates a request body with the same rules as monitors
// declared in the config file.
func toMonitor(b *MonitorBody) (*domain.Monitor, error) {
	mc := config.MonitorConfig{
		ID:        b.ID,
		Name:      b.Name,
		URL:       b.URL,
		Kind:      b.Kind,
		Query:     b.Query,
		Currency:  b.Currency,
		Channel:   b.Channel,
		Transport: b.Transport,
		Enabled:   b.Enabled,
	}

	if err := config.ValidateMonitor(&mc); err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid monitor", err)
	}

	m := mc.ToDomain()
	return &m, nil
}

// storeError maps store sentinel errors to HTTP errors.
func storeError(action string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("monitor not found")
	case errors.Is(err, store.ErrDuplicateKey):
		return huma.Error409Conflict("monitor already exists")
	default:
		return huma.Error500InternalServerError(action + ": " + err.Error())
	}
}

// RegisterMonitorRoutes registers monitor endpoints with the Huma API.
func RegisterMonitorRoutes(api huma.API, h *MonitorsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-monitors",
		Method:      http.MethodGet,
		Path:        "/api/v1/monitors",
		Summary:     "List monitors",
		Description: "Returns all monitors, optionally filtered to enabled ones.",
		Tags:        []string{"monitors"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListMonitors)

	huma.Register(api, huma.Operation{
		OperationID:   "create-monitor",
		Method:        http.MethodPost,
		Path:          "/api/v1/monitors",
		Summary:       "Create a monitor",
		Description:   "Creates a product, collection or search monitor.",
		Tags:          []string{"monitors"},
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.CreateMonitor)

	huma.Register(api, huma.Operation{
		OperationID: "get-monitor",
		Method:      http.MethodGet,
		Path:        "/api/v1/monitors/{id}",
		Summary:     "Get a monitor",
		Description: "Returns a single monitor by id.",
		Tags:        []string{"monitors"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetMonitor)

	huma.Register(api, huma.Operation{
		OperationID: "update-monitor",
		Method:      http.MethodPut,
		Path:        "/api/v1/monitors/{id}",
		Summary:     "Update a monitor",
		Description: "Replaces the configuration of an existing monitor.",
		Tags:        []string{"monitors"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.UpdateMonitor)

	huma.Register(api, huma.Operation{
		OperationID: "set-monitor-enabled",
		Method:      http.MethodPut,
		Path:        "/api/v1/monitors/{id}/enabled",
		Summary:     "Enable or disable a monitor",
		Description: "Sets whether the monitor is polled by the scheduler.",
		Tags:        []string{"monitors"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.SetEnabled)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-monitor",
		Method:        http.MethodDelete,
		Path:          "/api/v1/monitors/{id}",
		Summary:       "Delete a monitor",
		Description:   "Deletes a monitor and every variant recorded under it.",
		Tags:          []string{"monitors"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.DeleteMonitor)
}
