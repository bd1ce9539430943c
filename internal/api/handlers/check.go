package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
)

// Checker runs monitor checks on demand.
type Checker interface {
	RunAll(ctx context.Context) ([]engine.MonitorResult, error)
	CheckMonitor(ctx context.Context, id string) (*engine.MonitorResult, error)
}

// CheckHandler handles manual check trigger requests.
type CheckHandler struct {
	checker Checker
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(c Checker) *CheckHandler {
	return &CheckHandler{checker: c}
}

// CheckAllOutput is the response body for a full check cycle.
type CheckAllOutput struct {
	Body struct {
		Status  string                 `json:"status"  example:"check completed" doc:"Cycle status"`
		Results []engine.MonitorResult `json:"results"                           doc:"Per-monitor results"`
	}
}

// CheckMonitorOutput is the response body for a single monitor check.
type CheckMonitorOutput struct {
	Body engine.MonitorResult
}

// CheckAll runs one check cycle over every enabled monitor. Monitors that
// fail are reported in their result rather than failing the request.
func (h *CheckHandler) CheckAll(ctx context.Context, _ *struct{}) (*CheckAllOutput, error) {
	results, err := h.checker.RunAll(ctx)
	if err != nil && results == nil {
		return nil, huma.Error500InternalServerError("check failed: " + err.Error())
	}

	resp := &CheckAllOutput{}
	resp.Body.Status = "check completed"
	if err != nil {
		resp.Body.Status = "check completed with errors"
	}
	resp.Body.Results = results
	if resp.Body.Results == nil {
		resp.Body.Results = []engine.MonitorResult{}
	}
	return resp, nil
}

// CheckMonitor runs one monitor immediately, enabled or not. It answers 409
// while a scheduled or manual check of the same monitor is still running.
func (h *CheckHandler) CheckMonitor(ctx context.Context, input *MonitorIDInput) (*CheckMonitorOutput, error) {
	res, err := h.checker.CheckMonitor(ctx, input.ID)
	if errors.Is(err, engine.ErrCheckInProgress) {
		return nil, huma.Error409Conflict("a check of this monitor is already running")
	}
	if res == nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("monitor not found")
		}
		return nil, huma.Error500InternalServerError("check failed: " + errString(err))
	}

	return &CheckMonitorOutput{Body: *res}, nil
}

func errString(err error) string {
	if err == nil {
		return "no result"
	}
	return err.Error()
}

// RegisterCheckRoutes registers check trigger endpoints with the Huma API.
func RegisterCheckRoutes(api huma.API, h *CheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "check-all",
		Method:      http.MethodPost,
		Path:        "/api/v1/check",
		Summary:     "Check all monitors now",
		Description: "Runs one check cycle over every enabled monitor: fetch, detect changes, and notify.",
		Tags:        []string{"check"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.CheckAll)

	huma.Register(api, huma.Operation{
		OperationID: "check-monitor",
		Method:      http.MethodPost,
		Path:        "/api/v1/monitors/{id}/check",
		Summary:     "Check one monitor now",
		Description: "Runs a single monitor immediately, whether or not it is enabled.",
		Tags:        []string{"check"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError},
	}, h.CheckMonitor)
}
