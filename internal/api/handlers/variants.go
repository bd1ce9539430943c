package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// VariantsHandler exposes the last-known variant state of monitors.
type VariantsHandler struct {
	store store.Store
}

// NewVariantsHandler creates a new VariantsHandler.
func NewVariantsHandler(s store.Store) *VariantsHandler {
	return &VariantsHandler{store: s}
}

// ListVariantsInput is the input for listing a monitor's variants.
type ListVariantsInput struct {
	ID        string `path:"id"          doc:"Monitor id"`
	ProductID string `query:"product_id" doc:"Only return variants of this product"`
}

// ListVariantsOutput is the response for listing variants.
type ListVariantsOutput struct {
	Body []domain.PersistedVariant
}

// ListVariants returns the persisted variants recorded for a monitor.
func (h *VariantsHandler) ListVariants(
	ctx context.Context,
	input *ListVariantsInput,
) (*ListVariantsOutput, error) {
	if _, err := h.store.GetMonitor(ctx, input.ID); err != nil {
		return nil, storeError("getting monitor", err)
	}

	variants, err := h.store.ListVariants(ctx, input.ID, input.ProductID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing variants: " + err.Error())
	}

	if variants == nil {
		variants = []domain.PersistedVariant{}
	}

	return &ListVariantsOutput{Body: variants}, nil
}

// RegisterVariantRoutes registers variant endpoints with the Huma API.
func RegisterVariantRoutes(api huma.API, h *VariantsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-monitor-variants",
		Method:      http.MethodGet,
		Path:        "/api/v1/monitors/{id}/variants",
		Summary:     "List recorded variants",
		Description: "Returns the last-known price and availability of every variant the monitor has seen.",
		Tags:        []string{"variants"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.ListVariants)
}
