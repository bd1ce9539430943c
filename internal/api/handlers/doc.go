// Package handlers implements the HTTP API of the WooCommerce monitor as
// Huma operations.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok" doc:"Status message"`
}
