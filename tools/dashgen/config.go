package main

import "errors"

// KnownMetrics is the set of metric names exported by wc-monitor plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"wcm_http_request_duration_seconds": true,
	"wcm_http_requests_total":           true,
	"wcm_http_panics_total":             true,

	// Health metrics.
	"wcm_healthz_up": true,
	"wcm_readyz_up":  true,

	// Check cycle metrics.
	"wcm_check_cycles_total":           true,
	"wcm_check_cycle_duration_seconds": true,
	"wcm_monitor_checks_total":         true,
	"wcm_product_checks_total":         true,
	"wcm_product_check_failures_total": true,

	// Variant metrics.
	"wcm_variants_new_total":     true,
	"wcm_variants_updated_total": true,
	"wcm_variants_pruned_total":  true,
	"wcm_malformed_prices_total": true,

	// Storefront metrics.
	"wcm_storefront_requests_total":           true,
	"wcm_storefront_request_duration_seconds": true,

	// Notification metrics.
	"wcm_notifications_sent_total":      true,
	"wcm_notification_failures_total":   true,
	"wcm_notification_duration_seconds": true,

	// System state metrics.
	"wcm_monitors_enabled":             true,
	"wcm_last_cycle_timestamp_seconds": true,

	// Recording rules.
	"wcm:http_requests:rate5m":          true,
	"wcm:http_errors:rate5m":            true,
	"wcm:check_cycles:rate5m":           true,
	"wcm:product_check_failures:rate5m": true,
	"wcm:storefront_requests:rate5m":    true,
	"wcm:storefront_errors:rate5m":      true,
	"wcm:notification_failures:rate5m":  true,
	"wcm:notification_duration:p95_5m":  true,

	// Standard Prometheus metrics referenced in alerts.
	"up": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
