package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// StorefrontRequests plots storefront page fetches per second by response
// status.
func StorefrontRequests() *timeseries.PanelBuilder {
	return series("Storefront Requests", "Storefront page fetches per second by status", TSWidth).
		WithTarget(query(`wcm:storefront_requests:rate5m`, "{{status}}", "A")).
		Unit("reqps")
}

func StorefrontLatency() *timeseries.PanelBuilder {
	return series("Storefront Latency (p95)", "95th percentile storefront fetch duration by page type", TSWidth).
		WithTarget(query(quantile("0.95", "wcm_storefront_request_duration_seconds", "page"), "{{page}}", "A")).
		Unit("s").
		Thresholds(warnAt(5, 15))
}
