package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate plots API requests per second from the recording rule.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "HTTP requests per second", ThirdWidth).
		WithTarget(query(`wcm:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps")
}

// LatencyPercentiles plots p50, p95 and p99 of API request duration.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const metric = "wcm_http_request_duration_seconds"
	return series("Latency Percentiles", "HTTP request duration percentiles", ThirdWidth).
		WithTarget(query(quantile("0.50", metric, ""), "p50", "A")).
		WithTarget(query(quantile("0.95", metric, ""), "p95", "B")).
		WithTarget(query(quantile("0.99", metric, ""), "p99", "C")).
		Unit("s")
}

// ErrorRate plots 5xx responses as a share of all API requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx error rate as percentage of total requests", ThirdWidth).
		WithTarget(query(`wcm:http_errors:rate5m / wcm:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(warnAt(1, 5)).
		ColorScheme(colorMode(dashboard.FieldColorModeIdThresholds))
}

func PanicsStat() *stat.PanelBuilder {
	return single("Panics (24h)", "Handler panics recovered by the HTTP middleware",
		increase24h("wcm_http_panics_total"), FullWidth, StatHeight).
		Thresholds(warnAt(1, 5))
}
