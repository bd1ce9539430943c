package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CyclesRate plots completed check cycles per hour. At the default 5m
// interval a healthy monitor sits at 12.
func CyclesRate() *timeseries.PanelBuilder {
	return series("Cycles / hour", "Completed check cycles per hour", ThirdWidth).
		WithTarget(query(`wcm:check_cycles:rate5m * 3600`, "cycles/h", "A"))
}

func CycleDuration() *timeseries.PanelBuilder {
	return series("Cycle Duration (p95)", "95th percentile check cycle duration", ThirdWidth).
		WithTarget(query(quantile("0.95", "wcm_check_cycle_duration_seconds", ""), "p95", "A")).
		Unit("s")
}

// MonitorChecks plots monitor checks per minute split by result.
func MonitorChecks() *timeseries.PanelBuilder {
	return series("Monitor Checks / min", "Monitor checks per minute by result", ThirdWidth).
		WithTarget(query(
			`sum(rate(`+ofJob("wcm_monitor_checks_total")+`[5m])) by (result) * 60`,
			"{{result}}", "A",
		))
}

// ProductFailures plots failed product checks per minute by the stage that
// failed (fetch, parse, store).
func ProductFailures() *timeseries.PanelBuilder {
	return series("Product Failures / min", "Failed product checks per minute by stage", TSWidth).
		WithTarget(query(`wcm:product_check_failures:rate5m * 60`, "{{stage}}", "A")).
		Thresholds(warnAt(0.1, 1))
}

// ProductClassifications plots product checks per minute by how the product
// compared with its stored snapshot.
func ProductClassifications() *timeseries.PanelBuilder {
	return series("Product Checks / min",
		"Product checks per minute by classification (unchanged, update, new, error)", TSWidth).
		WithTarget(query(
			`sum(rate(`+ofJob("wcm_product_checks_total")+`[5m])) by (classification) * 60`,
			"{{classification}}", "A",
		))
}
