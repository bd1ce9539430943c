package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate plots delivered notifications per hour by transport.
func NotificationsRate() *timeseries.PanelBuilder {
	return series("Notifications / hour", "Delivered notifications per hour by transport", ThirdWidth).
		WithTarget(query(
			`sum(rate(`+ofJob("wcm_notifications_sent_total")+`[1h])) by (transport) * 3600`,
			"{{transport}}", "A",
		))
}

// NotificationLatency reads the p95 recording rule, so it shows nothing
// until rules are loaded.
func NotificationLatency() *timeseries.PanelBuilder {
	return series("Notification Latency (p95)", "95th percentile delivery latency by transport", ThirdWidth).
		WithTarget(query(`wcm:notification_duration:p95_5m`, "{{transport}}", "A")).
		Unit("s").
		Thresholds(warnAt(1, 5))
}

func NotificationFailures() *stat.PanelBuilder {
	return single("Notification Failures (24h)", "Failed notification deliveries in the last 24 hours",
		increase24h("wcm_notification_failures_total"), ThirdWidth, TSHeight).
		Thresholds(warnAt(1, 5)).
		GraphMode(common.BigValueGraphModeArea)
}
