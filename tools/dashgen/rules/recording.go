package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("wcm-recording-rules",
		RuleGroup{
			Name: "wcm-recording",
			Rules: []Rule{
				{
					Record: "wcm:http_requests:rate5m",
					Expr:   `sum(rate(wcm_http_requests_total[5m]))`,
				},
				{
					Record: "wcm:http_errors:rate5m",
					Expr:   `sum(rate(wcm_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "wcm:check_cycles:rate5m",
					Expr:   `sum(rate(wcm_check_cycles_total[5m]))`,
				},
				{
					Record: "wcm:product_check_failures:rate5m",
					Expr:   `sum(rate(wcm_product_check_failures_total[5m])) by (stage)`,
				},
				{
					Record: "wcm:storefront_requests:rate5m",
					Expr:   `sum(rate(wcm_storefront_requests_total[5m])) by (status)`,
				},
				{
					Record: "wcm:storefront_errors:rate5m",
					Expr:   `sum(rate(wcm_storefront_requests_total{status!~"2.."}[5m]))`,
				},
				{
					Record: "wcm:notification_failures:rate5m",
					Expr:   `sum(rate(wcm_notification_failures_total[5m])) by (transport)`,
				},
				{
					Record: "wcm:notification_duration:p95_5m",
					Expr:   `histogram_quantile(0.95, sum(rate(wcm_notification_duration_seconds_bucket[5m])) by (le, transport))`,
				},
			},
		},
	)
}
