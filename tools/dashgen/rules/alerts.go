package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// wc-monitor operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("wcm-alerts",
		RuleGroup{
			Name: "wcm-alerts",
			Rules: []Rule{
				{
					Alert: "WcmDown",
					Expr:  `absent(up{job="wc-monitor"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "WooCommerce monitor is down",
						"description": "The wc-monitor job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "WcmReadinessDown",
					Expr:  `wcm_readyz_up == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "WooCommerce monitor readiness check is failing",
						"description": "The store behind wc-monitor has been unreachable for more than 2 minutes.",
					},
				},
				{
					Alert: "WcmHighErrorRate",
					Expr:  `wcm:http_errors:rate5m / wcm:http_requests:rate5m > 0.05`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "High HTTP error rate on the WooCommerce monitor API",
						"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
					},
				},
				{
					Alert: "WcmCyclesStalled",
					Expr:  `time() - wcm_last_cycle_timestamp_seconds > 1800`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "No check cycle has completed in 30 minutes",
						"description": "The scheduler has not finished a check cycle for more than 30 minutes. Restocks are not being detected.",
					},
				},
				{
					Alert: "WcmStorefrontErrors",
					Expr:  `wcm:storefront_errors:rate5m / sum(wcm:storefront_requests:rate5m) > 0.5`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Most storefront fetches are failing",
						"description": "More than half of storefront page requests have failed for 15 minutes. A shop may be blocking the monitor or down.",
					},
				},
				{
					Alert: "WcmProductCheckFailures",
					Expr:  `sum(wcm:product_check_failures:rate5m) > 0`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Product checks are failing",
						"description": "Product checks have been failing continuously for 15 minutes.",
					},
				},
				{
					Alert: "WcmNotificationFailures",
					Expr:  `increase(wcm_notification_failures_total[5m]) > 0`,
					For:   "1m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Notification delivery failures detected",
						"description": "One or more change notifications have failed to send.",
					},
				},
			},
		},
	)
}
