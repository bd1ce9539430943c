// Package metrics defines Prometheus metrics for the WooCommerce monitor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wcm"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of panics recovered in HTTP handlers.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Check cycle metrics.
var (
	CheckCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "check_cycles_total",
		Help:      "Total number of completed check cycles over all monitors.",
	})

	CheckCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "check_cycle_duration_seconds",
		Help:      "Duration of check cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	MonitorChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "monitor_checks_total",
		Help:      "Total monitor checks by kind and result.",
	}, []string{"kind", "result"})

	ProductChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_checks_total",
		Help:      "Total product checks by classification (unchanged, update, new, error).",
	}, []string{"classification"})

	ProductCheckFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_check_failures_total",
		Help:      "Total failed product checks by stage (fetch, detect, prune, compose, dispatch).",
	}, []string{"stage"})
)

// Variant metrics.
var (
	VariantsNewTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "variants_new_total",
		Help:      "Total variants seen for the first time.",
	})

	VariantsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "variants_updated_total",
		Help:      "Total variants whose price or availability changed.",
	})

	VariantsPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "variants_pruned_total",
		Help:      "Total persisted variants removed because they disappeared from the storefront.",
	})

	MalformedPricesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_prices_total",
		Help:      "Total variants skipped because a price could not be normalized.",
	})
)

// Storefront metrics.
var (
	StorefrontRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storefront_requests_total",
		Help:      "Total storefront page requests by page type and status.",
	}, []string{"page", "status"})

	StorefrontRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "storefront_request_duration_seconds",
		Help:      "Duration of storefront page requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"page"})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total notifications delivered by transport.",
	}, []string{"transport"})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total failed notification deliveries by transport.",
	}, []string{"transport"})

	NotificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"transport"})
)

// System state metrics.
var (
	MonitorsEnabled = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "monitors_enabled",
		Help:      "Number of enabled monitors at the start of the last cycle.",
	})

	LastCycleTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_cycle_timestamp_seconds",
		Help:      "Unix timestamp of the last completed check cycle.",
	})
)
