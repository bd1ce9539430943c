// Package middleware provides Echo middleware for the monitor API server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
)

// unmeteredRoutes never produce request series. Scrapes, probes and the
// generated docs would otherwise dominate the latency histogram.
var unmeteredRoutes = map[string]bool{
	"/metrics":      true,
	"/healthz":      true,
	"/readyz":       true,
	"/docs":         true,
	"/openapi.json": true,
	"/openapi.yaml": true,
}

// probeGauges flip between 1 and 0 on every probe response.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics records wcm_http_request_duration_seconds and
// wcm_http_requests_total per route template, so /api/v1/monitors/:id stays a
// single series regardless of id.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeLabel(c)

			if unmeteredRoutes[route] {
				err := next(c)
				recordProbe(route, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo write the error so the recorded status is the real one.
				c.Error(err)
			}
			observeRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return err
		}
	}
}

func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func observeRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	metrics.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	metrics.HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}

func recordProbe(route string, status int) {
	g, ok := probeGauges[route]
	if !ok {
		return
	}
	up := 0.0
	if status/100 == 2 {
		up = 1
	}
	g.Set(up)
}
