package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/joshlee247/woocommerce-discord-monitor/internal/api/middleware"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
)

// requestCount reads wcm_http_requests_total for one label set.
func requestCount(method, route string, status int) float64 {
	return testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)))
}

func TestMetricsMiddleware_CountsByStatus(t *testing.T) {
	tests := []struct {
		name   string
		method string
		route  string
		status int
	}{
		{name: "list monitors", method: http.MethodGet, route: "/api/v1/monitors", status: http.StatusOK},
		{name: "manual check accepted", method: http.MethodPost, route: "/api/v1/check", status: http.StatusAccepted},
		{name: "validation failure", method: http.MethodPost, route: "/api/v1/monitors", status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			before := requestCount(tt.method, tt.route, tt.status)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.route, http.NoBody))

			require.Equal(t, tt.status, rec.Code)
			assert.InDelta(t, 1, requestCount(tt.method, tt.route, tt.status)-before, 0)
			assert.Positive(t, testutil.CollectAndCount(metrics.HTTPRequestDuration))
		})
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsMiddleware_RouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/api/v1/monitors/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	before := requestCount(http.MethodGet, "/api/v1/monitors/:id", http.StatusOK)

	for _, id := range []string{"m1", "m2", "m3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/monitors/"+id, http.NoBody)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.InDelta(t, 3, requestCount(http.MethodGet, "/api/v1/monitors/:id", http.StatusOK)-before, 0)
}

func TestMetricsMiddleware_ErrorStatusRecorded(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/api/v1/boom", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	before := requestCount(http.MethodGet, "/api/v1/boom", http.StatusBadGateway)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boom", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	assert.InDelta(t, 1, requestCount(http.MethodGet, "/api/v1/boom", http.StatusBadGateway)-before, 0)
}

func TestMetricsMiddleware_ProbeGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	ready := true
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReadyzUp), 0)

	ready = false
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.ReadyzUp), 0)
}
