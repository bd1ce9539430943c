package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/api/handlers/mocks"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/config"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	mc := mocks.NewMockChecker(t)
	mc.EXPECT().
		CheckMonitor(mock.Anything, "matcha").
		Return(&engine.MonitorResult{MonitorID: "matcha", Kind: "collection", Products: 2}, nil).
		Once()

	e := newServer(&config.ServerConfig{}, store.NewMemoryStore(), mc, quietLogger())

	rec := serve(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(e, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodPost, "/api/v1/monitors",
		`{"id":"matcha","url":"https://shop.example/product-category/matcha/","kind":"collection","channel":"123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/v1/monitors/matcha", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":"USD"`)

	rec = serve(e, http.MethodGet, "/api/v1/monitors/matcha/variants", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `[]`)

	rec = serve(e, http.MethodPost, "/api/v1/monitors/matcha/check", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"products":2`)

	rec = serve(e, http.MethodDelete, "/api/v1/monitors/matcha", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(e, http.MethodGet, "/api/v1/monitors/matcha", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wcm_http_requests_total")

	rec = serve(e, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "create-monitor")
}

func TestNewRouter_UnconfiguredTransportsDoNotFail(t *testing.T) {
	t.Parallel()

	r := newRouter(&config.NotificationsConfig{}, quietLogger())
	require.NotNil(t, r)
}

func TestWriteMonitorTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeMonitorTable(&buf, nil))
	assert.Contains(t, buf.String(), "TRANSPORT")
}

func TestWriteResultsTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeResultsTable(&buf, []engine.MonitorResult{
		{MonitorID: "m1", Kind: "search", Products: 4, New: 1, Notified: 1},
		{MonitorID: "m2", Kind: "product", Failed: 1, Error: "fetching https://shop.example/p/: timeout"},
		{MonitorID: "m3", Kind: "collection", Skipped: true},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "m1")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[1]), "-"))
	assert.Contains(t, lines[2], "timeout")
	assert.Contains(t, lines[3], "already running")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "short", max: 10, want: "short"},
		{in: "exactly-ten", max: 11, want: "exactly-ten"},
		{in: "a long product title", max: 10, want: "a long ..."},
		{in: "抹茶抹茶抹茶抹茶", max: 5, want: "抹茶..."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}
