package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		incomingID string
		want       []string
	}{
		{
			name:   "generates a request id",
			method: http.MethodGet,
			path:   "/api/v1/monitors",
			status: http.StatusOK,
			want: []string{
				"level=INFO",
				"msg=request",
				"method=GET",
				"path=/api/v1/monitors",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:       "keeps the caller's request id",
			method:     http.MethodPost,
			path:       "/api/v1/check",
			status:     http.StatusOK,
			incomingID: "cycle-7",
			want:       []string{"method=POST", "request_id=cycle-7"},
		},
		{
			name:   "client errors log at warn",
			method: http.MethodPost,
			path:   "/api/v1/monitors",
			status: http.StatusUnprocessableEntity,
			want:   []string{"level=WARN", "status=422"},
		},
		{
			name:   "server errors log at error",
			method: http.MethodDelete,
			path:   "/api/v1/monitors/m1",
			status: http.StatusInternalServerError,
			want:   []string{"level=ERROR", "status=500"},
		},
		{
			name:   "failing probes log at warn",
			method: http.MethodGet,
			path:   "/readyz",
			status: http.StatusServiceUnavailable,
			want:   []string{"level=WARN", "path=/readyz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.incomingID != "" {
				req.Header.Set(requestIDHeader, tt.incomingID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			for _, field := range tt.want {
				assert.Contains(t, buf.String(), field)
			}

			respID := rec.Header().Get(requestIDHeader)
			require.NotEmpty(t, respID)
			assert.Equal(t, respID, c.Get("request_id"))
			if tt.incomingID != "" {
				assert.Equal(t, tt.incomingID, respID)
			}
		})
	}
}

func TestRequestLog_ProbeSuppression(t *testing.T) {
	t.Parallel()

	// Each step is one request; wantLogged is whether it adds a log line.
	type step struct {
		status     int
		wantLogged bool
	}

	tests := []struct {
		name  string
		path  string
		steps []step
	}{
		{
			name: "healthz logs only its first success",
			path: "/healthz",
			steps: []step{
				{http.StatusOK, true},
				{http.StatusOK, false},
				{http.StatusOK, false},
			},
		},
		{
			name: "readyz failures are always logged",
			path: "/readyz",
			steps: []step{
				{http.StatusServiceUnavailable, true},
				{http.StatusServiceUnavailable, true},
			},
		},
		{
			name: "failure after quiet successes is logged",
			path: "/readyz",
			steps: []step{
				{http.StatusOK, true},
				{http.StatusOK, false},
				{http.StatusServiceUnavailable, true},
				{http.StatusOK, false},
			},
		},
		{
			name: "api paths are never suppressed",
			path: "/api/v1/monitors",
			steps: []step{
				{http.StatusOK, true},
				{http.StatusOK, true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()
			mw := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))

			lines := 0
			for i, s := range tt.steps {
				handler := mw(func(c echo.Context) error {
					return c.NoContent(s.status)
				})
				req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
				require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

				got := strings.Count(buf.String(), "msg=request")
				if s.wantLogged {
					lines++
				}
				assert.Equal(t, lines, got, "after request %d", i+1)
			}
		})
	}
}

func TestRequestLog_ReturnsHandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := echo.New()
	wantErr := errors.New("boom")

	handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(echo.Context) error {
		return wantErr
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitors", http.NoBody)
	err := handler(e.NewContext(req, httptest.NewRecorder()))

	require.ErrorIs(t, err, wantErr)
	assert.Contains(t, buf.String(), "msg=request")
}
