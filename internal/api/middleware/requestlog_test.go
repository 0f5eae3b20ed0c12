package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/orders",
			status: http.StatusOK,
			wantLogFields: []string{
				"method=GET",
				"path=/api/v1/orders",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "logs POST request",
			method: http.MethodPost,
			path:   "/api/v1/orders",
			status: http.StatusCreated,
			wantLogFields: []string{
				"method=POST",
				"status=201",
			},
		},
		{
			name:          "uses provided request ID",
			method:        http.MethodGet,
			path:          "/test",
			status:        http.StatusOK,
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{
				"request_id=custom-req-id-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestLog(logger)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			err := handler(c)
			require.NoError(t, err)

			logOutput := buf.String()
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			// Response should have the request ID header.
			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)

			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}

			// Context should have request_id.
			assert.Equal(t, respID, RequestID(c))
		})
	}
}

func TestRequestLog_HealthCheckSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		statuses []int
		wantLogs int
		wantWarn bool
	}{
		{name: "healthz logs first success only", path: "/healthz", statuses: []int{200, 200, 200}, wantLogs: 1},
		{name: "healthz failures always log", path: "/healthz", statuses: []int{503, 503}, wantLogs: 2, wantWarn: true},
		{name: "readyz failure after success logs", path: "/readyz", statuses: []int{200, 200, 503}, wantLogs: 2, wantWarn: true},
		{name: "api paths always log", path: "/api/v1/listings", statuses: []int{200, 200, 200}, wantLogs: 3},
		{name: "server error logs at warn", path: "/api/v1/orders", statuses: []int{500}, wantLogs: 1, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			mw := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))
			e := echo.New()

			for _, status := range tt.statuses {
				c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, http.NoBody), httptest.NewRecorder())
				require.NoError(t, mw(func(c echo.Context) error { return c.NoContent(status) })(c))
			}

			out := buf.String()
			assert.Equal(t, tt.wantLogs, strings.Count(out, "msg=request"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "level=WARN"))
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	assert.Empty(t, RequestID(c), "no id before RequestLog runs")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens", http.NoBody)
	req.Header.Set(requestIDHeader, "rid-7")
	c = e.NewContext(req, httptest.NewRecorder())

	var seen string
	handler := RequestLog(slog.New(slog.DiscardHandler))(func(c echo.Context) error {
		seen = RequestID(c)
		return nil
	})
	require.NoError(t, handler(c))
	assert.Equal(t, "rid-7", seen)
}
