package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/CyberSolo/UDAM/internal/api/middleware"
	"github.com/CyberSolo/UDAM/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response",
			method: http.MethodGet,
			route:  "/api/v1/listings",
			target: "/api/v1/listings",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, []string{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records 404 response",
			method: http.MethodGet,
			route:  "/notfound",
			target: "/notfound",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "labels by route template",
			method: http.MethodPost,
			route:  "/api/v1/orders/:id/accept",
			target: "/api/v1/orders/abc-123/accept",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	ready := true
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	hit := func(path string) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	hit("/healthz")
	hit("/readyz")
	assert.InDelta(t, 1.0, ptestutil.ToFloat64(metrics.HealthyGauge), 0)
	assert.InDelta(t, 1.0, ptestutil.ToFloat64(metrics.ReadyGauge), 0)

	ready = false
	hit("/readyz")
	assert.InDelta(t, 0.0, ptestutil.ToFloat64(metrics.ReadyGauge), 0)

	assert.Zero(t, ptestutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/readyz", "200")),
		"health check paths are not counted as API requests")
}

func TestMetricsMiddleware_StatusFromErrors(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		route     string
		target    string
		handler   echo.HandlerFunc
		wantLabel string
		wantCode  int
	}{
		{
			name:   "echo error before write",
			method: http.MethodPost,
			route:  "/api/v1/orders/:id/cancel",
			target: "/api/v1/orders/o-1/cancel",
			handler: func(echo.Context) error {
				return echo.NewHTTPError(http.StatusConflict, "busy")
			},
			wantLabel: "/api/v1/orders/:id/cancel",
			wantCode:  http.StatusConflict,
		},
		{
			name:   "plain error before write",
			method: http.MethodPost,
			route:  "/api/v1/orders/:id/complete",
			target: "/api/v1/orders/o-1/complete",
			handler: func(echo.Context) error {
				return errors.New("boom")
			},
			wantLabel: "/api/v1/orders/:id/complete",
			wantCode:  http.StatusInternalServerError,
		},
		{
			name:      "unknown path collapses to one label",
			method:    http.MethodGet,
			target:    "/wp-admin/setup.php",
			wantLabel: "unmatched",
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			if tt.route != "" {
				e.Add(tt.method, tt.route, tt.handler)
			}

			counter := metrics.HTTPRequestsTotal.WithLabelValues(
				tt.method, tt.wantLabel, strconv.Itoa(tt.wantCode),
			)
			before := ptestutil.ToFloat64(counter)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.InDelta(t, before+1, ptestutil.ToFloat64(counter), 0)
			assert.Zero(t, ptestutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
				tt.method, tt.target, strconv.Itoa(tt.wantCode),
			)), "raw URLs are never used as labels")
		})
	}
}

func TestMetricsMiddleware_SkipsDocs(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/swagger/index.html", func(c echo.Context) error {
		return c.HTML(http.StatusOK, "<html></html>")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Zero(t, ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/swagger/index.html", "200"),
	))
}
