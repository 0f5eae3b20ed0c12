// Package middleware provides Echo middleware for the UDAM API server.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/CyberSolo/UDAM/internal/metrics"
)

// unmatchedRoute is the path label for requests no route answered, so
// scanners trying arbitrary URLs cannot grow the series count.
const unmatchedRoute = "unmatched"

// docsPrefix covers the OpenAPI documents and the Swagger UI.
const docsPrefix = "/swagger"

// metricsSkipPaths defines URL paths excluded from HTTP request metrics.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// healthGauges maps health check paths to their 0/1 gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthyGauge,
	"/readyz":  metrics.ReadyGauge,
}

// Metrics returns Echo middleware that records request duration and status
// by route template, so /api/v1/orders/{id} is one series regardless of id.
// Status comes from the handler's error when it returned one without
// writing a response. Health check and scrape paths only update their health
// gauges; documentation requests are not recorded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			urlPath := c.Request().URL.Path

			if _, skip := metricsSkipPaths[urlPath]; skip {
				err := next(c)
				updateHealthGauge(urlPath, responseStatus(c, err))
				return err
			}
			if strings.HasPrefix(urlPath, docsPrefix) {
				return next(c)
			}

			route := c.Path()
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := responseStatus(c, err)
			if route == "" || errors.Is(err, echo.ErrNotFound) {
				route = unmatchedRoute
			}
			code := strconv.Itoa(status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, code).
				Observe(duration)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, code).
				Inc()

			return err
		}
	}
}

// responseStatus is the status the client will see. An error returned
// before anything was written is rendered later by Echo's error handler.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
