package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// readyTimeout bounds the datastore ping behind /readyz.
const readyTimeout = 2 * time.Second

// ReadyResponse is the /readyz body. Error is set only when not ready.
type ReadyResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Error  string `json:"error,omitempty"`
}

// HealthHandler serves the liveness and readiness checks.
type HealthHandler struct {
	pinger  Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler whose readiness follows p.
func NewHealthHandler(p Pinger) *HealthHandler {
	return &HealthHandler{pinger: p, timeout: readyTimeout}
}

// Healthz returns 200 while the process is serving.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when the datastore answers a ping within the timeout
// and 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status: "unavailable",
			Store:  "down",
			Error:  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Store: "up"})
}
