package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/engine"
)

func TestAdminHandler_ExpireWindows(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	s.mp.EXPECT().ExpireWindows(mock.Anything).
		Return(engine.SweepResult{Scanned: 3, Completed: 2, Resolved: 1}, nil).Once()
	s.mp.EXPECT().ExpireWindows(mock.Anything).
		Return(engine.SweepResult{}, errors.New("store unavailable")).Once()

	resp := s.api.Post("/api/v1/admin/windows/expire", asAdmin()...)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"completed":2`)

	resp = s.api.Post("/api/v1/admin/windows/expire", asAdmin()...)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "store unavailable")

	resp = s.api.Post("/api/v1/admin/windows/expire", s.as(t, seller.UserID)...)
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = s.api.Post("/api/v1/admin/windows/expire")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
