package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/auth"
	"github.com/CyberSolo/UDAM/internal/config"
	"github.com/CyberSolo/UDAM/pkg/logger"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const testAdminToken = "app-admin-token"

type testApp struct {
	e      *echo.Echo
	tokens *auth.Tokens
}

func newTestApp(t *testing.T, devConfirm bool) *testApp {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Auth: config.AuthConfig{
			JWTSecret:  "app-test-secret-0123456789",
			Issuer:     "udam",
			TokenTTL:   time.Hour,
			AdminToken: testAdminToken,
		},
		Orders: config.OrdersConfig{
			DisputeWindow: time.Hour,
			CounterWindow: time.Hour,
			DevConfirm:    devConfirm,
		},
		Schedule: config.ScheduleConfig{SweepInterval: time.Minute, SweepBatch: 10},
	}
	log := logger.Discard()

	st, closeStore, err := openStore(context.Background(), &cfg.Database)
	require.NoError(t, err)
	t.Cleanup(closeStore)

	eng, err := newEngine(cfg, st, log)
	require.NoError(t, err)
	t.Cleanup(eng.Wait)

	tokens, err := newTokens(&cfg.Auth)
	require.NoError(t, err)

	return &testApp{e: newHTTPServer(cfg, eng, tokens, log), tokens: tokens}
}

// call sends a JSON request as userID ("" for anonymous) and decodes the
// response into dst when it is non-nil.
func (a *testApp) call(t *testing.T, method, path, userID string, body, dst any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	switch userID {
	case "":
	case auth.AdminUserID:
		req.Header.Set(auth.AdminTokenHeader, testAdminToken)
	default:
		signed, err := a.tokens.Issue(userID)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	if dst != nil && rec.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
	}
	return rec.Code
}

func TestHTTPServer_OperationalRoutes(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, false)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "readyz", path: "/readyz", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantBody: "udam_"},
		{name: "openapi", path: "/swagger/swagger.json", wantStatus: http.StatusOK, wantBody: `"adminToken"`},
		{name: "huma docs disabled", path: "/docs", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			app.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHTTPServer_OrderLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, true)

	var listing domain.Listing
	status := app.call(t, http.MethodPost, "/api/v1/listings", "alice", map[string]any{
		"service_name":     "geocoder",
		"price_per_unit":   250,
		"unit_description": "1k requests",
		"total_units":      10,
		"credential":       "sk-live-1",
	}, &listing)
	require.Equal(t, http.StatusCreated, status)

	var order domain.Order
	status = app.call(t, http.MethodPost, "/api/v1/orders", "bob",
		map[string]any{"listing_id": listing.ID, "units": 4}, &order)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, int64(1000), order.Amount)

	orderPath := "/api/v1/orders/" + order.ID
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, orderPath+"/confirm", "bob", nil, nil))
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, orderPath+"/accept", "alice", nil, nil))
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, orderPath+"/complete", "bob", nil, &order))
	assert.Equal(t, domain.StateCompleted, order.State)

	// Settled orders cannot move again.
	assert.Equal(t, http.StatusConflict, app.call(t, http.MethodPost, orderPath+"/cancel", "bob", nil, nil))

	var tokens struct {
		Tokens []domain.EscrowToken `json:"tokens"`
	}
	require.Equal(t, http.StatusOK, app.call(t, http.MethodGet, "/api/v1/tokens", "bob", nil, &tokens))
	require.Len(t, tokens.Tokens, 1)
	assert.Equal(t, domain.TokenReleasedToSeller, tokens.Tokens[0].Status)

	require.Equal(t, http.StatusOK, app.call(t, http.MethodGet, "/api/v1/listings/"+listing.ID, "", nil, &listing))
	assert.Equal(t, 6, listing.AvailableUnits)
	assert.Equal(t, 4, listing.SoldUnits)

	status = app.call(t, http.MethodPost, orderPath+"/review", "bob",
		map[string]any{"score": 5, "comment": "instant keys"}, nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, http.StatusConflict, app.call(t, http.MethodPost, orderPath+"/review", "bob",
		map[string]any{"score": 1}, nil))

	var rating domain.Rating
	require.Equal(t, http.StatusOK, app.call(t, http.MethodGet, "/api/v1/users/alice/rating", "", nil, &rating))
	assert.Equal(t, 1, rating.Count)
	assert.InDelta(t, 5.0, rating.Mean, 1e-9)
}

func TestHTTPServer_DisputeAdjudication(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, true)

	var listing domain.Listing
	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/listings", "alice", map[string]any{
		"service_name":     "ocr",
		"price_per_unit":   100,
		"unit_description": "page",
		"total_units":      5,
	}, &listing))

	var order domain.Order
	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/orders", "bob",
		map[string]any{"listing_id": listing.ID, "units": 2}, &order))

	orderPath := "/api/v1/orders/" + order.ID
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, orderPath+"/confirm", "bob", nil, nil))
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, orderPath+"/accept", "alice", nil, nil))
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, orderPath+"/dispute", "bob",
		map[string]any{"reason": "garbled output", "evidence": "sample.pdf"}, nil))

	decision := map[string]any{"decision": "BUYER"}
	assert.Equal(t, http.StatusUnauthorized, app.call(t, http.MethodPost, orderPath+"/adjudicate", "", decision, nil))
	assert.Equal(t, http.StatusForbidden, app.call(t, http.MethodPost, orderPath+"/adjudicate", "bob", decision, nil))

	require.Equal(t, http.StatusOK,
		app.call(t, http.MethodPost, orderPath+"/adjudicate", auth.AdminUserID, decision, &order))
	assert.Equal(t, domain.StateResolved, order.State)
	require.NotNil(t, order.Resolution)
	assert.Equal(t, domain.PartyBuyer, order.Resolution.Decision)

	require.Equal(t, http.StatusOK, app.call(t, http.MethodGet, "/api/v1/listings/"+listing.ID, "", nil, &listing))
	assert.Equal(t, 5, listing.AvailableUnits, "units return to inventory when the buyer wins")
}

func TestHTTPServer_ConfirmRequiresDevMode(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, false)

	status := app.call(t, http.MethodPost, "/api/v1/orders/o-1/confirm", "bob", nil, nil)
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, status)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := versionCommand()
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	assert.Contains(t, out.String(), "udam "+Version)
	assert.Contains(t, out.String(), "go1.")
}
