package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/api/openapi"
)

type pingOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	cfg := huma.DefaultConfig("UDAM API", "test")
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/api/v1/ping",
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})

	openapi.RegisterRoutes(e, api)
	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		path            string
		wantStatus      int
		wantContentType string
		wantBody        string
	}{
		{
			name:            "json document",
			path:            "/swagger/swagger.json",
			wantStatus:      http.StatusOK,
			wantContentType: "application/json",
			wantBody:        `"operationId":"ping"`,
		},
		{
			name:            "yaml document",
			path:            "/swagger/swagger.yaml",
			wantStatus:      http.StatusOK,
			wantContentType: "text/yaml",
			wantBody:        "operationId: ping",
		},
		{
			name:            "ui",
			path:            "/swagger/index.html",
			wantStatus:      http.StatusOK,
			wantContentType: "text/html",
			wantBody:        "<title>UDAM API</title>",
		},
		{
			name:       "redirect",
			path:       "/swagger",
			wantStatus: http.StatusMovedPermanently,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newServer(t)
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantContentType != "" {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.wantContentType)
			}
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
