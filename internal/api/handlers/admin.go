package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CyberSolo/UDAM/internal/auth"
	"github.com/CyberSolo/UDAM/internal/engine"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	expirer WindowExpirer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(e WindowExpirer) *AdminHandler {
	return &AdminHandler{expirer: e}
}

// ExpireWindowsOutput is the response for a manual window sweep.
type ExpireWindowsOutput struct {
	Body engine.SweepResult
}

// ExpireWindows settles one batch of orders whose windows have elapsed.
func (h *AdminHandler) ExpireWindows(ctx context.Context, _ *struct{}) (*ExpireWindowsOutput, error) {
	actor := auth.ActorFrom(ctx)
	if !actor.Admin {
		if actor.UserID == "" {
			return nil, unauthorized()
		}
		return nil, apiError(domain.ErrForbidden)
	}

	res, err := h.expirer.ExpireWindows(ctx)
	if err != nil {
		return nil, apiError(err)
	}
	return &ExpireWindowsOutput{Body: res}, nil
}

// RegisterAdminRoutes registers operator endpoints with the Huma API.
func RegisterAdminRoutes(api huma.API, h *AdminHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "expire-windows",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/windows/expire",
		Summary:     "Expire elapsed windows",
		Description: "Completes accepted orders past their dispute window and resolves " +
			"uncountered disputes past their counter window for the buyer.",
		Tags:     []string{"admin"},
		Security: adminSecurity,
		Errors:   []int{http.StatusUnauthorized, http.StatusForbidden},
	}, h.ExpireWindows)
}
