package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CyberSolo/UDAM/internal/auth"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// SummaryHandler serves account and marketplace activity totals.
type SummaryHandler struct {
	svc SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// AccountSummaryInput selects whose totals to return.
type AccountSummaryInput struct {
	UserID string `query:"user_id" doc:"User ID, defaults to the caller. Other users need admin capability"`
}

// AccountSummaryOutput is the response carrying an account summary.
type AccountSummaryOutput struct {
	Body domain.AccountSummary
}

// MarketplaceSummaryInput sets the activity window.
type MarketplaceSummaryInput struct {
	Days int `query:"days" default:"30" minimum:"1" maximum:"365" doc:"Activity window in days"`
}

// MarketplaceSummaryOutput is the response carrying the marketplace summary.
type MarketplaceSummaryOutput struct {
	Body domain.MarketplaceSummary
}

// Account returns buyer and seller totals for the caller or, for admins,
// any user.
func (h *SummaryHandler) Account(ctx context.Context, input *AccountSummaryInput) (*AccountSummaryOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	s, err := h.svc.AccountSummary(ctx, actor, input.UserID)
	if err != nil {
		return nil, apiError(err)
	}
	return &AccountSummaryOutput{Body: *s}, nil
}

// Marketplace returns marketplace-wide totals and top participants.
func (h *SummaryHandler) Marketplace(
	ctx context.Context,
	input *MarketplaceSummaryInput,
) (*MarketplaceSummaryOutput, error) {
	actor := auth.ActorFrom(ctx)
	if !actor.Admin {
		if actor.UserID == "" {
			return nil, unauthorized()
		}
		return nil, apiError(domain.ErrForbidden)
	}

	s, err := h.svc.MarketplaceSummary(ctx, actor, input.Days)
	if err != nil {
		return nil, apiError(err)
	}
	return &MarketplaceSummaryOutput{Body: *s}, nil
}

// RegisterSummaryRoutes registers the summary endpoints with the Huma API.
func RegisterSummaryRoutes(api huma.API, h *SummaryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/account/summary",
		Summary:     "Get account totals",
		Description: "Counts and amounts of the user's orders as buyer (paid, pending, refunded) " +
			"and as seller (sales, held in escrow, released, refunded).",
		Tags:     []string{"summary"},
		Security: bearerSecurity,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusUnprocessableEntity,
		},
	}, h.Account)

	huma.Register(api, huma.Operation{
		OperationID: "get-marketplace-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/summary",
		Summary:     "Get marketplace totals",
		Description: "All-time listing, order, dispute and settlement counts with GMV, plus " +
			"orders and top sellers and buyers over the last days days.",
		Tags:     []string{"admin"},
		Security: adminSecurity,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusUnprocessableEntity,
		},
	}, h.Marketplace)
}
