package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CyberSolo/UDAM/internal/auth"
	"github.com/CyberSolo/UDAM/internal/engine"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// DisputesHandler handles dispute, counter and adjudication endpoints.
type DisputesHandler struct {
	svc DisputeService
}

// NewDisputesHandler creates a new DisputesHandler.
func NewDisputesHandler(svc DisputeService) *DisputesHandler {
	return &DisputesHandler{svc: svc}
}

// ClaimInput is the input for a dispute or counter claim.
type ClaimInput struct {
	ID   string `path:"id" doc:"Order UUID"`
	Body struct {
		Reason   string `json:"reason"   doc:"What went wrong"         maxLength:"2000"`
		Evidence string `json:"evidence" doc:"Supporting evidence"     maxLength:"2000"`
	}
}

// AdjudicateInput is the input for an admin decision.
type AdjudicateInput struct {
	ID   string `path:"id" doc:"Order UUID"`
	Body struct {
		Decision string `json:"decision" doc:"Party the escrow is released to" enum:"BUYER,SELLER"`
	}
}

// Dispute opens the buyer's one-shot dispute.
func (h *DisputesHandler) Dispute(ctx context.Context, input *ClaimInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return orderResult(h.svc.OpenDispute(ctx, input.ID, actor, engine.Claim{
		Reason:   input.Body.Reason,
		Evidence: input.Body.Evidence,
	}))
}

// Counter records the seller's one-shot response to a dispute.
func (h *DisputesHandler) Counter(ctx context.Context, input *ClaimInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return orderResult(h.svc.OpenCounter(ctx, input.ID, actor, engine.Claim{
		Reason:   input.Body.Reason,
		Evidence: input.Body.Evidence,
	}))
}

// Adjudicate settles a disputed order. Requires the admin capability.
func (h *DisputesHandler) Adjudicate(ctx context.Context, input *AdjudicateInput) (*OrderOutput, error) {
	actor := auth.ActorFrom(ctx)
	if !actor.Admin {
		if actor.UserID == "" {
			return nil, unauthorized()
		}
		return nil, apiError(domain.ErrForbidden)
	}

	decision, ok := domain.ParseParty(input.Body.Decision)
	if !ok {
		return nil, apiError(domain.ErrInvalidInput)
	}
	return orderResult(h.svc.Adjudicate(ctx, input.ID, decision, actor))
}

// RegisterDisputeRoutes registers dispute endpoints with the Huma API.
func RegisterDisputeRoutes(api huma.API, h *DisputesHandler) {
	claimErrors := []int{
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusGone,
		http.StatusUnprocessableEntity,
	}

	huma.Register(api, huma.Operation{
		OperationID: "open-dispute",
		Method:      http.MethodPost,
		Path:        "/api/v1/orders/{id}/dispute",
		Summary:     "Open a dispute",
		Description: "Buyer disputes an accepted order within the dispute window. " +
			"The seller's counter window opens.",
		Tags:     []string{"disputes"},
		Security: bearerSecurity,
		Errors:   claimErrors,
	}, h.Dispute)

	huma.Register(api, huma.Operation{
		OperationID: "counter-dispute",
		Method:      http.MethodPost,
		Path:        "/api/v1/orders/{id}/counter",
		Summary:     "Counter a dispute",
		Description: "Seller responds to an open dispute within the counter window.",
		Tags:        []string{"disputes"},
		Security:    bearerSecurity,
		Errors:      claimErrors,
	}, h.Counter)

	huma.Register(api, huma.Operation{
		OperationID: "adjudicate-order",
		Method:      http.MethodPost,
		Path:        "/api/v1/orders/{id}/adjudicate",
		Summary:     "Adjudicate a dispute",
		Description: "Admin releases the escrow to the buyer or the seller. Decisions are final.",
		Tags:        []string{"disputes"},
		Security:    adminSecurity,
		Errors:      claimErrors,
	}, h.Adjudicate)
}
