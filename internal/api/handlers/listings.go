package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CyberSolo/UDAM/internal/engine"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const defaultPageSize = 50

// ListingsHandler handles listing endpoints.
type ListingsHandler struct {
	svc ListingService
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(svc ListingService) *ListingsHandler {
	return &ListingsHandler{svc: svc}
}

// --- Input/Output types ---

// CreateListingInput is the input for publishing a listing.
type CreateListingInput struct {
	Body struct {
		ServiceName     string `json:"service_name"           doc:"Name of the API being sold"          minLength:"1" maxLength:"128"`
		PricePerUnit    int64  `json:"price_per_unit"         doc:"Price per unit in minor units"       minimum:"1"`
		UnitDescription string `json:"unit_description"       doc:"What one unit buys"                  minLength:"1" maxLength:"128"`
		EndpointURL     string `json:"endpoint_url,omitempty" doc:"Base URL of the API"`
		TotalUnits      int    `json:"total_units"            doc:"Units offered"                       minimum:"1"`
		Credential      string `json:"credential,omitempty"   doc:"Access credential, stored encrypted"`
	}
}

// ListingOutput is the response carrying a single listing.
type ListingOutput struct {
	Body domain.Listing
}

// ListListingsInput is the input for listing listings.
type ListListingsInput struct {
	SellerID string `query:"seller_id" doc:"Filter by seller"`
	Status   string `query:"status"    doc:"Listing status (default active)" enum:"active,sold_out,"`
	Limit    int    `query:"limit"     doc:"Number of results (default 50)"  minimum:"0" maximum:"1000"`
	Offset   int    `query:"offset"    doc:"Pagination offset"               minimum:"0"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// CredentialOutput carries a listing's plaintext credential.
type CredentialOutput struct {
	Body struct {
		ListingID  string `json:"listing_id"`
		Credential string `json:"credential"`
	}
}

// --- Handlers ---

// Create publishes a listing owned by the caller.
func (h *ListingsHandler) Create(ctx context.Context, input *CreateListingInput) (*ListingOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	l, err := h.svc.CreateListing(ctx, actor, engine.ListingInput{
		ServiceName:     input.Body.ServiceName,
		PricePerUnit:    input.Body.PricePerUnit,
		UnitDescription: input.Body.UnitDescription,
		EndpointURL:     input.Body.EndpointURL,
		TotalUnits:      input.Body.TotalUnits,
		Credential:      input.Body.Credential,
	})
	if err != nil {
		return nil, apiError(err)
	}
	return &ListingOutput{Body: *l}, nil
}

// List returns listings, newest first.
func (h *ListingsHandler) List(ctx context.Context, input *ListListingsInput) (*ListListingsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	listings, total, err := h.svc.ListListings(ctx, engine.ListingFilter{
		SellerID: input.SellerID,
		Status:   domain.ListingStatus(input.Status),
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, apiError(err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = limit
	resp.Body.Offset = input.Offset
	return resp, nil
}

// Get returns a single listing by ID.
func (h *ListingsHandler) Get(ctx context.Context, input *GetListingInput) (*ListingOutput, error) {
	l, err := h.svc.GetListing(ctx, input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	return &ListingOutput{Body: *l}, nil
}

// Credential reveals the listing's credential to its seller.
func (h *ListingsHandler) Credential(ctx context.Context, input *GetListingInput) (*CredentialOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	cred, err := h.svc.RevealCredential(ctx, input.ID, actor)
	if err != nil {
		return nil, apiError(err)
	}

	resp := &CredentialOutput{}
	resp.Body.ListingID = input.ID
	resp.Body.Credential = cred
	return resp, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create a listing",
		Description:   "Publishes a finite-inventory API listing owned by the caller.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerSecurity,
		Errors:        []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns listings filtered by seller and status with pagination.",
		Tags:        []string{"listings"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "reveal-listing-credential",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}/credential",
		Summary:     "Reveal the listing credential",
		Description: "Returns the decrypted credential. Only the listing's seller may call this.",
		Tags:        []string{"listings"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	}, h.Credential)
}

