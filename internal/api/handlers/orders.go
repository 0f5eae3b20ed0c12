package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/CyberSolo/UDAM/internal/engine"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// OrdersHandler handles order lifecycle endpoints.
type OrdersHandler struct {
	svc OrderService
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(svc OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// --- Input/Output types ---

// CreateOrderInput is the input for placing an order.
type CreateOrderInput struct {
	Body struct {
		ListingID string `json:"listing_id" doc:"Listing to buy from"`
		Units     int    `json:"units"      doc:"Number of units"     minimum:"1"`
	}
}

// OrderOutput is the response carrying a single order.
type OrderOutput struct {
	Body domain.Order
}

// OrderIDInput addresses a single order.
type OrderIDInput struct {
	ID string `path:"id" doc:"Order UUID"`
}

// ListOrdersInput is the input for listing the caller's orders.
type ListOrdersInput struct {
	State  string `query:"state"  doc:"Filter by order state"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"0" maximum:"1000"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListOrdersOutput is the response for listing orders.
type ListOrdersOutput struct {
	Body struct {
		Orders []domain.Order `json:"orders"`
		Limit  int            `json:"limit"`
		Offset int            `json:"offset"`
	}
}

// ListTokensOutput is the response for listing the caller's escrow tokens.
type ListTokensOutput struct {
	Body struct {
		Tokens []domain.EscrowToken `json:"tokens"`
	}
}

// --- Handlers ---

// Create reserves inventory and escrow for a new order by the caller.
func (h *OrdersHandler) Create(ctx context.Context, input *CreateOrderInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	o, err := h.svc.CreateOrder(ctx, input.Body.ListingID, actor.UserID, input.Body.Units)
	if err != nil {
		return nil, apiError(err)
	}
	return &OrderOutput{Body: *o}, nil
}

// List returns the orders the caller participates in.
func (h *OrdersHandler) List(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	f := engine.OrderFilter{Limit: input.Limit, Offset: input.Offset}
	if f.Limit == 0 {
		f.Limit = defaultPageSize
	}
	if input.State != "" {
		state, err := domain.ParseOrderState(input.State)
		if err != nil {
			return nil, apiError(err)
		}
		f.State = &state
	}

	orders, err := h.svc.ListOrders(ctx, actor, f)
	if err != nil {
		return nil, apiError(err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	resp := &ListOrdersOutput{}
	resp.Body.Orders = orders
	resp.Body.Limit = f.Limit
	resp.Body.Offset = f.Offset
	return resp, nil
}

// Get returns one order visible to the caller.
func (h *OrdersHandler) Get(ctx context.Context, input *OrderIDInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return orderResult(h.svc.GetOrder(ctx, input.ID, actor))
}

// Confirm marks payment as received. Exposed only as a development shortcut.
func (h *OrdersHandler) Confirm(ctx context.Context, input *OrderIDInput) (*OrderOutput, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	return orderResult(h.svc.ConfirmOrder(ctx, input.ID))
}

// Accept starts delivery and opens the dispute window.
func (h *OrdersHandler) Accept(ctx context.Context, input *OrderIDInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return orderResult(h.svc.AcceptOrder(ctx, input.ID, actor))
}

// Cancel voids escrow and restores inventory for an unaccepted order.
func (h *OrdersHandler) Cancel(ctx context.Context, input *OrderIDInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return orderResult(h.svc.CancelOrder(ctx, input.ID, actor))
}

// Complete confirms delivery and pays the seller.
func (h *OrdersHandler) Complete(ctx context.Context, input *OrderIDInput) (*OrderOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return orderResult(h.svc.CompleteOrder(ctx, input.ID, actor))
}

// Tokens lists the caller's escrow tokens.
func (h *OrdersHandler) Tokens(ctx context.Context, _ *struct{}) (*ListTokensOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := h.svc.ListTokens(ctx, actor)
	if err != nil {
		return nil, apiError(err)
	}
	if tokens == nil {
		tokens = []domain.EscrowToken{}
	}

	resp := &ListTokensOutput{}
	resp.Body.Tokens = tokens
	return resp, nil
}

func orderResult(o *domain.Order, err error) (*OrderOutput, error) {
	if err != nil {
		return nil, apiError(err)
	}
	return &OrderOutput{Body: *o}, nil
}

// RegisterOrderRoutes registers order endpoints with the Huma API. The
// confirm shortcut is registered only when devConfirm is set.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler, devConfirm bool) {
	transitionErrors := []int{
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "create-order",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders",
		Summary:       "Place an order",
		Description:   "Reserves units on the listing and mints an escrow token for the order amount.",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerSecurity,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
		},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List my orders",
		Description: "Returns orders where the caller is buyer or seller, newest first.",
		Tags:        []string{"orders"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Get an order",
		Tags:        []string{"orders"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound},
	}, h.Get)

	if devConfirm {
		huma.Register(api, huma.Operation{
			OperationID: "confirm-order",
			Method:      http.MethodPost,
			Path:        "/api/v1/orders/{id}/confirm",
			Summary:     "Confirm payment (development only)",
			Description: "Marks an order as paid without a payment provider.",
			Tags:        []string{"orders"},
			Security:    bearerSecurity,
			Errors:      transitionErrors,
		}, h.Confirm)
	}

	huma.Register(api, huma.Operation{
		OperationID: "accept-order",
		Method:      http.MethodPost,
		Path:        "/api/v1/orders/{id}/accept",
		Summary:     "Accept an order",
		Description: "Seller starts delivery; the buyer's dispute window opens.",
		Tags:        []string{"orders"},
		Security:    bearerSecurity,
		Errors:      transitionErrors,
	}, h.Accept)

	huma.Register(api, huma.Operation{
		OperationID: "cancel-order",
		Method:      http.MethodPost,
		Path:        "/api/v1/orders/{id}/cancel",
		Summary:     "Cancel an order",
		Description: "Voids the escrow token and restores the reserved units.",
		Tags:        []string{"orders"},
		Security:    bearerSecurity,
		Errors:      transitionErrors,
	}, h.Cancel)

	huma.Register(api, huma.Operation{
		OperationID: "complete-order",
		Method:      http.MethodPost,
		Path:        "/api/v1/orders/{id}/complete",
		Summary:     "Complete an order",
		Description: "Buyer confirms delivery; escrow is released to the seller.",
		Tags:        []string{"orders"},
		Security:    bearerSecurity,
		Errors:      transitionErrors,
	}, h.Complete)

	huma.Register(api, huma.Operation{
		OperationID: "list-tokens",
		Method:      http.MethodGet,
		Path:        "/api/v1/tokens",
		Summary:     "List my escrow tokens",
		Tags:        []string{"escrow"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.Tokens)
}
