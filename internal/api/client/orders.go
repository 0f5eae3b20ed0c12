package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// ListOrdersParams defines query parameters for order queries.
type ListOrdersParams struct {
	State  string
	Limit  int
	Offset int
}

// CreateOrder buys units from a listing as the authenticated user.
func (c *Client) CreateOrder(ctx context.Context, listingID string, units int) (*domain.Order, error) {
	body := map[string]any{"listing_id": listingID, "units": units}
	var o domain.Order
	if err := c.post(ctx, "/api/v1/orders", body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns the orders the authenticated user takes part in.
func (c *Client) ListOrders(ctx context.Context, params *ListOrdersParams) ([]domain.Order, error) {
	q := url.Values{}
	if params.State != "" {
		q.Set("state", params.State)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// GetOrder returns a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := c.get(ctx, orderPath(id, ""), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ConfirmOrder marks payment received. The server only exposes this in
// development mode.
func (c *Client) ConfirmOrder(ctx context.Context, id string) (*domain.Order, error) {
	return c.orderAction(ctx, id, "confirm", nil)
}

// AcceptOrder accepts a confirmed order as its seller.
func (c *Client) AcceptOrder(ctx context.Context, id string) (*domain.Order, error) {
	return c.orderAction(ctx, id, "accept", nil)
}

// CancelOrder cancels an order that has not been accepted.
func (c *Client) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return c.orderAction(ctx, id, "cancel", nil)
}

// CompleteOrder confirms delivery as the buyer.
func (c *Client) CompleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	return c.orderAction(ctx, id, "complete", nil)
}

// ListTokens returns the authenticated user's escrow tokens.
func (c *Client) ListTokens(ctx context.Context) ([]domain.EscrowToken, error) {
	var resp struct {
		Tokens []domain.EscrowToken `json:"tokens"`
	}
	if err := c.get(ctx, "/api/v1/tokens", &resp); err != nil {
		return nil, err
	}
	return resp.Tokens, nil
}

func (c *Client) orderAction(ctx context.Context, id, action string, body any) (*domain.Order, error) {
	var o domain.Order
	if err := c.post(ctx, orderPath(id, action), body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func orderPath(id, action string) string {
	p := "/api/v1/orders/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}
