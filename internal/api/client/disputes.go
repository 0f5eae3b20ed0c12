package client

import (
	"context"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// Claim is the body of a dispute or counter.
type Claim struct {
	Reason   string `json:"reason"`
	Evidence string `json:"evidence"`
}

// OpenDispute disputes an accepted order as its buyer.
func (c *Client) OpenDispute(ctx context.Context, id string, claim Claim) (*domain.Order, error) {
	return c.orderAction(ctx, id, "dispute", claim)
}

// OpenCounter answers a dispute as the order's seller.
func (c *Client) OpenCounter(ctx context.Context, id string, claim Claim) (*domain.Order, error) {
	return c.orderAction(ctx, id, "counter", claim)
}

// Adjudicate releases a disputed order's escrow to decision. Requires the
// admin token.
func (c *Client) Adjudicate(ctx context.Context, id string, decision domain.Party) (*domain.Order, error) {
	return c.orderAction(ctx, id, "adjudicate", map[string]string{"decision": string(decision)})
}

// SweepResult reports a manual window sweep.
type SweepResult struct {
	Scanned   int `json:"scanned"`
	Completed int `json:"completed"`
	Resolved  int `json:"resolved"`
	Skipped   int `json:"skipped"`
}

// ExpireWindows settles one batch of orders whose windows have elapsed.
// Requires the admin token.
func (c *Client) ExpireWindows(ctx context.Context) (*SweepResult, error) {
	var res SweepResult
	if err := c.post(ctx, "/api/v1/admin/windows/expire", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
