package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// AccountSummary returns buyer and seller totals for userID, or for the
// authenticated user when userID is empty.
func (c *Client) AccountSummary(ctx context.Context, userID string) (*domain.AccountSummary, error) {
	path := "/api/v1/account/summary"
	if userID != "" {
		path += "?" + url.Values{"user_id": {userID}}.Encode()
	}
	var s domain.AccountSummary
	if err := c.get(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// MarketplaceSummary returns marketplace totals over the last days days.
// Zero days uses the server default. Requires the admin token.
func (c *Client) MarketplaceSummary(ctx context.Context, days int) (*domain.MarketplaceSummary, error) {
	path := "/api/v1/admin/summary"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var s domain.MarketplaceSummary
	if err := c.get(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
