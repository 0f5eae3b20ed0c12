package client

import (
	"context"
	"net/url"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// SubmitReview scores a settled order as its buyer.
func (c *Client) SubmitReview(ctx context.Context, orderID string, score int, comment string) (*domain.Review, error) {
	body := map[string]any{"score": score}
	if comment != "" {
		body["comment"] = comment
	}
	var r domain.Review
	if err := c.post(ctx, orderPath(orderID, "review"), body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetUserRating returns a user's aggregate seller rating.
func (c *Client) GetUserRating(ctx context.Context, userID string) (*domain.Rating, error) {
	var r domain.Rating
	if err := c.get(ctx, "/api/v1/users/"+url.PathEscape(userID)+"/rating", &r); err != nil {
		return nil, err
	}
	return &r, nil
}
