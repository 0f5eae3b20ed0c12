package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	SellerID string
	Status   string
	Limit    int
	Offset   int
}

// CreateListingRequest contains the fields a seller supplies.
type CreateListingRequest struct {
	ServiceName     string `json:"service_name"`
	PricePerUnit    int64  `json:"price_per_unit"`
	UnitDescription string `json:"unit_description"`
	EndpointURL     string `json:"endpoint_url,omitempty"`
	TotalUnits      int    `json:"total_units"`
	Credential      string `json:"credential,omitempty"`
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.SellerID != "" {
		q.Set("seller_id", params.SellerID)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateListing publishes a listing owned by the authenticated user.
func (c *Client) CreateListing(ctx context.Context, req *CreateListingRequest) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.post(ctx, "/api/v1/listings", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// RevealCredential returns the plaintext credential of the caller's listing.
func (c *Client) RevealCredential(ctx context.Context, id string) (string, error) {
	var resp struct {
		Credential string `json:"credential"`
	}
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id)+"/credential", &resp); err != nil {
		return "", err
	}
	return resp.Credential, nil
}
