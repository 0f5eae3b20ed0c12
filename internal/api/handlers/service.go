package handlers

import (
	"context"

	"github.com/CyberSolo/UDAM/internal/engine"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListingService is the listing surface of the marketplace engine.
type ListingService interface {
	CreateListing(ctx context.Context, actor domain.Actor, in engine.ListingInput) (*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, f engine.ListingFilter) ([]domain.Listing, int, error)
	RevealCredential(ctx context.Context, listingID string, actor domain.Actor) (string, error)
}

// OrderService is the order lifecycle surface of the marketplace engine.
type OrderService interface {
	CreateOrder(ctx context.Context, listingID, buyerID string, units int) (*domain.Order, error)
	ConfirmOrder(ctx context.Context, orderID string) (*domain.Order, error)
	AcceptOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)
	CompleteOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor, f engine.OrderFilter) ([]domain.Order, error)
	ListTokens(ctx context.Context, actor domain.Actor) ([]domain.EscrowToken, error)
}

// DisputeService is the dispute surface of the marketplace engine.
type DisputeService interface {
	OpenDispute(ctx context.Context, orderID string, actor domain.Actor, claim engine.Claim) (*domain.Order, error)
	OpenCounter(ctx context.Context, orderID string, actor domain.Actor, claim engine.Claim) (*domain.Order, error)
	Adjudicate(ctx context.Context, orderID string, decision domain.Party, actor domain.Actor) (*domain.Order, error)
}

// ReputationService is the review and rating surface of the marketplace
// engine.
type ReputationService interface {
	SubmitReview(ctx context.Context, orderID string, actor domain.Actor, score int, comment string) (*domain.Review, error)
	GetUserRating(ctx context.Context, userID string) (*domain.Rating, error)
}

// SummaryService is the reporting surface of the marketplace engine.
type SummaryService interface {
	AccountSummary(ctx context.Context, actor domain.Actor, userID string) (*domain.AccountSummary, error)
	MarketplaceSummary(ctx context.Context, actor domain.Actor, days int) (*domain.MarketplaceSummary, error)
}

// WindowExpirer force-settles orders whose windows have elapsed.
type WindowExpirer interface {
	ExpireWindows(ctx context.Context) (engine.SweepResult, error)
}

// Marketplace is everything the API needs from the engine.
type Marketplace interface {
	Pinger
	ListingService
	OrderService
	DisputeService
	ReputationService
	SummaryService
	WindowExpirer
}

var _ Marketplace = (*engine.Engine)(nil)
