// Package store defines the datastore abstraction for the marketplace.
// All business logic depends on the Store interface, never on concrete
// implementations. PostgresStore is the durable implementation and
// MemoryStore backs tests and single-process development runs.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// ErrConflict is returned when a conditional update finds the row in a
// different version or status than the caller expected.
var ErrConflict = errors.New("store: conflicting update")

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	SellerID *string
	Status   *domain.ListingStatus
	Limit    int // default 50
	Offset   int
}

// OrderQuery defines optional filters for order queries.
type OrderQuery struct {
	// Participant matches orders where the user is buyer or seller.
	Participant *string
	State       *domain.OrderState
	Limit       int // default 50
	Offset      int
}

// ExpiryCursor is a position in the due-order sequence returned by
// ListExpiredOrders. The zero value starts at the beginning.
type ExpiryCursor struct {
	DueAt   time.Time
	OrderID string
}

// ExpiryKey returns the cursor position of o.
func ExpiryKey(o *domain.Order) ExpiryCursor {
	c := ExpiryCursor{OrderID: o.ID}
	if d := o.ActiveDeadline(); d != nil {
		c.DueAt = *d
	}
	return c
}

// IsZero reports whether c points at the start of the sequence.
func (c ExpiryCursor) IsZero() bool {
	return c.DueAt.IsZero() && c.OrderID == ""
}

// Compare orders two cursors by due time, then order id.
func (c ExpiryCursor) Compare(d ExpiryCursor) int {
	if r := c.DueAt.Compare(d.DueAt); r != 0 {
		return r
	}
	return strings.Compare(c.OrderID, d.OrderID)
}

// Store defines all data access operations for the marketplace.
type Store interface {
	// Listings
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, int, error)

	// Inventory. Each call is an atomic conditional update on one listing.
	// ReserveUnits moves available to reserved and fails with
	// domain.ErrInsufficientInventory when too few units are available.
	// RestoreUnits moves reserved back to available; CommitUnits moves
	// reserved to sold. Both fail with domain.ErrInvalidRestore when fewer
	// units are reserved than requested.
	ReserveUnits(ctx context.Context, listingID string, units int) error
	RestoreUnits(ctx context.Context, listingID string, units int) error
	CommitUnits(ctx context.Context, listingID string, units int) error

	// Orders
	InsertOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, q *OrderQuery) ([]domain.Order, error)
	// UpdateOrder persists o only if the stored version equals o.Version,
	// then increments o.Version. A mismatch returns ErrConflict.
	UpdateOrder(ctx context.Context, o *domain.Order) error
	// ListExpiredOrders returns ACCEPTED orders past their dispute deadline
	// and DISPUTED orders past their counter deadline, ordered by that
	// deadline and then by id, starting strictly after the cursor.
	ListExpiredOrders(
		ctx context.Context,
		now time.Time,
		after ExpiryCursor,
		limit int,
	) ([]domain.Order, error)

	// Escrow tokens
	InsertToken(ctx context.Context, t *domain.EscrowToken) error
	GetTokenByOrder(ctx context.Context, orderID string) (*domain.EscrowToken, error)
	ListTokensByBuyer(ctx context.Context, buyerID string) ([]domain.EscrowToken, error)
	// SetTokenStatus moves the order's token from one status to another.
	// It returns ErrConflict when the token is not in from.
	SetTokenStatus(
		ctx context.Context,
		orderID string,
		from, to domain.TokenStatus,
		at time.Time,
	) error

	// Reviews
	InsertReview(ctx context.Context, r *domain.Review) error
	ListReviewsBySeller(ctx context.Context, sellerID string, limit int) ([]domain.Review, error)
	SellerRatingStats(ctx context.Context, sellerID string) (count int, sum int, err error)

	// Summaries. Paid orders are those past CREATED and not CANCELLED.
	// AccountTotals counts the user's orders as buyer and as seller.
	// MarketplaceTotals fills the all-time totals, the window totals for
	// orders created at or after since, and up to top buyers and sellers
	// ranked by paid amount in that window.
	AccountTotals(ctx context.Context, userID string) (*domain.AccountSummary, error)
	MarketplaceTotals(ctx context.Context, since time.Time, top int) (*domain.MarketplaceSummary, error)

	// Atomic runs fn as one unit of work. If fn returns an error every write
	// made through the Store passed to fn is rolled back.
	Atomic(ctx context.Context, fn func(Store) error) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
