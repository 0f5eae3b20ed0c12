// Package domain defines the core business types for the UDAM marketplace.
package domain

import (
	"slices"
	"time"
)

// ListingStatus represents whether a listing can still be purchased.
type ListingStatus string

// Listing status constants.
const (
	ListingActive  ListingStatus = "active"
	ListingSoldOut ListingStatus = "sold_out"
)

// Listing is a seller's priced, finite-inventory offering of API access.
// Amounts are integer minor units (cents).
type Listing struct {
	ID              string `json:"id"                     db:"id"`
	SellerID        string `json:"seller_id"              db:"seller_id"`
	ServiceName     string `json:"service_name"           db:"service_name"`
	PricePerUnit    int64  `json:"price_per_unit"         db:"price_per_unit"`
	UnitDescription string `json:"unit_description"       db:"unit_description"`
	EndpointURL     string `json:"endpoint_url,omitempty" db:"endpoint_url"`

	// Inventory. AvailableUnits + ReservedUnits + SoldUnits == TotalUnits.
	TotalUnits     int `json:"total_units"     db:"total_units"`
	AvailableUnits int `json:"available_units" db:"available_units"`
	ReservedUnits  int `json:"reserved_units"  db:"reserved_units"`
	SoldUnits      int `json:"sold_units"      db:"sold_units"`

	Status ListingStatus `json:"status" db:"status"`

	// Sealed credential material. Never serialized.
	Credential []byte `json:"-" db:"credential_sealed"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Party identifies a side of an order.
type Party string

// Party constants.
const (
	PartyBuyer  Party = "BUYER"
	PartySeller Party = "SELLER"
)

// Valid reports whether p is a recognised party.
func (p Party) Valid() bool {
	return p == PartyBuyer || p == PartySeller
}

// ResolutionSource records what settled an order.
type ResolutionSource string

// Resolution source constants.
const (
	SourceBuyerConfirmed ResolutionSource = "buyer_confirmed"
	SourceWindowElapsed  ResolutionSource = "window_elapsed"
	SourceAdjudicated    ResolutionSource = "adjudicated"
	SourceCounterForfeit ResolutionSource = "counter_forfeit"
)

// Resolution is the settlement outcome of an order.
type Resolution struct {
	Decision   Party            `json:"decision"`
	Source     ResolutionSource `json:"source"`
	ResolvedAt time.Time        `json:"resolved_at"`
}

// Dispute holds the one-shot dispute and counter claims for an order.
type Dispute struct {
	Reason          string     `json:"reason,omitempty"`
	Evidence        string     `json:"evidence,omitempty"`
	OpenedAt        *time.Time `json:"opened_at,omitempty"`
	CounterReason   string     `json:"counter_reason,omitempty"`
	CounterEvidence string     `json:"counter_evidence,omitempty"`
	CounteredAt     *time.Time `json:"countered_at,omitempty"`
}

// Order is one buyer's purchase transaction against a listing.
type Order struct {
	ID        string `json:"id"         db:"id"`
	ListingID string `json:"listing_id" db:"listing_id"`
	BuyerID   string `json:"buyer_id"   db:"buyer_id"`
	SellerID  string `json:"seller_id"  db:"seller_id"`

	Units     int   `json:"units"      db:"units"`
	UnitPrice int64 `json:"unit_price" db:"unit_price"`
	Amount    int64 `json:"amount"     db:"amount"`

	State OrderState `json:"state" db:"state"`

	Dispute    Dispute     `json:"dispute"`
	Resolution *Resolution `json:"resolution,omitempty"`

	DisputeDeadline *time.Time `json:"dispute_deadline,omitempty" db:"dispute_deadline"`
	CounterDeadline *time.Time `json:"counter_deadline,omitempty" db:"counter_deadline"`

	Version   int       `json:"version"    db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	if o.Resolution != nil {
		r := *o.Resolution
		c.Resolution = &r
	}
	c.Dispute.OpenedAt = cloneTime(o.Dispute.OpenedAt)
	c.Dispute.CounteredAt = cloneTime(o.Dispute.CounteredAt)
	c.DisputeDeadline = cloneTime(o.DisputeDeadline)
	c.CounterDeadline = cloneTime(o.CounterDeadline)
	return &c
}

// IsParticipant reports whether userID is the buyer or seller.
func (o *Order) IsParticipant(userID string) bool {
	return userID != "" && (o.BuyerID == userID || o.SellerID == userID)
}

// ActiveDeadline returns the deadline that can still elapse for the order:
// the dispute deadline while ACCEPTED and the counter deadline while
// DISPUTED. Other states have none.
func (o *Order) ActiveDeadline() *time.Time {
	switch o.State {
	case StateAccepted:
		return o.DisputeDeadline
	case StateDisputed:
		return o.CounterDeadline
	default:
		return nil
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// TokenStatus is the settlement status of an escrow token.
type TokenStatus string

// Token status constants.
const (
	TokenReserved         TokenStatus = "RESERVED"
	TokenReleasedToSeller TokenStatus = "RELEASED_TO_SELLER"
	TokenReleasedToBuyer  TokenStatus = "RELEASED_TO_BUYER"
	TokenVoid             TokenStatus = "VOID"
)

// Terminal reports whether the status can no longer change.
func (s TokenStatus) Terminal() bool {
	return s != TokenReserved
}

// ReleaseStatus maps a release target to the terminal token status.
func ReleaseStatus(target Party) TokenStatus {
	if target == PartyBuyer {
		return TokenReleasedToBuyer
	}
	return TokenReleasedToSeller
}

// EscrowToken represents funds reserved for exactly one order.
type EscrowToken struct {
	ID        string      `json:"id"                   db:"id"`
	OrderID   string      `json:"order_id"             db:"order_id"`
	BuyerID   string      `json:"buyer_id"             db:"buyer_id"`
	SellerID  string      `json:"seller_id"            db:"seller_id"`
	Amount    int64       `json:"amount"               db:"amount"`
	Status    TokenStatus `json:"status"               db:"status"`
	CreatedAt time.Time   `json:"created_at"           db:"created_at"`
	SettledAt *time.Time  `json:"settled_at,omitempty" db:"settled_at"`
}

// Score bounds for reviews.
const (
	MinScore = 1
	MaxScore = 5
)

// Review is a buyer's rating of a settled order.
type Review struct {
	ID        string    `json:"id"                db:"id"`
	OrderID   string    `json:"order_id"          db:"order_id"`
	BuyerID   string    `json:"buyer_id"          db:"buyer_id"`
	SellerID  string    `json:"seller_id"         db:"seller_id"`
	Score     int       `json:"score"             db:"score"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at"        db:"created_at"`
}

// Rating is the aggregate of all reviews where a user was the seller.
type Rating struct {
	UserID     string   `json:"user_id"`
	Count      int      `json:"count"`
	Mean       float64  `json:"mean"`
	HasRatings bool     `json:"has_ratings"`
	Recent     []Review `json:"recent"`
}

// Actor is a pre-authenticated caller. Admin is set only after the
// capability token has been verified upstream.
type Actor struct {
	UserID string
	Admin  bool
}

// ValidParties lists the accepted adjudication decisions.
var ValidParties = []Party{PartyBuyer, PartySeller}

// ParseParty converts a boundary string into a Party.
func ParseParty(s string) (Party, bool) {
	p := Party(s)
	return p, slices.Contains(ValidParties, p)
}
