package domain

import "time"

// Tally is a count of orders and their summed amount in minor units.
type Tally struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"`
}

// Add counts one order of the given amount.
func (t *Tally) Add(amount int64) {
	t.Count++
	t.Amount += amount
}

// Paid reports whether an order in state s counts as paid: confirmed and
// not cancelled.
func Paid(s OrderState) bool {
	return s != StateCreated && s != StateCancelled
}

// BuyerTotals summarises a user's orders as buyer.
type BuyerTotals struct {
	Paid     Tally `json:"paid"`
	Pending  Tally `json:"pending"`
	Refunded Tally `json:"refunded"`
}

// SellerTotals summarises orders on a user's listings. Held, Released and
// Refunded follow the escrow token status of paid orders.
type SellerTotals struct {
	Sales    Tally `json:"sales"`
	Held     Tally `json:"held"`
	Released Tally `json:"released"`
	Refunded Tally `json:"refunded"`
}

// AccountSummary is one user's activity on both sides of the marketplace.
type AccountSummary struct {
	UserID string       `json:"user_id"`
	Buyer  BuyerTotals  `json:"buyer"`
	Seller SellerTotals `json:"seller"`
}

// MarketTotals are all-time marketplace counters. GMV is the summed amount
// of paid orders.
type MarketTotals struct {
	Listings       int   `json:"listings"`
	ActiveListings int   `json:"active_listings"`
	Orders         int   `json:"orders"`
	PaidOrders     int   `json:"paid_orders"`
	PendingOrders  int   `json:"pending_orders"`
	Disputes       int   `json:"disputes"`
	Released       int   `json:"released"`
	Refunded       int   `json:"refunded"`
	GMV            int64 `json:"gmv"`
}

// WindowTotals count orders created since a point in time.
type WindowTotals struct {
	Days       int       `json:"days"`
	Since      time.Time `json:"since"`
	Orders     int       `json:"orders"`
	PaidOrders int       `json:"paid_orders"`
	GMV        int64     `json:"gmv"`
}

// TopParticipant ranks a buyer by spend or a seller by sales.
type TopParticipant struct {
	UserID string `json:"user_id"`
	Orders int    `json:"orders"`
	Amount int64  `json:"amount"`
}

// MarketplaceSummary is the operator view of marketplace activity.
type MarketplaceSummary struct {
	Totals      MarketTotals     `json:"totals"`
	Window      WindowTotals     `json:"window"`
	TopSellers  []TopParticipant `json:"top_sellers"`
	TopBuyers   []TopParticipant `json:"top_buyers"`
	GeneratedAt time.Time        `json:"generated_at"`
}
