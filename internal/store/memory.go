package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// MemoryStore implements Store in process memory. The maps are guarded by
// one RWMutex held only for lookups and inserts; each listing, order and
// token carries its own mutex so writers on different entities never
// contend.
//
// Units of work are not isolated. A write made inside Atomic is visible to
// other readers as soon as it lands, so a concurrent reader may see an
// order's new state before its token or listing has caught up. A failed
// unit is rolled back entity by entity. Use PostgresStore where readers
// need a consistent snapshot.
type MemoryStore struct {
	mu       sync.RWMutex
	listings map[string]*listingEntry
	orders   map[string]*orderEntry
	tokens   map[string]*tokenEntry // keyed by order ID
	reviews  map[string]domain.Review
}

type listingEntry struct {
	mu sync.Mutex
	l  domain.Listing
}

type orderEntry struct {
	mu sync.Mutex
	o  *domain.Order
}

type tokenEntry struct {
	mu sync.Mutex
	t  domain.EscrowToken
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[string]*listingEntry),
		orders:   make(map[string]*orderEntry),
		tokens:   make(map[string]*tokenEntry),
		reviews:  make(map[string]domain.Review),
	}
}

// Ping always succeeds.
func (*MemoryStore) Ping(context.Context) error { return nil }

// Migrate is a no-op.
func (*MemoryStore) Migrate(context.Context) error { return nil }

// Atomic runs fn against a journaling view of the store. Each successful
// write records its inverse; if fn fails the inverses run in reverse order.
// Writes are applied in place and are not hidden from concurrent readers
// while fn runs.
func (m *MemoryStore) Atomic(ctx context.Context, fn func(Store) error) error {
	tx := &memoryTx{MemoryStore: m}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// CreateListing stores a new listing with all units available.
func (m *MemoryStore) CreateListing(_ context.Context, l *domain.Listing) error {
	l.AvailableUnits = l.TotalUnits
	l.ReservedUnits = 0
	l.SoldUnits = 0
	l.UpdatedAt = l.CreatedAt

	e := &listingEntry{l: *l}
	e.l.Credential = slices.Clone(l.Credential)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[l.ID] = e
	return nil
}

// GetListing returns a copy of the listing.
func (m *MemoryStore) GetListing(_ context.Context, id string) (*domain.Listing, error) {
	e, ok := m.listing(id)
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	l := e.l
	l.Credential = slices.Clone(e.l.Credential)
	return &l, nil
}

// ListListings filters, sorts newest first and pages listings.
func (m *MemoryStore) ListListings(
	_ context.Context,
	q *ListingQuery,
) ([]domain.Listing, int, error) {
	m.mu.RLock()
	entries := make([]*listingEntry, 0, len(m.listings))
	for _, e := range m.listings {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	var matched []domain.Listing
	for _, e := range entries {
		e.mu.Lock()
		l := e.l
		e.mu.Unlock()

		if q.SellerID != nil && l.SellerID != *q.SellerID {
			continue
		}
		if q.Status != nil && l.Status != *q.Status {
			continue
		}
		l.Credential = nil
		matched = append(matched, l)
	}

	slices.SortFunc(matched, func(a, b domain.Listing) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	limit, offset := clampPage(q.Limit, q.Offset)
	return page(matched, limit, offset), len(matched), nil
}

// ReserveUnits moves units from available to reserved.
func (m *MemoryStore) ReserveUnits(_ context.Context, listingID string, units int) error {
	return m.withListing(listingID, func(l *domain.Listing) error {
		if units > l.AvailableUnits {
			return domain.ErrInsufficientInventory
		}
		l.AvailableUnits -= units
		l.ReservedUnits += units
		return nil
	})
}

// RestoreUnits moves units from reserved back to available.
func (m *MemoryStore) RestoreUnits(_ context.Context, listingID string, units int) error {
	return m.withListing(listingID, func(l *domain.Listing) error {
		if units > l.ReservedUnits {
			return domain.ErrInvalidRestore
		}
		l.ReservedUnits -= units
		l.AvailableUnits += units
		return nil
	})
}

// CommitUnits moves units from reserved to sold.
func (m *MemoryStore) CommitUnits(_ context.Context, listingID string, units int) error {
	return m.withListing(listingID, func(l *domain.Listing) error {
		if units > l.ReservedUnits {
			return domain.ErrInvalidRestore
		}
		l.ReservedUnits -= units
		l.SoldUnits += units
		return nil
	})
}

// uncommitUnits reverses CommitUnits during rollback.
func (m *MemoryStore) uncommitUnits(listingID string, units int) {
	_ = m.withListing(listingID, func(l *domain.Listing) error {
		l.SoldUnits -= units
		l.ReservedUnits += units
		return nil
	})
}

func (m *MemoryStore) withListing(id string, fn func(*domain.Listing) error) error {
	e, ok := m.listing(id)
	if !ok {
		return domain.ErrListingNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.l
	if err := fn(&next); err != nil {
		return err
	}
	if next.AvailableUnits == 0 {
		next.Status = domain.ListingSoldOut
	} else {
		next.Status = domain.ListingActive
	}
	next.UpdatedAt = time.Now()
	e.l = next
	return nil
}

func (m *MemoryStore) listing(id string) (*listingEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.listings[id]
	return e, ok
}

// InsertOrder stores a new order at version 1.
func (m *MemoryStore) InsertOrder(_ context.Context, o *domain.Order) error {
	o.Version = 1

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[o.ListingID]; !ok {
		return domain.ErrListingNotFound
	}
	m.orders[o.ID] = &orderEntry{o: o.Clone()}
	return nil
}

func (m *MemoryStore) deleteOrder(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
}

// GetOrder returns a copy of the order.
func (m *MemoryStore) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	e, ok := m.order(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.o.Clone(), nil
}

// ListOrders filters, sorts newest first and pages orders.
func (m *MemoryStore) ListOrders(_ context.Context, q *OrderQuery) ([]domain.Order, error) {
	matched := m.filterOrders(func(o *domain.Order) bool {
		if q.Participant != nil && !o.IsParticipant(*q.Participant) {
			return false
		}
		return q.State == nil || o.State == *q.State
	})

	slices.SortFunc(matched, func(a, b domain.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	limit, offset := clampPage(q.Limit, q.Offset)
	return page(matched, limit, offset), nil
}

// UpdateOrder replaces the order if the stored version matches.
func (m *MemoryStore) UpdateOrder(_ context.Context, o *domain.Order) error {
	e, ok := m.order(o.ID)
	if !ok {
		return domain.ErrOrderNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.o.Version != o.Version {
		return ErrConflict
	}
	o.Version++
	e.o = o.Clone()
	return nil
}

// ListExpiredOrders returns orders whose active window closed before now,
// in cursor order.
func (m *MemoryStore) ListExpiredOrders(
	_ context.Context,
	now time.Time,
	after ExpiryCursor,
	limit int,
) ([]domain.Order, error) {
	matched := m.filterOrders(func(o *domain.Order) bool {
		d := o.ActiveDeadline()
		if d == nil || !d.Before(now) {
			return false
		}
		return ExpiryKey(o).Compare(after) > 0
	})

	slices.SortFunc(matched, func(a, b domain.Order) int {
		return ExpiryKey(&a).Compare(ExpiryKey(&b))
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MemoryStore) filterOrders(keep func(*domain.Order) bool) []domain.Order {
	m.mu.RLock()
	entries := make([]*orderEntry, 0, len(m.orders))
	for _, e := range m.orders {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	var out []domain.Order
	for _, e := range entries {
		e.mu.Lock()
		o := e.o.Clone()
		e.mu.Unlock()
		if keep(o) {
			out = append(out, *o)
		}
	}
	return out
}

func (m *MemoryStore) order(id string) (*orderEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.orders[id]
	return e, ok
}

// InsertToken stores a new escrow token, one per order.
func (m *MemoryStore) InsertToken(_ context.Context, t *domain.EscrowToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[t.OrderID]; ok {
		return domain.ErrDuplicateToken
	}
	m.tokens[t.OrderID] = &tokenEntry{t: *t}
	return nil
}

func (m *MemoryStore) deleteToken(orderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, orderID)
}

// GetTokenByOrder returns a copy of the order's escrow token.
func (m *MemoryStore) GetTokenByOrder(
	_ context.Context,
	orderID string,
) (*domain.EscrowToken, error) {
	m.mu.RLock()
	e, ok := m.tokens[orderID]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.t
	return &t, nil
}

// ListTokensByBuyer returns the buyer's escrow tokens, newest first.
func (m *MemoryStore) ListTokensByBuyer(
	_ context.Context,
	buyerID string,
) ([]domain.EscrowToken, error) {
	m.mu.RLock()
	entries := make([]*tokenEntry, 0, len(m.tokens))
	for _, e := range m.tokens {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	var out []domain.EscrowToken
	for _, e := range entries {
		e.mu.Lock()
		t := e.t
		e.mu.Unlock()
		if t.BuyerID == buyerID {
			out = append(out, t)
		}
	}

	slices.SortFunc(out, func(a, b domain.EscrowToken) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// SetTokenStatus performs a compare-and-set on the token status.
func (m *MemoryStore) SetTokenStatus(
	_ context.Context,
	orderID string,
	from, to domain.TokenStatus,
	at time.Time,
) error {
	m.mu.RLock()
	e, ok := m.tokens[orderID]
	m.mu.RUnlock()
	if !ok {
		return domain.ErrTokenNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.t.Status != from {
		return ErrConflict
	}
	e.t.Status = to
	if to == domain.TokenReserved {
		e.t.SettledAt = nil
	} else {
		settled := at
		e.t.SettledAt = &settled
	}
	return nil
}

// InsertReview stores a review, one per order.
func (m *MemoryStore) InsertReview(_ context.Context, r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[r.OrderID]; ok {
		return domain.ErrDuplicateReview
	}
	m.reviews[r.OrderID] = *r
	return nil
}

func (m *MemoryStore) deleteReview(orderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reviews, orderID)
}

// ListReviewsBySeller returns the seller's most recent reviews.
func (m *MemoryStore) ListReviewsBySeller(
	_ context.Context,
	sellerID string,
	limit int,
) ([]domain.Review, error) {
	m.mu.RLock()
	var out []domain.Review
	for _, r := range m.reviews {
		if r.SellerID == sellerID {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Review) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SellerRatingStats returns the review count and score sum for a seller.
func (m *MemoryStore) SellerRatingStats(
	_ context.Context,
	sellerID string,
) (count int, sum int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reviews {
		if r.SellerID == sellerID {
			count++
			sum += r.Score
		}
	}
	return count, sum, nil
}

// AccountTotals tallies the user's orders against their token status.
func (m *MemoryStore) AccountTotals(
	_ context.Context,
	userID string,
) (*domain.AccountSummary, error) {
	sum := &domain.AccountSummary{UserID: userID}
	orders := m.filterOrders(func(o *domain.Order) bool { return o.IsParticipant(userID) })
	for i := range orders {
		o := &orders[i]
		status := m.tokenStatus(o.ID)
		if o.BuyerID == userID {
			tallyBuyer(&sum.Buyer, o, status)
		}
		if o.SellerID == userID {
			tallySeller(&sum.Seller, o, status)
		}
	}
	return sum, nil
}

// MarketplaceTotals scans every listing and order.
func (m *MemoryStore) MarketplaceTotals(
	_ context.Context,
	since time.Time,
	top int,
) (*domain.MarketplaceSummary, error) {
	out := &domain.MarketplaceSummary{Window: domain.WindowTotals{Since: since}}

	m.mu.RLock()
	listings := make([]*listingEntry, 0, len(m.listings))
	for _, e := range m.listings {
		listings = append(listings, e)
	}
	m.mu.RUnlock()
	for _, e := range listings {
		e.mu.Lock()
		active := e.l.Status == domain.ListingActive
		e.mu.Unlock()
		out.Totals.Listings++
		if active {
			out.Totals.ActiveListings++
		}
	}

	sellers := make(map[string]*domain.TopParticipant)
	buyers := make(map[string]*domain.TopParticipant)
	for _, o := range m.filterOrders(func(*domain.Order) bool { return true }) {
		paid := domain.Paid(o.State)
		recent := !o.CreatedAt.Before(since)

		out.Totals.Orders++
		switch {
		case paid:
			out.Totals.PaidOrders++
			out.Totals.GMV += o.Amount
		case o.State == domain.StateCreated:
			out.Totals.PendingOrders++
		}
		if o.Dispute.OpenedAt != nil {
			out.Totals.Disputes++
		}
		switch m.tokenStatus(o.ID) {
		case domain.TokenReleasedToSeller:
			out.Totals.Released++
		case domain.TokenReleasedToBuyer:
			out.Totals.Refunded++
		}

		if !recent {
			continue
		}
		out.Window.Orders++
		if paid {
			out.Window.PaidOrders++
			out.Window.GMV += o.Amount
			rank(sellers, o.SellerID, o.Amount)
			rank(buyers, o.BuyerID, o.Amount)
		}
	}

	out.TopSellers = topOf(sellers, top)
	out.TopBuyers = topOf(buyers, top)
	return out, nil
}

func (m *MemoryStore) tokenStatus(orderID string) domain.TokenStatus {
	m.mu.RLock()
	e, ok := m.tokens[orderID]
	m.mu.RUnlock()
	if !ok {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.t.Status
}

func tallyBuyer(b *domain.BuyerTotals, o *domain.Order, status domain.TokenStatus) {
	switch {
	case o.State == domain.StateCreated:
		b.Pending.Add(o.Amount)
	case domain.Paid(o.State):
		b.Paid.Add(o.Amount)
	}
	if status == domain.TokenReleasedToBuyer {
		b.Refunded.Add(o.Amount)
	}
}

func tallySeller(s *domain.SellerTotals, o *domain.Order, status domain.TokenStatus) {
	if !domain.Paid(o.State) {
		return
	}
	s.Sales.Add(o.Amount)
	switch status {
	case domain.TokenReserved:
		s.Held.Add(o.Amount)
	case domain.TokenReleasedToSeller:
		s.Released.Add(o.Amount)
	case domain.TokenReleasedToBuyer:
		s.Refunded.Add(o.Amount)
	}
}

func rank(by map[string]*domain.TopParticipant, userID string, amount int64) {
	p, ok := by[userID]
	if !ok {
		p = &domain.TopParticipant{UserID: userID}
		by[userID] = p
	}
	p.Orders++
	p.Amount += amount
}

// topOf orders participants by amount, highest first, ties by user id.
func topOf(by map[string]*domain.TopParticipant, top int) []domain.TopParticipant {
	out := make([]domain.TopParticipant, 0, len(by))
	for _, p := range by {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b domain.TopParticipant) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.UserID, b.UserID)
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

// memoryTx records an inverse for every successful write so Atomic can
// roll back. Reads go straight to the embedded store.
type memoryTx struct {
	*MemoryStore
	undo []func()
}

func (tx *memoryTx) record(fn func()) { tx.undo = append(tx.undo, fn) }

func (tx *memoryTx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

// Atomic inside a transaction joins it.
func (tx *memoryTx) Atomic(_ context.Context, fn func(Store) error) error {
	return fn(tx)
}

func (tx *memoryTx) CreateListing(ctx context.Context, l *domain.Listing) error {
	if err := tx.MemoryStore.CreateListing(ctx, l); err != nil {
		return err
	}
	id := l.ID
	tx.record(func() {
		tx.mu.Lock()
		defer tx.mu.Unlock()
		delete(tx.listings, id)
	})
	return nil
}

func (tx *memoryTx) ReserveUnits(ctx context.Context, listingID string, units int) error {
	if err := tx.MemoryStore.ReserveUnits(ctx, listingID, units); err != nil {
		return err
	}
	tx.record(func() { _ = tx.MemoryStore.RestoreUnits(ctx, listingID, units) })
	return nil
}

func (tx *memoryTx) RestoreUnits(ctx context.Context, listingID string, units int) error {
	if err := tx.MemoryStore.RestoreUnits(ctx, listingID, units); err != nil {
		return err
	}
	tx.record(func() { _ = tx.MemoryStore.ReserveUnits(ctx, listingID, units) })
	return nil
}

func (tx *memoryTx) CommitUnits(ctx context.Context, listingID string, units int) error {
	if err := tx.MemoryStore.CommitUnits(ctx, listingID, units); err != nil {
		return err
	}
	tx.record(func() { tx.uncommitUnits(listingID, units) })
	return nil
}

func (tx *memoryTx) InsertOrder(ctx context.Context, o *domain.Order) error {
	if err := tx.MemoryStore.InsertOrder(ctx, o); err != nil {
		return err
	}
	id := o.ID
	tx.record(func() { tx.deleteOrder(id) })
	return nil
}

func (tx *memoryTx) UpdateOrder(ctx context.Context, o *domain.Order) error {
	prev, err := tx.GetOrder(ctx, o.ID)
	if err != nil {
		return err
	}
	if prev.Version != o.Version {
		return ErrConflict
	}
	if err := tx.MemoryStore.UpdateOrder(ctx, o); err != nil {
		return err
	}
	written := o.Version
	tx.record(func() {
		e, ok := tx.order(prev.ID)
		if !ok {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.o.Version == written {
			e.o = prev
		}
	})
	return nil
}

func (tx *memoryTx) InsertToken(ctx context.Context, t *domain.EscrowToken) error {
	if err := tx.MemoryStore.InsertToken(ctx, t); err != nil {
		return err
	}
	orderID := t.OrderID
	tx.record(func() { tx.deleteToken(orderID) })
	return nil
}

func (tx *memoryTx) SetTokenStatus(
	ctx context.Context,
	orderID string,
	from, to domain.TokenStatus,
	at time.Time,
) error {
	if err := tx.MemoryStore.SetTokenStatus(ctx, orderID, from, to, at); err != nil {
		return err
	}
	tx.record(func() { _ = tx.MemoryStore.SetTokenStatus(ctx, orderID, to, from, at) })
	return nil
}

func (tx *memoryTx) InsertReview(ctx context.Context, r *domain.Review) error {
	if err := tx.MemoryStore.InsertReview(ctx, r); err != nil {
		return err
	}
	orderID := r.OrderID
	tx.record(func() { tx.deleteReview(orderID) })
	return nil
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*memoryTx)(nil)
	_ Store = (*PostgresStore)(nil)
)
