package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const (
	defaultPoolSize = 10

	pgUniqueViolation = "23505"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// A PostgresStore handed to an Atomic callback is bound to the transaction
// and has no pool of its own.
type PostgresStore struct {
	pool *pgxpool.Pool
	db   dbtx
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // bounded by config validation
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool, db: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("ping inside transaction")
	}
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("migrate inside transaction")
	}
	return RunMigrations(ctx, s.pool)
}

// Atomic runs fn inside a database transaction. Nested calls reuse the
// enclosing transaction.
func (s *PostgresStore) Atomic(ctx context.Context, fn func(Store) error) error {
	if s.pool == nil {
		return fn(s)
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(&PostgresStore{db: tx})
	})
}

// CreateListing inserts a new listing with all units available.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"id":                l.ID,
		"seller_id":         l.SellerID,
		"service_name":      l.ServiceName,
		"price_per_unit":    l.PricePerUnit,
		"unit_description":  l.UnitDescription,
		"endpoint_url":      l.EndpointURL,
		"total_units":       l.TotalUnits,
		"available_units":   l.TotalUnits,
		"status":            string(l.Status),
		"credential_sealed": l.Credential,
		"created_at":        l.CreatedAt,
	}

	if _, err := s.db.Exec(ctx, queryInsertListing, args); err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}

	l.AvailableUnits = l.TotalUnits
	l.ReservedUnits = 0
	l.SoldUnits = 0
	l.UpdatedAt = l.CreatedAt
	return nil
}

// GetListing retrieves a listing by ID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := scanListing(s.db.QueryRow(ctx, queryGetListingByID, id), l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting listing: %w", err)
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	q *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// ReserveUnits atomically moves units from available to reserved.
func (s *PostgresStore) ReserveUnits(ctx context.Context, listingID string, units int) error {
	return s.adjustUnits(ctx, queryReserveUnits, listingID, units, domain.ErrInsufficientInventory)
}

// RestoreUnits atomically moves units from reserved back to available.
func (s *PostgresStore) RestoreUnits(ctx context.Context, listingID string, units int) error {
	return s.adjustUnits(ctx, queryRestoreUnits, listingID, units, domain.ErrInvalidRestore)
}

// CommitUnits atomically moves units from reserved to sold.
func (s *PostgresStore) CommitUnits(ctx context.Context, listingID string, units int) error {
	return s.adjustUnits(ctx, queryCommitUnits, listingID, units, domain.ErrInvalidRestore)
}

// adjustUnits runs a conditional inventory update. When no row matched it
// distinguishes a missing listing from a failed condition.
func (s *PostgresStore) adjustUnits(
	ctx context.Context,
	query string,
	listingID string,
	units int,
	condErr error,
) error {
	tag, err := s.db.Exec(ctx, query, listingID, units)
	if err != nil {
		return fmt.Errorf("updating listing units: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	exists, err := s.exists(ctx, queryListingExists, listingID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrListingNotFound
	}
	return condErr
}

// InsertOrder inserts a new order at version 1.
func (s *PostgresStore) InsertOrder(ctx context.Context, o *domain.Order) error {
	args := pgx.NamedArgs{
		"id":         o.ID,
		"listing_id": o.ListingID,
		"buyer_id":   o.BuyerID,
		"seller_id":  o.SellerID,
		"units":      o.Units,
		"unit_price": o.UnitPrice,
		"amount":     o.Amount,
		"state":      string(o.State),
		"created_at": o.CreatedAt,
		"updated_at": o.UpdatedAt,
	}

	if _, err := s.db.Exec(ctx, queryInsertOrder, args); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	o.Version = 1
	return nil
}

// GetOrder retrieves an order by ID.
func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o := &domain.Order{}
	err := scanOrder(s.db.QueryRow(ctx, queryGetOrderByID, id), o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return o, nil
}

// ListOrders queries orders with optional filters, newest first.
func (s *PostgresStore) ListOrders(ctx context.Context, q *OrderQuery) ([]domain.Order, error) {
	dataSQL, args := q.ToSQL()
	return s.queryOrders(ctx, dataSQL, args...)
}

// UpdateOrder persists the order if its version is unchanged.
func (s *PostgresStore) UpdateOrder(ctx context.Context, o *domain.Order) error {
	args := pgx.NamedArgs{
		"id":                  o.ID,
		"version":             o.Version,
		"state":               string(o.State),
		"dispute_reason":      o.Dispute.Reason,
		"dispute_evidence":    o.Dispute.Evidence,
		"dispute_opened_at":   o.Dispute.OpenedAt,
		"counter_reason":      o.Dispute.CounterReason,
		"counter_evidence":    o.Dispute.CounterEvidence,
		"countered_at":        o.Dispute.CounteredAt,
		"dispute_deadline":    o.DisputeDeadline,
		"counter_deadline":    o.CounterDeadline,
		"resolution_decision": "",
		"resolution_source":   "",
		"resolved_at":         (*time.Time)(nil),
		"updated_at":          o.UpdatedAt,
	}
	if r := o.Resolution; r != nil {
		args["resolution_decision"] = string(r.Decision)
		args["resolution_source"] = string(r.Source)
		args["resolved_at"] = r.ResolvedAt
	}

	var version int
	err := s.db.QueryRow(ctx, queryUpdateOrder, args).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		exists, existsErr := s.exists(ctx, queryOrderExists, o.ID)
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return domain.ErrOrderNotFound
		}
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	o.Version = version
	return nil
}

// ListExpiredOrders returns orders whose active window closed before now,
// in cursor order.
func (s *PostgresStore) ListExpiredOrders(
	ctx context.Context,
	now time.Time,
	after ExpiryCursor,
	limit int,
) ([]domain.Order, error) {
	return s.queryOrders(ctx, queryListExpiredOrders, now, after.DueAt, after.OrderID, limit)
}

// InsertToken inserts a new escrow token. A second token for the same
// order fails with domain.ErrDuplicateToken.
func (s *PostgresStore) InsertToken(ctx context.Context, t *domain.EscrowToken) error {
	args := pgx.NamedArgs{
		"id":         t.ID,
		"order_id":   t.OrderID,
		"buyer_id":   t.BuyerID,
		"seller_id":  t.SellerID,
		"amount":     t.Amount,
		"status":     string(t.Status),
		"created_at": t.CreatedAt,
	}

	if _, err := s.db.Exec(ctx, queryInsertToken, args); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateToken
		}
		return fmt.Errorf("inserting escrow token: %w", err)
	}
	return nil
}

// GetTokenByOrder retrieves the escrow token for an order.
func (s *PostgresStore) GetTokenByOrder(
	ctx context.Context,
	orderID string,
) (*domain.EscrowToken, error) {
	t := &domain.EscrowToken{}
	err := scanToken(s.db.QueryRow(ctx, queryGetTokenByOrder, orderID), t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting escrow token: %w", err)
	}
	return t, nil
}

// ListTokensByBuyer returns every escrow token held for a buyer, newest first.
func (s *PostgresStore) ListTokensByBuyer(
	ctx context.Context,
	buyerID string,
) ([]domain.EscrowToken, error) {
	rows, err := s.db.Query(ctx, queryListTokensByBuyer, buyerID)
	if err != nil {
		return nil, fmt.Errorf("querying escrow tokens: %w", err)
	}
	defer rows.Close()

	var tokens []domain.EscrowToken
	for rows.Next() {
		var t domain.EscrowToken
		if err := scanToken(rows, &t); err != nil {
			return nil, fmt.Errorf("scanning escrow token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

// SetTokenStatus performs a compare-and-set on the token status.
func (s *PostgresStore) SetTokenStatus(
	ctx context.Context,
	orderID string,
	from, to domain.TokenStatus,
	at time.Time,
) error {
	tag, err := s.db.Exec(ctx, querySetTokenStatus, orderID, string(from), string(to), at)
	if err != nil {
		return fmt.Errorf("updating escrow token: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	exists, err := s.exists(ctx, queryTokenExists, orderID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTokenNotFound
	}
	return ErrConflict
}

// InsertReview inserts a review. A second review for the same order fails
// with domain.ErrDuplicateReview.
func (s *PostgresStore) InsertReview(ctx context.Context, r *domain.Review) error {
	args := pgx.NamedArgs{
		"id":         r.ID,
		"order_id":   r.OrderID,
		"buyer_id":   r.BuyerID,
		"seller_id":  r.SellerID,
		"score":      r.Score,
		"comment":    r.Comment,
		"created_at": r.CreatedAt,
	}

	if _, err := s.db.Exec(ctx, queryInsertReview, args); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReview
		}
		return fmt.Errorf("inserting review: %w", err)
	}
	return nil
}

// ListReviewsBySeller returns the most recent reviews for a seller.
func (s *PostgresStore) ListReviewsBySeller(
	ctx context.Context,
	sellerID string,
	limit int,
) ([]domain.Review, error) {
	rows, err := s.db.Query(ctx, queryListReviewsBySeller, sellerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var r domain.Review
		if err := rows.Scan(
			&r.ID, &r.OrderID, &r.BuyerID, &r.SellerID,
			&r.Score, &r.Comment, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// SellerRatingStats returns the review count and score sum for a seller.
func (s *PostgresStore) SellerRatingStats(
	ctx context.Context,
	sellerID string,
) (count int, sum int, err error) {
	if err := s.db.QueryRow(ctx, querySellerRatingStats, sellerID).Scan(&count, &sum); err != nil {
		return 0, 0, fmt.Errorf("aggregating reviews: %w", err)
	}
	return count, sum, nil
}

// AccountTotals aggregates the user's orders as buyer and as seller.
func (s *PostgresStore) AccountTotals(
	ctx context.Context,
	userID string,
) (*domain.AccountSummary, error) {
	sum := &domain.AccountSummary{UserID: userID}
	b, sl := &sum.Buyer, &sum.Seller
	if err := s.db.QueryRow(ctx, queryAccountTotals, userID).Scan(
		&b.Paid.Count, &b.Paid.Amount,
		&b.Pending.Count, &b.Pending.Amount,
		&b.Refunded.Count, &b.Refunded.Amount,
		&sl.Sales.Count, &sl.Sales.Amount,
		&sl.Held.Count, &sl.Held.Amount,
		&sl.Released.Count, &sl.Released.Amount,
		&sl.Refunded.Count, &sl.Refunded.Amount,
	); err != nil {
		return nil, fmt.Errorf("aggregating account totals: %w", err)
	}
	return sum, nil
}

// MarketplaceTotals aggregates listings and orders across the marketplace.
func (s *PostgresStore) MarketplaceTotals(
	ctx context.Context,
	since time.Time,
	top int,
) (*domain.MarketplaceSummary, error) {
	out := &domain.MarketplaceSummary{Window: domain.WindowTotals{Since: since}}
	t, w := &out.Totals, &out.Window

	if err := s.db.QueryRow(ctx, queryListingTotals).Scan(&t.Listings, &t.ActiveListings); err != nil {
		return nil, fmt.Errorf("aggregating listings: %w", err)
	}
	if err := s.db.QueryRow(ctx, queryOrderTotals, since).Scan(
		&t.Orders, &t.PaidOrders, &t.PendingOrders, &t.Disputes,
		&t.Released, &t.Refunded, &t.GMV,
		&w.Orders, &w.PaidOrders, &w.GMV,
	); err != nil {
		return nil, fmt.Errorf("aggregating orders: %w", err)
	}

	var err error
	if out.TopSellers, err = s.topParticipants(ctx, queryTopSellers, since, top); err != nil {
		return nil, err
	}
	if out.TopBuyers, err = s.topParticipants(ctx, queryTopBuyers, since, top); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) topParticipants(
	ctx context.Context,
	query string,
	since time.Time,
	top int,
) ([]domain.TopParticipant, error) {
	rows, err := s.db.Query(ctx, query, since, top)
	if err != nil {
		return nil, fmt.Errorf("ranking participants: %w", err)
	}
	defer rows.Close()

	out := []domain.TopParticipant{}
	for rows.Next() {
		var p domain.TopParticipant
		if err := rows.Scan(&p.UserID, &p.Orders, &p.Amount); err != nil {
			return nil, fmt.Errorf("scanning participant: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) exists(ctx context.Context, query string, id string) (bool, error) {
	var ok bool
	if err := s.db.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking existence: %w", err)
	}
	return ok, nil
}

// queryOrders is a helper for order queries.
func (s *PostgresStore) queryOrders(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Order, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.SellerID, &l.ServiceName, &l.PricePerUnit, &l.UnitDescription, &l.EndpointURL,
		&l.TotalUnits, &l.AvailableUnits, &l.ReservedUnits, &l.SoldUnits, &l.Status,
		&l.Credential, &l.CreatedAt, &l.UpdatedAt,
	)
}

func scanOrder(row scannable, o *domain.Order) error {
	var (
		decision, source string
		resolvedAt       *time.Time
	)
	if err := row.Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID,
		&o.Units, &o.UnitPrice, &o.Amount, &o.State,
		&o.Dispute.Reason, &o.Dispute.Evidence, &o.Dispute.OpenedAt,
		&o.Dispute.CounterReason, &o.Dispute.CounterEvidence, &o.Dispute.CounteredAt,
		&o.DisputeDeadline, &o.CounterDeadline,
		&decision, &source, &resolvedAt,
		&o.Version, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return err
	}

	if decision != "" {
		o.Resolution = &domain.Resolution{
			Decision: domain.Party(decision),
			Source:   domain.ResolutionSource(source),
		}
		if resolvedAt != nil {
			o.Resolution.ResolvedAt = *resolvedAt
		}
	}
	return nil
}

func scanToken(row scannable, t *domain.EscrowToken) error {
	return row.Scan(
		&t.ID, &t.OrderID, &t.BuyerID, &t.SellerID,
		&t.Amount, &t.Status, &t.CreatedAt, &t.SettledAt,
	)
}
