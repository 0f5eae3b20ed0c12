// Package escrow manages the per-order escrow token: one RESERVED token is
// minted with each order and moves to exactly one terminal status when the
// order settles.
package escrow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// Mint creates the RESERVED token for o. It fails with
// domain.ErrDuplicateToken if the order already has one.
func Mint(
	ctx context.Context,
	s store.Store,
	o *domain.Order,
	now time.Time,
) (*domain.EscrowToken, error) {
	if o.Amount <= 0 {
		return nil, fmt.Errorf("%w: escrow amount must be positive", domain.ErrInvalidInput)
	}

	t := &domain.EscrowToken{
		ID:        uuid.NewString(),
		OrderID:   o.ID,
		BuyerID:   o.BuyerID,
		SellerID:  o.SellerID,
		Amount:    o.Amount,
		Status:    domain.TokenReserved,
		CreatedAt: now,
	}

	if err := s.InsertToken(ctx, t); err != nil {
		return nil, fmt.Errorf("minting token for order %s: %w", o.ID, err)
	}

	metrics.EscrowMintedTotal.Inc()
	return t, nil
}

// Release pays the order's token out to target. Repeating a successful
// release with the same target is a no-op; any other settled status fails
// with domain.ErrAlreadyReleased.
func Release(
	ctx context.Context,
	s store.Store,
	orderID string,
	target domain.Party,
	now time.Time,
) error {
	if !target.Valid() {
		return fmt.Errorf("%w: release target %q", domain.ErrInvalidInput, target)
	}
	return settle(ctx, s, orderID, domain.ReleaseStatus(target), now)
}

// Void cancels the order's token without moving funds. Repeating is a
// no-op; voiding a released token fails with domain.ErrAlreadyReleased.
func Void(ctx context.Context, s store.Store, orderID string, now time.Time) error {
	return settle(ctx, s, orderID, domain.TokenVoid, now)
}

// ListForBuyer returns the buyer's tokens, newest first.
func ListForBuyer(ctx context.Context, s store.Store, buyerID string) ([]domain.EscrowToken, error) {
	tokens, err := s.ListTokensByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("listing tokens for buyer %s: %w", buyerID, err)
	}
	if tokens == nil {
		tokens = []domain.EscrowToken{}
	}
	return tokens, nil
}

func settle(
	ctx context.Context,
	s store.Store,
	orderID string,
	to domain.TokenStatus,
	now time.Time,
) error {
	err := s.SetTokenStatus(ctx, orderID, domain.TokenReserved, to, now)
	if err == nil {
		recordSettlement(ctx, s, orderID, to)
		return nil
	}
	if !errors.Is(err, store.ErrConflict) {
		return fmt.Errorf("settling token for order %s: %w", orderID, err)
	}

	t, err := s.GetTokenByOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("settling token for order %s: %w", orderID, err)
	}
	if t.Status == to {
		return nil
	}
	return fmt.Errorf("%w: token for order %s is %s", domain.ErrAlreadyReleased, orderID, t.Status)
}

func recordSettlement(ctx context.Context, s store.Store, orderID string, status domain.TokenStatus) {
	metrics.EscrowSettlementsTotal.WithLabelValues(string(status)).Inc()
	if t, err := s.GetTokenByOrder(ctx, orderID); err == nil {
		metrics.EscrowSettledAmountTotal.WithLabelValues(string(status)).Add(float64(t.Amount))
	}
}
