package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/CyberSolo/UDAM/internal/escrow"
	"github.com/CyberSolo/UDAM/internal/inventory"
	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/notify"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// CreateOrder reserves units of a listing for buyerID, freezes the unit
// price and mints the escrow token in one unit of work. If any step fails
// nothing is kept.
func (eng *Engine) CreateOrder(
	ctx context.Context,
	listingID, buyerID string,
	units int,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "CreateOrder",
		attribute.String("listing.id", listingID),
		attribute.Int("order.units", units),
	)
	defer end(&err)

	if buyerID == "" {
		return nil, fmt.Errorf("%w: buyer is required", domain.ErrForbidden)
	}
	if units <= 0 || units > inventory.MaxUnitsPerListing {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d",
			domain.ErrInvalidQuantity, inventory.MaxUnitsPerListing, units)
	}

	now := eng.now()
	err = eng.store.Atomic(ctx, func(s store.Store) error {
		l, err := s.GetListing(ctx, listingID)
		if err != nil {
			return fmt.Errorf("loading listing %s: %w", listingID, err)
		}
		if l.SellerID == buyerID {
			return fmt.Errorf("%w: sellers cannot buy their own listing", domain.ErrForbidden)
		}

		if err := inventory.Reserve(ctx, s, l.ID, units); err != nil {
			return err
		}

		o = &domain.Order{
			ID:        uuid.NewString(),
			ListingID: l.ID,
			BuyerID:   buyerID,
			SellerID:  l.SellerID,
			Units:     units,
			UnitPrice: l.PricePerUnit,
			Amount:    int64(units) * l.PricePerUnit,
			State:     domain.StateCreated,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if eng.autoConfirmLimit > 0 && o.Amount <= eng.autoConfirmLimit {
			o.State = domain.StateConfirmed
		}

		if err := s.InsertOrder(ctx, o); err != nil {
			return fmt.Errorf("inserting order: %w", err)
		}

		_, err = escrow.Mint(ctx, s, o, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	if o.State == domain.StateConfirmed {
		metrics.OrderTransitionsTotal.WithLabelValues(
			string(domain.ActionConfirm), string(o.State),
		).Inc()
	}

	eng.log.Info("order created",
		"order_id", o.ID,
		"listing_id", o.ListingID,
		"units", o.Units,
		"amount", o.Amount,
		"state", o.State,
	)
	return o, nil
}

// ConfirmOrder records the external payment signal for an order.
func (eng *Engine) ConfirmOrder(ctx context.Context, orderID string) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "ConfirmOrder", attribute.String("order.id", orderID))
	defer end(&err)

	return eng.transition(ctx, orderID, &step{action: domain.ActionConfirm})
}

// AcceptOrder lets the seller take on a confirmed order and starts the
// buyer's dispute window.
func (eng *Engine) AcceptOrder(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "AcceptOrder", attribute.String("order.id", orderID))
	defer end(&err)

	return eng.transition(ctx, orderID, &step{
		action:    domain.ActionAccept,
		authorize: requireSeller(actor),
		mutate: func(o *domain.Order, now time.Time) {
			deadline := now.Add(eng.disputeWindow)
			o.DisputeDeadline = &deadline
		},
		event: notify.EventOrderAccepted,
	})
}

// CancelOrder cancels an order that has not been accepted yet. Units go
// back to the listing and the token is voided.
func (eng *Engine) CancelOrder(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "CancelOrder", attribute.String("order.id", orderID))
	defer end(&err)

	return eng.transition(ctx, orderID, &step{
		action:    domain.ActionCancel,
		authorize: requireParticipantOrAdmin(actor),
		settle:    voidAndRestore,
		event:     notify.EventOrderCancelled,
	})
}

// CompleteOrder is the buyer's confirmation that the service was rendered.
// The token is paid to the seller and the units are sold.
func (eng *Engine) CompleteOrder(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "CompleteOrder", attribute.String("order.id", orderID))
	defer end(&err)

	return eng.transition(ctx, orderID, &step{
		action:     domain.ActionComplete,
		authorize:  requireBuyer(actor),
		lazyExpiry: true,
		mutate:     resolve(domain.PartySeller, domain.SourceBuyerConfirmed),
		settle:     payOut(domain.PartySeller),
		event:      notify.EventOrderCompleted,
	})
}

// GetOrder returns an order visible to its participants and admins.
func (eng *Engine) GetOrder(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
) (*domain.Order, error) {
	o, err := eng.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", orderID, err)
	}
	if err := requireParticipantOrAdmin(actor)(o); err != nil {
		return nil, err
	}
	return o, nil
}

// OrderFilter narrows ListOrders.
type OrderFilter struct {
	State  *domain.OrderState
	Limit  int
	Offset int
}

// ListOrders returns the orders where actor is buyer or seller, newest
// first.
func (eng *Engine) ListOrders(
	ctx context.Context,
	actor domain.Actor,
	f OrderFilter,
) ([]domain.Order, error) {
	if actor.UserID == "" {
		return nil, fmt.Errorf("%w: user required", domain.ErrForbidden)
	}

	orders, err := eng.store.ListOrders(ctx, &store.OrderQuery{
		Participant: &actor.UserID,
		State:       f.State,
		Limit:       f.Limit,
		Offset:      f.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// ListTokens returns the escrow tokens of orders the actor bought.
func (eng *Engine) ListTokens(ctx context.Context, actor domain.Actor) ([]domain.EscrowToken, error) {
	if actor.UserID == "" {
		return nil, fmt.Errorf("%w: user required", domain.ErrForbidden)
	}
	return escrow.ListForBuyer(ctx, eng.store, actor.UserID)
}
