package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CyberSolo/UDAM/internal/escrow"
	"github.com/CyberSolo/UDAM/internal/inventory"
	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/notify"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// step describes one order transition.
type step struct {
	action domain.Action

	// authorize rejects callers who may not perform the action on o.
	authorize func(o *domain.Order) error

	// lazyExpiry applies an elapsed dispute or counter window before the
	// action is attempted.
	lazyExpiry bool

	// mutate fills in the fields the action sets. State and UpdatedAt are
	// already updated.
	mutate func(o *domain.Order, now time.Time)

	// settle runs inside the unit of work after the order row is updated.
	// Inventory restores must come last: the in-memory store can only undo
	// them on a best-effort basis.
	settle func(ctx context.Context, s store.Store, o *domain.Order, now time.Time) error

	event notify.EventKind
}

// transition loads the order and applies st, retrying when a concurrent
// writer bumped the version first. A retry re-reads the order, so a lost
// race surfaces as domain.ErrInvalidTransition.
func (eng *Engine) transition(ctx context.Context, orderID string, st *step) (*domain.Order, error) {
	for attempt := 1; ; attempt++ {
		cur, err := eng.store.GetOrder(ctx, orderID)
		if err != nil {
			return nil, fmt.Errorf("loading order %s: %w", orderID, err)
		}

		if st.authorize != nil {
			if err := st.authorize(cur); err != nil {
				return nil, err
			}
		}

		now := eng.now()
		var o *domain.Order

		if w, due := elapsedWindow(cur, now); st.lazyExpiry && due {
			o, err = eng.expire(ctx, cur, w, now)
			if err == nil {
				return eng.afterLazyExpiry(st, o, w)
			}
		} else {
			o, err = eng.apply(ctx, cur, st, now)
			if err == nil {
				return o, nil
			}
		}

		if !errors.Is(err, store.ErrConflict) {
			return nil, err
		}
		metrics.OrderConflictsTotal.Inc()
		if attempt >= eng.maxAttempts {
			return nil, fmt.Errorf("order %s: %d concurrent update attempts: %w", orderID, attempt, err)
		}
		eng.log.Debug("order version conflict, retrying",
			"order_id", orderID,
			"action", st.action,
			"attempt", attempt,
		)
	}
}

// apply performs one attempt of st against cur.
func (eng *Engine) apply(
	ctx context.Context,
	cur *domain.Order,
	st *step,
	now time.Time,
) (*domain.Order, error) {
	next, err := domain.Next(cur.State, st.action)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", cur.ID, err)
	}

	o := cur.Clone()
	o.State = next
	o.UpdatedAt = now
	if st.mutate != nil {
		st.mutate(o, now)
	}

	err = eng.store.Atomic(ctx, func(s store.Store) error {
		if err := s.UpdateOrder(ctx, o); err != nil {
			return err
		}
		if st.settle != nil {
			return st.settle(ctx, s, o, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(st.action), string(o.State)).Inc()
	if o.State == domain.StateResolved && o.Resolution != nil {
		metrics.DisputeDecisionsTotal.WithLabelValues(
			string(o.Resolution.Decision),
			string(o.Resolution.Source),
		).Inc()
	}

	eng.log.Info("order transitioned",
		"order_id", o.ID,
		"action", st.action,
		"from", cur.State,
		"to", o.State,
	)

	if st.event != "" {
		eng.publish(ctx, st.event, o)
	}
	return o, nil
}

func resolve(decision domain.Party, source domain.ResolutionSource) func(*domain.Order, time.Time) {
	return func(o *domain.Order, now time.Time) {
		o.Resolution = &domain.Resolution{
			Decision:   decision,
			Source:     source,
			ResolvedAt: now,
		}
	}
}

// payOut releases the token to target and settles the reserved units:
// committed when the seller is paid, restored when the buyer is refunded.
func payOut(target domain.Party) func(context.Context, store.Store, *domain.Order, time.Time) error {
	return func(ctx context.Context, s store.Store, o *domain.Order, now time.Time) error {
		if err := escrow.Release(ctx, s, o.ID, target, now); err != nil {
			return err
		}
		if target == domain.PartySeller {
			return inventory.Commit(ctx, s, o.ListingID, o.Units)
		}
		return inventory.Restore(ctx, s, o.ListingID, o.Units)
	}
}

func voidAndRestore(ctx context.Context, s store.Store, o *domain.Order, now time.Time) error {
	if err := escrow.Void(ctx, s, o.ID, now); err != nil {
		return err
	}
	return inventory.Restore(ctx, s, o.ListingID, o.Units)
}

func requireSeller(actor domain.Actor) func(*domain.Order) error {
	return func(o *domain.Order) error {
		if actor.UserID == "" || actor.UserID != o.SellerID {
			return fmt.Errorf("%w: only the seller may do this", domain.ErrForbidden)
		}
		return nil
	}
}

func requireBuyer(actor domain.Actor) func(*domain.Order) error {
	return func(o *domain.Order) error {
		if actor.UserID == "" || actor.UserID != o.BuyerID {
			return fmt.Errorf("%w: only the buyer may do this", domain.ErrForbidden)
		}
		return nil
	}
}

func requireParticipantOrAdmin(actor domain.Actor) func(*domain.Order) error {
	return func(o *domain.Order) error {
		if actor.Admin || o.IsParticipant(actor.UserID) {
			return nil
		}
		return fmt.Errorf("%w: not a participant of order %s", domain.ErrForbidden, o.ID)
	}
}
