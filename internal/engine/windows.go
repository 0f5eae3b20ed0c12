package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/notify"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// window names a deadline that can elapse on an order.
type window string

const (
	windowDispute window = "dispute"
	windowCounter window = "counter"
)

// elapsedWindow reports which deadline, if any, has passed for o. An
// ACCEPTED order past its dispute deadline completes for the seller; a
// DISPUTED order past its counter deadline resolves for the buyer.
func elapsedWindow(o *domain.Order, now time.Time) (window, bool) {
	switch o.State {
	case domain.StateAccepted:
		if o.DisputeDeadline != nil && o.DisputeDeadline.Before(now) {
			return windowDispute, true
		}
	case domain.StateDisputed:
		if o.CounterDeadline != nil && o.CounterDeadline.Before(now) {
			return windowCounter, true
		}
	}
	return "", false
}

func expiryStep(w window, publish bool) *step {
	st := &step{action: domain.ActionExpire}
	if w == windowDispute {
		st.mutate = resolve(domain.PartySeller, domain.SourceWindowElapsed)
		st.settle = payOut(domain.PartySeller)
		st.event = notify.EventOrderCompleted
	} else {
		st.mutate = resolve(domain.PartyBuyer, domain.SourceCounterForfeit)
		st.settle = payOut(domain.PartyBuyer)
		st.event = notify.EventDisputeResolved
	}
	if !publish {
		st.event = ""
	}
	return st
}

func (eng *Engine) expire(
	ctx context.Context,
	cur *domain.Order,
	w window,
	now time.Time,
) (*domain.Order, error) {
	o, err := eng.apply(ctx, cur, expiryStep(w, true), now)
	if err != nil {
		return nil, err
	}
	metrics.WindowExpirationsTotal.WithLabelValues(string(w)).Inc()
	return o, nil
}

// afterLazyExpiry decides what the pre-empted call returns. Completing an
// order whose dispute window closed still satisfies the buyer's intent.
func (eng *Engine) afterLazyExpiry(st *step, o *domain.Order, w window) (*domain.Order, error) {
	if st.action == domain.ActionComplete && w == windowDispute {
		return o, nil
	}
	return nil, fmt.Errorf("%w: %s window of order %s has elapsed, order is now %s",
		domain.ErrWindowExpired, w, o.ID, o.State)
}

// SweepResult summarises one ExpireWindows pass.
type SweepResult struct {
	Scanned   int `json:"scanned"`
	Completed int `json:"completed"`
	Resolved  int `json:"resolved"`
	Skipped   int `json:"skipped"`
}

// ExpireWindows settles up to one batch of orders whose dispute or counter
// window has elapsed. Consecutive sweeps walk the due orders in deadline
// order and wrap around at the end, so orders that keep failing never
// starve the ones behind them. Skipped orders are retried on the next lap.
func (eng *Engine) ExpireWindows(ctx context.Context) (res SweepResult, err error) {
	start := time.Now()
	ctx, end := eng.startOp(ctx, "ExpireWindows")
	defer end(&err)
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	eng.sweepMu.Lock()
	defer eng.sweepMu.Unlock()

	now := eng.now()
	due, err := eng.store.ListExpiredOrders(ctx, now, eng.sweepCursor, eng.sweepBatch)
	if err != nil {
		return res, fmt.Errorf("listing expired orders: %w", err)
	}
	if len(due) == 0 && !eng.sweepCursor.IsZero() {
		eng.sweepCursor = store.ExpiryCursor{}
		due, err = eng.store.ListExpiredOrders(ctx, now, eng.sweepCursor, eng.sweepBatch)
		if err != nil {
			return res, fmt.Errorf("listing expired orders: %w", err)
		}
	}
	if len(due) < eng.sweepBatch {
		eng.sweepCursor = store.ExpiryCursor{}
	} else {
		eng.sweepCursor = store.ExpiryKey(&due[len(due)-1])
	}

	events := make([]notify.Event, 0, len(due))
	for i := range due {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Scanned++

		cur := &due[i]
		w, ok := elapsedWindow(cur, now)
		if !ok {
			res.Skipped++
			continue
		}

		st := expiryStep(w, false)
		o, err := eng.apply(ctx, cur, st, now)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrConflict), errors.Is(err, domain.ErrInvalidTransition):
			eng.log.Debug("skipping order changed during sweep", "order_id", cur.ID)
			res.Skipped++
			continue
		default:
			eng.log.Error("expiring order failed", "order_id", cur.ID, "window", w, "error", err)
			res.Skipped++
			continue
		}

		metrics.WindowExpirationsTotal.WithLabelValues(string(w)).Inc()
		if w == windowDispute {
			res.Completed++
			events = append(events, notify.EventFor(notify.EventOrderCompleted, o))
		} else {
			res.Resolved++
			events = append(events, notify.EventFor(notify.EventDisputeResolved, o))
		}
	}

	if res.Scanned > 0 {
		eng.log.Info("window sweep finished",
			"scanned", res.Scanned,
			"completed", res.Completed,
			"resolved", res.Resolved,
			"skipped", res.Skipped,
		)
	}
	eng.publishBatch(ctx, events, "window sweep")
	return res, nil
}
