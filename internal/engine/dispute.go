package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/notify"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// Claim is the reason and evidence behind a dispute or counter.
type Claim struct {
	Reason   string
	Evidence string
}

func (c Claim) normalize() (Claim, error) {
	out := Claim{
		Reason:   strings.TrimSpace(c.Reason),
		Evidence: strings.TrimSpace(c.Evidence),
	}
	if out.Reason == "" || out.Evidence == "" {
		return out, fmt.Errorf("%w: reason and evidence are required", domain.ErrInvalidDispute)
	}
	if utf8.RuneCountInString(out.Reason) > maxDisputeTextLength ||
		utf8.RuneCountInString(out.Evidence) > maxDisputeTextLength {
		return out, fmt.Errorf("%w: reason and evidence are limited to %d characters",
			domain.ErrInvalidDispute, maxDisputeTextLength)
	}
	return out, nil
}

// OpenDispute lets the buyer contest an accepted order while its dispute
// window is open. It starts the seller's counter window.
func (eng *Engine) OpenDispute(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
	claim Claim,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "OpenDispute", attribute.String("order.id", orderID))
	defer end(&err)

	claim, err = claim.normalize()
	if err != nil {
		return nil, err
	}

	o, err = eng.transition(ctx, orderID, &step{
		action:     domain.ActionDispute,
		authorize:  requireBuyer(actor),
		lazyExpiry: true,
		mutate: func(o *domain.Order, now time.Time) {
			opened := now
			deadline := now.Add(eng.counterWindow)
			o.Dispute.Reason = claim.Reason
			o.Dispute.Evidence = claim.Evidence
			o.Dispute.OpenedAt = &opened
			o.CounterDeadline = &deadline
		},
		event: notify.EventDisputeOpened,
	})
	if err != nil {
		return nil, err
	}

	metrics.DisputesOpenedTotal.Inc()
	return o, nil
}

// OpenCounter records the seller's answer to a dispute. Once the counter
// window has elapsed the dispute is forfeited to the buyer and the call
// fails with domain.ErrWindowExpired.
func (eng *Engine) OpenCounter(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
	claim Claim,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "OpenCounter", attribute.String("order.id", orderID))
	defer end(&err)

	claim, err = claim.normalize()
	if err != nil {
		return nil, err
	}

	return eng.transition(ctx, orderID, &step{
		action:     domain.ActionCounter,
		authorize:  requireSeller(actor),
		lazyExpiry: true,
		mutate: func(o *domain.Order, now time.Time) {
			countered := now
			o.Dispute.CounterReason = claim.Reason
			o.Dispute.CounterEvidence = claim.Evidence
			o.Dispute.CounteredAt = &countered
		},
		event: notify.EventDisputeCounter,
	})
}

// Adjudicate settles a disputed order. The decision is final: BUYER refunds
// the token and restores the units, SELLER pays the token out and sells
// them. Only admins may adjudicate.
func (eng *Engine) Adjudicate(
	ctx context.Context,
	orderID string,
	decision domain.Party,
	actor domain.Actor,
) (o *domain.Order, err error) {
	ctx, end := eng.startOp(ctx, "Adjudicate",
		attribute.String("order.id", orderID),
		attribute.String("dispute.decision", string(decision)),
	)
	defer end(&err)

	if !actor.Admin {
		return nil, fmt.Errorf("%w: adjudication requires admin capability", domain.ErrForbidden)
	}
	if !decision.Valid() {
		return nil, fmt.Errorf("%w: decision must be BUYER or SELLER, got %q",
			domain.ErrInvalidInput, decision)
	}

	return eng.transition(ctx, orderID, &step{
		action:     domain.ActionAdjudicate,
		lazyExpiry: true,
		mutate:     resolve(decision, domain.SourceAdjudicated),
		settle:     payOut(decision),
		event:      notify.EventDisputeResolved,
	})
}
