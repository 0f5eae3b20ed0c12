package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const (
	defaultSummaryDays = 30
	maxSummaryDays     = 365
	topParticipants    = 10
)

// AccountSummary totals userID's orders as buyer and as seller. An empty
// userID means the caller. Only admins may read someone else's summary.
func (eng *Engine) AccountSummary(
	ctx context.Context,
	actor domain.Actor,
	userID string,
) (s *domain.AccountSummary, err error) {
	if userID == "" {
		userID = actor.UserID
	}
	ctx, end := eng.startOp(ctx, "AccountSummary", attribute.String("user.id", userID))
	defer end(&err)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if userID != actor.UserID && !actor.Admin {
		return nil, fmt.Errorf("%w: summaries of other users need admin capability", domain.ErrForbidden)
	}

	s, err = eng.store.AccountTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading account totals for %s: %w", userID, err)
	}
	return s, nil
}

// MarketplaceSummary returns marketplace-wide totals plus activity and top
// participants over the last days days. Zero days means 30.
func (eng *Engine) MarketplaceSummary(
	ctx context.Context,
	actor domain.Actor,
	days int,
) (s *domain.MarketplaceSummary, err error) {
	if days == 0 {
		days = defaultSummaryDays
	}
	ctx, end := eng.startOp(ctx, "MarketplaceSummary", attribute.Int("summary.days", days))
	defer end(&err)

	if !actor.Admin {
		return nil, fmt.Errorf("%w: marketplace summary needs admin capability", domain.ErrForbidden)
	}
	if days < 1 || days > maxSummaryDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d, got %d",
			domain.ErrInvalidInput, maxSummaryDays, days)
	}

	now := eng.now()
	since := now.Add(-time.Duration(days) * 24 * time.Hour)
	s, err = eng.store.MarketplaceTotals(ctx, since, topParticipants)
	if err != nil {
		return nil, fmt.Errorf("loading marketplace totals: %w", err)
	}
	s.Window.Days = days
	s.GeneratedAt = now
	if s.TopSellers == nil {
		s.TopSellers = []domain.TopParticipant{}
	}
	if s.TopBuyers == nil {
		s.TopBuyers = []domain.TopParticipant{}
	}
	return s, nil
}
