package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/CyberSolo/UDAM/internal/metrics"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// SubmitReview records the buyer's score for a settled order. Each order
// takes at most one review.
func (eng *Engine) SubmitReview(
	ctx context.Context,
	orderID string,
	actor domain.Actor,
	score int,
	comment string,
) (r *domain.Review, err error) {
	ctx, end := eng.startOp(ctx, "SubmitReview",
		attribute.String("order.id", orderID),
		attribute.Int("review.score", score),
	)
	defer end(&err)

	if score < domain.MinScore || score > domain.MaxScore {
		return nil, fmt.Errorf("%w: must be between %d and %d, got %d",
			domain.ErrInvalidScore, domain.MinScore, domain.MaxScore, score)
	}
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > maxReviewCommentChars {
		return nil, fmt.Errorf("%w: comment is limited to %d characters",
			domain.ErrInvalidReview, maxReviewCommentChars)
	}

	o, err := eng.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", orderID, err)
	}
	if err := requireBuyer(actor)(o); err != nil {
		return nil, err
	}
	if !o.State.Reviewable() {
		return nil, fmt.Errorf("%w: order %s is %s, reviews need a settled order",
			domain.ErrInvalidTransition, o.ID, o.State)
	}

	r = &domain.Review{
		ID:        uuid.NewString(),
		OrderID:   o.ID,
		BuyerID:   o.BuyerID,
		SellerID:  o.SellerID,
		Score:     score,
		Comment:   comment,
		CreatedAt: eng.now(),
	}
	if err := eng.store.InsertReview(ctx, r); err != nil {
		return nil, fmt.Errorf("saving review for order %s: %w", o.ID, err)
	}

	metrics.ReviewsSubmittedTotal.Inc()
	metrics.ReviewScores.Observe(float64(score))
	eng.log.Info("review submitted", "order_id", o.ID, "seller_id", o.SellerID, "score", score)
	return r, nil
}

// GetUserRating aggregates the reviews userID received as a seller. A user
// without reviews gets an empty rating, not an error.
func (eng *Engine) GetUserRating(ctx context.Context, userID string) (*domain.Rating, error) {
	count, sum, err := eng.store.SellerRatingStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading rating stats for %s: %w", userID, err)
	}

	rating := &domain.Rating{
		UserID: userID,
		Count:  count,
		Recent: []domain.Review{},
	}
	if count == 0 {
		return rating, nil
	}

	rating.HasRatings = true
	rating.Mean = float64(sum) / float64(count)

	recent, err := eng.store.ListReviewsBySeller(ctx, userID, recentReviewsPerUser)
	if err != nil {
		return nil, fmt.Errorf("loading recent reviews for %s: %w", userID, err)
	}
	if recent != nil {
		rating.Recent = recent
	}
	return rating, nil
}
