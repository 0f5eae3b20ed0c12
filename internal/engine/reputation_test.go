package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/CyberSolo/UDAM/internal/store/mocks"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func (f *fixture) completedOrder(t *testing.T, units int) *domain.Order {
	t.Helper()
	o := f.acceptedOrder(t, units)
	o, err := f.eng.CompleteOrder(context.Background(), o.ID, buyerActor)
	require.NoError(t, err)
	return o
}

func TestReviewScenario(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	o := f.completedOrder(t, 1)

	r, err := f.eng.SubmitReview(ctx, o.ID, buyerActor, 4, "  fast keys  ")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Score)
	assert.Equal(t, "fast keys", r.Comment)
	assert.Equal(t, sellerActor.UserID, r.SellerID)
	assert.Equal(t, buyerActor.UserID, r.BuyerID)

	_, err = f.eng.SubmitReview(ctx, o.ID, buyerActor, 5, "")
	require.ErrorIs(t, err, domain.ErrDuplicateReview)
	assert.Equal(t, domain.CodeDuplicate, domain.ErrorCode(err))

	rating, err := f.eng.GetUserRating(ctx, sellerActor.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, rating.Count)
	assert.InDelta(t, 4.0, rating.Mean, 1e-9)
	assert.True(t, rating.HasRatings)
	require.Len(t, rating.Recent, 1)
	assert.Equal(t, r.ID, rating.Recent[0].ID)
}

func TestSubmitReview_ResolvedOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	o := f.disputedOrder(t, 1)
	_, err := f.eng.Adjudicate(ctx, o.ID, domain.PartyBuyer, adminActor)
	require.NoError(t, err)

	_, err = f.eng.SubmitReview(ctx, o.ID, buyerActor, 1, "never delivered")
	require.NoError(t, err)
}

func TestSubmitReview_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		settled bool
		actor   domain.Actor
		score   int
		comment string
		wantErr error
	}{
		{name: "score too low", settled: true, actor: buyerActor, score: 0, wantErr: domain.ErrInvalidScore},
		{name: "score too high", settled: true, actor: buyerActor, score: 6, wantErr: domain.ErrInvalidScore},
		{
			name:    "comment too long",
			settled: true,
			actor:   buyerActor,
			score:   3,
			comment: strings.Repeat("é", maxReviewCommentChars+1),
			wantErr: domain.ErrInvalidReview,
		},
		{name: "seller cannot review", settled: true, actor: sellerActor, score: 5, wantErr: domain.ErrForbidden},
		{name: "other buyer cannot review", settled: true, actor: otherBuyer, score: 5, wantErr: domain.ErrForbidden},
		{name: "order not settled", settled: false, actor: buyerActor, score: 5, wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			var o *domain.Order
			if tt.settled {
				o = f.completedOrder(t, 1)
			} else {
				o = f.acceptedOrder(t, 1)
			}

			_, err := f.eng.SubmitReview(context.Background(), o.ID, tt.actor, tt.score, tt.comment)
			require.ErrorIs(t, err, tt.wantErr)

			rating, err := f.eng.GetUserRating(context.Background(), sellerActor.UserID)
			require.NoError(t, err)
			assert.Zero(t, rating.Count)
		})
	}
}

func TestSubmitReview_CommentAtLimit(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	o := f.completedOrder(t, 1)

	r, err := f.eng.SubmitReview(context.Background(), o.ID, buyerActor, 2,
		strings.Repeat("é", maxReviewCommentChars))
	require.NoError(t, err)
	assert.Len(t, []rune(r.Comment), maxReviewCommentChars)
}

func TestSubmitReview_UnknownOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.eng.SubmitReview(context.Background(), "nope", buyerActor, 3, "")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetUserRating_Empty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rating, err := f.eng.GetUserRating(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", rating.UserID)
	assert.Zero(t, rating.Count)
	assert.Zero(t, rating.Mean)
	assert.False(t, rating.HasRatings)
	assert.NotNil(t, rating.Recent)
	assert.Empty(t, rating.Recent)
}

func TestGetUserRating_MeanAndRecentCap(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	l, err := f.eng.CreateListing(ctx, sellerActor, ListingInput{
		ServiceName: "bulk", PricePerUnit: 1, UnitDescription: "call", TotalUnits: 100,
	})
	require.NoError(t, err)

	scores := []int{5, 4, 3, 5, 4, 3, 5, 4, 3, 5, 1, 2}
	sum := 0
	var lastID string
	for _, s := range scores {
		o, err := f.eng.CreateOrder(ctx, l.ID, buyerActor.UserID, 1)
		require.NoError(t, err)
		_, err = f.eng.ConfirmOrder(ctx, o.ID)
		require.NoError(t, err)
		_, err = f.eng.AcceptOrder(ctx, o.ID, sellerActor)
		require.NoError(t, err)
		_, err = f.eng.CompleteOrder(ctx, o.ID, buyerActor)
		require.NoError(t, err)

		f.clock.Advance(time.Second)
		r, err := f.eng.SubmitReview(ctx, o.ID, buyerActor, s, "")
		require.NoError(t, err)
		sum += s
		lastID = r.ID
	}

	rating, err := f.eng.GetUserRating(ctx, sellerActor.UserID)
	require.NoError(t, err)
	assert.Equal(t, len(scores), rating.Count)
	assert.InDelta(t, float64(sum)/float64(len(scores)), rating.Mean, 1e-9)
	require.Len(t, rating.Recent, recentReviewsPerUser)
	assert.Equal(t, lastID, rating.Recent[0].ID, "most recent review first")
	assert.Equal(t, 2, rating.Recent[0].Score)

	// Ratings are per seller; the buyer has none.
	buyerRating, err := f.eng.GetUserRating(ctx, buyerActor.UserID)
	require.NoError(t, err)
	assert.Zero(t, buyerRating.Count)
}

func TestGetUserRating_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().SellerRatingStats(mock.Anything, "u-1").Return(0, 0, errors.New("timeout")).Once()

	eng := NewEngine(ms, nil, nil, WithLogger(quietLogger()))
	_, err := eng.GetUserRating(context.Background(), "u-1")
	require.Error(t, err)
	assert.Equal(t, domain.CodeInternal, domain.ErrorCode(err))
}
