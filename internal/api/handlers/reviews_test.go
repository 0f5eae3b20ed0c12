package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func TestReviewsHandler_Submit(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	s.mp.EXPECT().SubmitReview(mock.Anything, "o-1", buyer, 5, "instant keys").
		Return(&domain.Review{ID: "r-1", OrderID: "o-1", BuyerID: buyer.UserID, SellerID: seller.UserID, Score: 5}, nil).
		Once()
	s.mp.EXPECT().SubmitReview(mock.Anything, "o-1", buyer, 4, "").
		Return(nil, domain.ErrDuplicateReview).Once()

	resp := s.api.Post("/api/v1/orders/o-1/review",
		withBody(s.as(t, buyer.UserID), map[string]any{"score": 5, "comment": "instant keys"})...)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"id":"r-1"`)

	resp = s.api.Post("/api/v1/orders/o-1/review",
		withBody(s.as(t, buyer.UserID), map[string]any{"score": 4})...)
	require.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), `"code":"duplicate"`)

	resp = s.api.Post("/api/v1/orders/o-1/review", withBody(nil, map[string]any{"score": 4})...)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestReviewsHandler_SubmitInvalidScore(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	s.mp.EXPECT().SubmitReview(mock.Anything, "o-1", buyer, 9, "").
		Return(nil, domain.ErrInvalidScore).Once()

	resp := s.api.Post("/api/v1/orders/o-1/review",
		withBody(s.as(t, buyer.UserID), map[string]any{"score": 9})...)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
}

func TestReviewsHandler_Rating(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	s.mp.EXPECT().GetUserRating(mock.Anything, seller.UserID).Return(&domain.Rating{
		UserID:     seller.UserID,
		Count:      2,
		Mean:       4.5,
		HasRatings: true,
		Recent:     []domain.Review{{ID: "r-2", Score: 4}, {ID: "r-1", Score: 5}},
	}, nil).Once()

	resp := s.api.Get("/api/v1/users/seller-1/rating")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"mean":4.5`)
	assert.Contains(t, resp.Body.String(), `"has_ratings":true`)
}
