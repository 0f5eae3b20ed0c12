package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// ReviewsHandler handles review submission and seller ratings.
type ReviewsHandler struct {
	svc ReputationService
}

// NewReviewsHandler creates a new ReviewsHandler.
func NewReviewsHandler(svc ReputationService) *ReviewsHandler {
	return &ReviewsHandler{svc: svc}
}

// SubmitReviewInput is the input for reviewing a settled order.
type SubmitReviewInput struct {
	ID   string `path:"id" doc:"Order UUID"`
	Body struct {
		Score   int    `json:"score"             doc:"Score from 1 to 5"`
		Comment string `json:"comment,omitempty" doc:"Optional comment" maxLength:"1000"`
	}
}

// ReviewOutput is the response carrying a review.
type ReviewOutput struct {
	Body domain.Review
}

// RatingInput addresses a user's rating.
type RatingInput struct {
	ID string `path:"id" doc:"User ID"`
}

// RatingOutput is the response carrying a rating.
type RatingOutput struct {
	Body domain.Rating
}

// Submit records the buyer's review.
func (h *ReviewsHandler) Submit(ctx context.Context, input *SubmitReviewInput) (*ReviewOutput, error) {
	actor, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	r, err := h.svc.SubmitReview(ctx, input.ID, actor, input.Body.Score, input.Body.Comment)
	if err != nil {
		return nil, apiError(err)
	}
	return &ReviewOutput{Body: *r}, nil
}

// Rating returns the aggregate rating a user earned as a seller.
func (h *ReviewsHandler) Rating(ctx context.Context, input *RatingInput) (*RatingOutput, error) {
	rating, err := h.svc.GetUserRating(ctx, input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	return &RatingOutput{Body: *rating}, nil
}

// RegisterReviewRoutes registers review and rating endpoints with the Huma API.
func RegisterReviewRoutes(api huma.API, h *ReviewsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-review",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders/{id}/review",
		Summary:       "Review an order",
		Description:   "Buyer scores a completed or resolved order. One review per order.",
		Tags:          []string{"reviews"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerSecurity,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
		},
	}, h.Submit)

	huma.Register(api, huma.Operation{
		OperationID: "get-user-rating",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/rating",
		Summary:     "Get a user's seller rating",
		Description: "Returns review count, mean score and the most recent reviews.",
		Tags:        []string{"reviews"},
	}, h.Rating)
}
