package handlers_test

import (
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/api/handlers"
	"github.com/CyberSolo/UDAM/internal/api/handlers/mocks"
	"github.com/CyberSolo/UDAM/internal/auth"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const testAdminToken = "ops-capability-token"

var (
	seller = domain.Actor{UserID: "seller-1"}
	buyer  = domain.Actor{UserID: "buyer-1"}
	admin  = domain.Actor{UserID: auth.AdminUserID, Admin: true}
)

type testServer struct {
	api    humatest.TestAPI
	mp     *mocks.MockMarketplace
	tokens *auth.Tokens
}

// newTestServer registers every route against a mock marketplace behind
// the real authenticator.
func newTestServer(t *testing.T, devConfirm bool) *testServer {
	t.Helper()

	tokens, err := auth.NewTokens("handler-test-secret-0123", "udam", time.Hour)
	require.NoError(t, err)

	mp := mocks.NewMockMarketplace(t)

	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewAuthenticator(tokens, testAdminToken).Middleware(api))

	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(mp))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(mp), devConfirm)
	handlers.RegisterDisputeRoutes(api, handlers.NewDisputesHandler(mp))
	handlers.RegisterReviewRoutes(api, handlers.NewReviewsHandler(mp))
	handlers.RegisterSummaryRoutes(api, handlers.NewSummaryHandler(mp))
	handlers.RegisterAdminRoutes(api, handlers.NewAdminHandler(mp))

	return &testServer{api: api, mp: mp, tokens: tokens}
}

// as returns the request header args authenticating userID.
func (s *testServer) as(t *testing.T, userID string) []any {
	t.Helper()
	signed, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return []any{"Authorization: Bearer " + signed}
}

func asAdmin() []any {
	return []any{auth.AdminTokenHeader + ": " + testAdminToken}
}

func withBody(headers []any, body any) []any {
	return append(append([]any{}, headers...), body)
}

func sampleOrder(state domain.OrderState) *domain.Order {
	return &domain.Order{
		ID:        "o-1",
		ListingID: "l-1",
		BuyerID:   buyer.UserID,
		SellerID:  seller.UserID,
		Units:     4,
		UnitPrice: 2,
		Amount:    8,
		State:     state,
	}
}
