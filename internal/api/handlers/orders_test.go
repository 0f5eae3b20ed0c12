package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/api/handlers/mocks"
	"github.com/CyberSolo/UDAM/internal/engine"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func TestOrdersHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		anonymous  bool
		body       map[string]any
		setupMock  func(*mocks.MockMarketplace)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created for the caller",
			body: map[string]any{"listing_id": "l-1", "units": 4},
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().CreateOrder(mock.Anything, "l-1", buyer.UserID, 4).
					Return(sampleOrder(domain.StateCreated), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"state":"CREATED"`,
		},
		{
			name:       "anonymous",
			anonymous:  true,
			body:       map[string]any{"listing_id": "l-1", "units": 4},
			setupMock:  func(*mocks.MockMarketplace) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "zero units",
			body:       map[string]any{"listing_id": "l-1", "units": 0},
			setupMock:  func(*mocks.MockMarketplace) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "insufficient inventory",
			body: map[string]any{"listing_id": "l-1", "units": 4},
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().CreateOrder(mock.Anything, "l-1", buyer.UserID, 4).
					Return(nil, domain.ErrInsufficientInventory).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"insufficient_inventory"`,
		},
		{
			name: "self purchase",
			body: map[string]any{"listing_id": "l-1", "units": 4},
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().CreateOrder(mock.Anything, "l-1", buyer.UserID, 4).
					Return(nil, domain.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t, false)
			tt.setupMock(s.mp)

			var headers []any
			if !tt.anonymous {
				headers = s.as(t, buyer.UserID)
			}

			resp := s.api.Post("/api/v1/orders", withBody(headers, tt.body)...)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOrdersHandler_List(t *testing.T) {
	t.Parallel()

	disputed := domain.StateDisputed

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockMarketplace)
		wantStatus int
		wantBody   string
	}{
		{
			name: "defaults",
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().ListOrders(mock.Anything, buyer, engine.OrderFilter{Limit: 50}).
					Return([]domain.Order{*sampleOrder(domain.StateAccepted)}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":50`,
		},
		{
			name:  "state filter",
			query: "?state=DISPUTED&limit=5&offset=10",
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().ListOrders(mock.Anything, buyer, engine.OrderFilter{State: &disputed, Limit: 5, Offset: 10}).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[]`,
		},
		{
			name:       "unknown state",
			query:      "?state=SHIPPED",
			setupMock:  func(*mocks.MockMarketplace) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `unknown order state`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t, false)
			tt.setupMock(s.mp)

			resp := s.api.Get("/api/v1/orders"+tt.query, s.as(t, buyer.UserID)...)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOrdersHandler_Get(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	s.mp.EXPECT().GetOrder(mock.Anything, "o-1", seller).Return(sampleOrder(domain.StateConfirmed), nil).Once()
	s.mp.EXPECT().GetOrder(mock.Anything, "o-1", domain.Actor{UserID: "stranger"}).
		Return(nil, domain.ErrForbidden).Once()

	resp := s.api.Get("/api/v1/orders/o-1", s.as(t, seller.UserID)...)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"amount":8`)

	resp = s.api.Get("/api/v1/orders/o-1", s.as(t, "stranger")...)
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = s.api.Get("/api/v1/orders/o-1")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestOrdersHandler_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		caller     domain.Actor
		setupMock  func(*mocks.MockMarketplace)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "accept",
			path:   "/api/v1/orders/o-1/accept",
			caller: seller,
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().AcceptOrder(mock.Anything, "o-1", seller).
					Return(sampleOrder(domain.StateAccepted), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"ACCEPTED"`,
		},
		{
			name:   "accept twice",
			path:   "/api/v1/orders/o-1/accept",
			caller: seller,
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().AcceptOrder(mock.Anything, "o-1", seller).
					Return(nil, domain.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"invalid_transition"`,
		},
		{
			name:   "cancel",
			path:   "/api/v1/orders/o-1/cancel",
			caller: buyer,
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().CancelOrder(mock.Anything, "o-1", buyer).
					Return(sampleOrder(domain.StateCancelled), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"CANCELLED"`,
		},
		{
			name:   "complete",
			path:   "/api/v1/orders/o-1/complete",
			caller: buyer,
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().CompleteOrder(mock.Anything, "o-1", buyer).
					Return(sampleOrder(domain.StateCompleted), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"COMPLETED"`,
		},
		{
			name:   "complete unknown order",
			path:   "/api/v1/orders/o-9/complete",
			caller: buyer,
			setupMock: func(m *mocks.MockMarketplace) {
				m.EXPECT().CompleteOrder(mock.Anything, "o-9", buyer).
					Return(nil, domain.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t, false)
			tt.setupMock(s.mp)

			resp := s.api.Post(tt.path, s.as(t, tt.caller.UserID)...)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOrdersHandler_ConfirmIsDevOnly(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	resp := s.api.Post("/api/v1/orders/o-1/confirm", s.as(t, buyer.UserID)...)
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, resp.Code)

	dev := newTestServer(t, true)
	dev.mp.EXPECT().ConfirmOrder(mock.Anything, "o-1").
		Return(sampleOrder(domain.StateConfirmed), nil).Once()

	resp = dev.api.Post("/api/v1/orders/o-1/confirm", dev.as(t, buyer.UserID)...)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"state":"CONFIRMED"`)

	resp = dev.api.Post("/api/v1/orders/o-1/confirm")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestOrdersHandler_Tokens(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, false)
	s.mp.EXPECT().ListTokens(mock.Anything, buyer).Return([]domain.EscrowToken{{
		ID:       "t-1",
		OrderID:  "o-1",
		BuyerID:  buyer.UserID,
		SellerID: seller.UserID,
		Amount:   8,
		Status:   domain.TokenReserved,
	}}, nil).Once()
	s.mp.EXPECT().ListTokens(mock.Anything, seller).Return(nil, nil).Once()

	resp := s.api.Get("/api/v1/tokens", s.as(t, buyer.UserID)...)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"RESERVED"`)

	resp = s.api.Get("/api/v1/tokens", s.as(t, seller.UserID)...)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"tokens":[]}`, resp.Body.String())
}
