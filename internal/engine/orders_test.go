package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/inventory"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// failingMintStore fails every token insert so order creation must roll
// back the reservation and the order row.
type failingMintStore struct {
	*store.MemoryStore
}

func (s *failingMintStore) Atomic(ctx context.Context, fn func(store.Store) error) error {
	return s.MemoryStore.Atomic(ctx, func(tx store.Store) error {
		return fn(&failingMintTx{Store: tx})
	})
}

type failingMintTx struct {
	store.Store
}

func (*failingMintTx) InsertToken(context.Context, *domain.EscrowToken) error {
	return domain.ErrDuplicateToken
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	o, err := f.eng.CreateOrder(ctx, f.listing.ID, buyerActor.UserID, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.StateCreated, o.State)
	assert.Equal(t, sellerActor.UserID, o.SellerID)
	assert.Equal(t, int64(2), o.UnitPrice)
	assert.Equal(t, int64(6), o.Amount)
	assert.Equal(t, f.clock.Now(), o.CreatedAt)

	l := f.listingNow(t)
	assert.Equal(t, 7, l.AvailableUnits)
	assert.Equal(t, 3, l.ReservedUnits)
	assert.True(t, inventory.Balanced(l))

	tok := f.token(t, o.ID)
	assert.Equal(t, domain.TokenReserved, tok.Status)
	assert.Equal(t, int64(6), tok.Amount)
	assert.Equal(t, buyerActor.UserID, tok.BuyerID)
}

func TestCreateOrder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		listingID string
		buyerID   string
		units     int
		wantErr   error
	}{
		{name: "zero units", buyerID: buyerActor.UserID, units: 0, wantErr: domain.ErrInvalidQuantity},
		{name: "negative units", buyerID: buyerActor.UserID, units: -2, wantErr: domain.ErrInvalidQuantity},
		{name: "more than available", buyerID: buyerActor.UserID, units: 11, wantErr: domain.ErrInsufficientInventory},
		{name: "unknown listing", listingID: "nope", buyerID: buyerActor.UserID, units: 1, wantErr: domain.ErrListingNotFound},
		{name: "seller buying own listing", buyerID: sellerActor.UserID, units: 1, wantErr: domain.ErrForbidden},
		{name: "anonymous buyer", buyerID: "", units: 1, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			listingID := tt.listingID
			if listingID == "" {
				listingID = f.listing.ID
			}

			_, err := f.eng.CreateOrder(context.Background(), listingID, tt.buyerID, tt.units)
			require.ErrorIs(t, err, tt.wantErr)

			l := f.listingNow(t)
			assert.Equal(t, 10, l.AvailableUnits, "failed creation must not hold units")
			assert.Zero(t, l.ReservedUnits)
		})
	}
}

func TestCreateOrder_RollsBackWhenMintFails(t *testing.T) {
	t.Parallel()

	mem := store.NewMemoryStore()
	f := newFixtureWithStore(t, mem, nil)
	eng := NewEngine(&failingMintStore{MemoryStore: mem}, nil, nil,
		WithLogger(quietLogger()),
		WithNowFunc(f.clock.Now),
	)

	_, err := eng.CreateOrder(context.Background(), f.listing.ID, buyerActor.UserID, 4)
	require.ErrorIs(t, err, domain.ErrDuplicateToken)

	l := f.listingNow(t)
	assert.Equal(t, 10, l.AvailableUnits)
	assert.Zero(t, l.ReservedUnits)

	orders, err := f.eng.ListOrders(context.Background(), buyerActor, OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders, "no orphaned order may remain")
}

func TestCreateOrder_AutoConfirmsSmallOrders(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithAutoConfirmLimit(4))
	ctx := context.Background()

	small, err := f.eng.CreateOrder(ctx, f.listing.ID, buyerActor.UserID, 2) // amount 4
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, small.State)

	large, err := f.eng.CreateOrder(ctx, f.listing.ID, buyerActor.UserID, 3) // amount 6
	require.NoError(t, err)
	assert.Equal(t, domain.StateCreated, large.State)

	_, err = f.eng.ConfirmOrder(ctx, small.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderLifecycle_SellOutAndCancel(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	first, err := f.eng.CreateOrder(ctx, f.listing.ID, buyerActor.UserID, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCreated, first.State)

	l := f.listingNow(t)
	assert.Zero(t, l.AvailableUnits)
	assert.Equal(t, domain.ListingSoldOut, l.Status)

	_, err = f.eng.CreateOrder(ctx, f.listing.ID, otherBuyer.UserID, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientInventory)

	cancelled, err := f.eng.CancelOrder(ctx, first.ID, buyerActor)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCancelled, cancelled.State)

	l = f.listingNow(t)
	assert.Equal(t, 10, l.AvailableUnits)
	assert.Equal(t, domain.ListingActive, l.Status)
	assert.Equal(t, domain.TokenVoid, f.token(t, first.ID).Status)
}

func TestConfirmOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	o, err := f.eng.CreateOrder(ctx, f.listing.ID, buyerActor.UserID, 1)
	require.NoError(t, err)

	confirmed, err := f.eng.ConfirmOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, confirmed.State)
	assert.Equal(t, o.Version+1, confirmed.Version)

	_, err = f.eng.ConfirmOrder(ctx, o.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.eng.ConfirmOrder(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestAcceptOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   domain.Actor
		confirm bool
		wantErr error
	}{
		{name: "seller accepts confirmed order", actor: sellerActor, confirm: true},
		{name: "buyer cannot accept", actor: buyerActor, confirm: true, wantErr: domain.ErrForbidden},
		{name: "admin is not the seller", actor: adminActor, confirm: true, wantErr: domain.ErrForbidden},
		{name: "unconfirmed order", actor: sellerActor, confirm: false, wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			ctx := context.Background()

			o, err := f.eng.CreateOrder(ctx, f.listing.ID, buyerActor.UserID, 1)
			require.NoError(t, err)
			if tt.confirm {
				o, err = f.eng.ConfirmOrder(ctx, o.ID)
				require.NoError(t, err)
			}

			got, err := f.eng.AcceptOrder(ctx, o.ID, tt.actor)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				unchanged, getErr := f.eng.GetOrder(ctx, o.ID, adminActor)
				require.NoError(t, getErr)
				assert.Equal(t, o.State, unchanged.State)
				assert.Equal(t, o.Version, unchanged.Version)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.StateAccepted, got.State)
			require.NotNil(t, got.DisputeDeadline)
			assert.Equal(t, f.clock.Now().Add(f.eng.disputeWindow), *got.DisputeDeadline)
		})
	}
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   domain.Actor
		accept  bool
		wantErr error
	}{
		{name: "buyer cancels", actor: buyerActor},
		{name: "seller cancels", actor: sellerActor},
		{name: "admin cancels", actor: adminActor},
		{name: "stranger cannot cancel", actor: strangerActor, wantErr: domain.ErrForbidden},
		{name: "accepted order cannot be cancelled", actor: buyerActor, accept: true, wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			ctx := context.Background()

			o := f.confirmedOrder(t, 4)
			if tt.accept {
				var err error
				o, err = f.eng.AcceptOrder(ctx, o.ID, sellerActor)
				require.NoError(t, err)
			}

			_, err := f.eng.CancelOrder(ctx, o.ID, tt.actor)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 6, f.listingNow(t).AvailableUnits)
				assert.Equal(t, domain.TokenReserved, f.token(t, o.ID).Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 10, f.listingNow(t).AvailableUnits)
			assert.Equal(t, domain.TokenVoid, f.token(t, o.ID).Status)

			_, err = f.eng.CancelOrder(ctx, o.ID, tt.actor)
			require.ErrorIs(t, err, domain.ErrInvalidTransition, "cancel is not repeatable")
			assert.Equal(t, 10, f.listingNow(t).AvailableUnits, "units are restored once")
		})
	}
}

func TestCompleteOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	o := f.acceptedOrder(t, 3)

	_, err := f.eng.CompleteOrder(ctx, o.ID, sellerActor)
	require.ErrorIs(t, err, domain.ErrForbidden)

	done, err := f.eng.CompleteOrder(ctx, o.ID, buyerActor)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, done.State)
	require.NotNil(t, done.Resolution)
	assert.Equal(t, domain.PartySeller, done.Resolution.Decision)
	assert.Equal(t, domain.SourceBuyerConfirmed, done.Resolution.Source)

	assert.Equal(t, domain.TokenReleasedToSeller, f.token(t, o.ID).Status)
	l := f.listingNow(t)
	assert.Equal(t, 7, l.AvailableUnits)
	assert.Zero(t, l.ReservedUnits)
	assert.Equal(t, 3, l.SoldUnits)

	_, err = f.eng.CompleteOrder(ctx, o.ID, buyerActor)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCompleteOrder_RequiresAccepted(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	o := f.confirmedOrder(t, 1)

	_, err := f.eng.CompleteOrder(context.Background(), o.ID, buyerActor)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGetOrder_Visibility(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	o := f.confirmedOrder(t, 1)

	for _, actor := range []domain.Actor{buyerActor, sellerActor, adminActor} {
		got, err := f.eng.GetOrder(ctx, o.ID, actor)
		require.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
	}

	_, err := f.eng.GetOrder(ctx, o.ID, strangerActor)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.eng.GetOrder(ctx, "missing", adminActor)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrdersAndTokens(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	first := f.confirmedOrder(t, 1)
	f.clock.Advance(1)
	second, err := f.eng.CreateOrder(ctx, f.listing.ID, otherBuyer.UserID, 2)
	require.NoError(t, err)

	mine, err := f.eng.ListOrders(ctx, buyerActor, OrderFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	sold, err := f.eng.ListOrders(ctx, sellerActor, OrderFilter{})
	require.NoError(t, err)
	require.Len(t, sold, 2)
	assert.Equal(t, second.ID, sold[0].ID, "newest first")

	created := domain.StateCreated
	onlyCreated, err := f.eng.ListOrders(ctx, sellerActor, OrderFilter{State: &created})
	require.NoError(t, err)
	require.Len(t, onlyCreated, 1)
	assert.Equal(t, second.ID, onlyCreated[0].ID)

	none, err := f.eng.ListOrders(ctx, strangerActor, OrderFilter{})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = f.eng.ListOrders(ctx, domain.Actor{}, OrderFilter{})
	require.ErrorIs(t, err, domain.ErrForbidden)

	tokens, err := f.eng.ListTokens(ctx, otherBuyer)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, second.ID, tokens[0].OrderID)

	tokens, err = f.eng.ListTokens(ctx, sellerActor)
	require.NoError(t, err)
	assert.Empty(t, tokens, "sellers hold no tokens as buyers")
}

func TestCreateOrder_ConcurrentReservationsNeverOversell(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buyer := domain.Actor{UserID: "buyer-" + string(rune('a'+i%26))}
			_, err := f.eng.CreateOrder(ctx, f.listing.ID, buyer.UserID, 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientInventory):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	l := f.listingNow(t)
	assert.Zero(t, l.AvailableUnits)
	assert.Equal(t, 10, l.ReservedUnits)
	assert.True(t, inventory.Balanced(l))
}

func TestTransitions_ConcurrentConflictingCallsHaveOneWinner(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	o := f.confirmedOrder(t, 5)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  []domain.OrderState
		rejected int
	)
	for i := range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var (
				got *domain.Order
				err error
			)
			if i%2 == 0 {
				got, err = f.eng.AcceptOrder(ctx, o.ID, sellerActor)
			} else {
				got, err = f.eng.CancelOrder(ctx, o.ID, buyerActor)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				rejected++
				return
			}
			winners = append(winners, got.State)
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, 29, rejected)

	final, err := f.eng.GetOrder(ctx, o.ID, adminActor)
	require.NoError(t, err)
	assert.Equal(t, winners[0], final.State)
	assert.Equal(t, o.Version+1, final.Version)

	l := f.listingNow(t)
	assert.True(t, inventory.Balanced(l))
	if final.State == domain.StateCancelled {
		assert.Equal(t, 10, l.AvailableUnits)
		assert.Equal(t, domain.TokenVoid, f.token(t, o.ID).Status)
	} else {
		assert.Equal(t, 5, l.ReservedUnits)
		assert.Equal(t, domain.TokenReserved, f.token(t, o.ID).Status)
	}
}
