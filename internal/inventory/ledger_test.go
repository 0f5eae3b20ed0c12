package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func newListing(t *testing.T, s *store.MemoryStore, units int) string {
	t.Helper()
	l := &domain.Listing{
		ID:              "listing-1",
		SellerID:        "seller-1",
		ServiceName:     "translate",
		PricePerUnit:    2,
		UnitDescription: "1 call",
		TotalUnits:      units,
		Status:          domain.ListingActive,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, s.CreateListing(context.Background(), l))
	return l.ID
}

func TestReserve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		units   int
		wantErr error
	}{
		{name: "within capacity", units: 4},
		{name: "exact capacity", units: 10},
		{name: "over capacity", units: 11, wantErr: domain.ErrInsufficientInventory},
		{name: "zero units", units: 0, wantErr: domain.ErrInvalidQuantity},
		{name: "negative units", units: -1, wantErr: domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := store.NewMemoryStore()
			id := newListing(t, s, 10)

			err := Reserve(ctx, s, id, tt.units)
			l, getErr := s.GetListing(ctx, id)
			require.NoError(t, getErr)
			assert.True(t, Balanced(l))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 10, l.AvailableUnits, "failed reserve must not change inventory")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10-tt.units, l.AvailableUnits)
		})
	}
}

func TestReserve_UnknownListing(t *testing.T) {
	t.Parallel()

	err := Reserve(context.Background(), store.NewMemoryStore(), "missing", 1)
	require.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestReserve_CountsFailures(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	id := newListing(t, s, 1)

	before := ptestutil.ToFloat64(metrics.ReservationFailuresTotal)
	require.ErrorIs(t, Reserve(ctx, s, id, 2), domain.ErrInsufficientInventory)
	assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.ReservationFailuresTotal), 0)
}

func TestRestoreAndCommit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore()
	id := newListing(t, s, 10)

	require.NoError(t, Reserve(ctx, s, id, 6))
	require.NoError(t, Restore(ctx, s, id, 2))
	require.NoError(t, Commit(ctx, s, id, 4))

	l, err := s.GetListing(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 6, l.AvailableUnits)
	assert.Equal(t, 0, l.ReservedUnits)
	assert.Equal(t, 4, l.SoldUnits)
	assert.True(t, Balanced(l))

	require.ErrorIs(t, Restore(ctx, s, id, 1), domain.ErrInvalidRestore)
	require.ErrorIs(t, Commit(ctx, s, id, 1), domain.ErrInvalidRestore)
}

func TestReserve_ConcurrentCallersNeverOversell(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore()
	id := newListing(t, s, 30)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reserved int
	)
	for i := range 100 {
		wg.Add(1)
		go func(units int) {
			defer wg.Done()
			if err := Reserve(ctx, s, id, units); err == nil {
				mu.Lock()
				reserved += units
				mu.Unlock()
			}
		}(i%3 + 1)
	}
	wg.Wait()

	l, err := s.GetListing(ctx, id)
	require.NoError(t, err)
	assert.LessOrEqual(t, reserved, 30)
	assert.Equal(t, reserved, l.ReservedUnits)
	assert.True(t, Balanced(l))
}

func TestBalanced(t *testing.T) {
	t.Parallel()

	assert.True(t, Balanced(&domain.Listing{TotalUnits: 5, AvailableUnits: 2, ReservedUnits: 2, SoldUnits: 1}))
	assert.False(t, Balanced(&domain.Listing{TotalUnits: 5, AvailableUnits: 5, ReservedUnits: 1}))
	assert.False(t, Balanced(&domain.Listing{TotalUnits: 0, AvailableUnits: -1, ReservedUnits: 1}))
}
