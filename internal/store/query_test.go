package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
			wantArgs:      nil,
		},
		{
			name:         "seller filter",
			query:        ListingQuery{SellerID: ptr("seller-1")},
			wantDataHas:  []string{"WHERE seller_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE seller_id = $1",
			wantArgs:     []any{"seller-1"},
		},
		{
			name: "seller and status filters",
			query: ListingQuery{
				SellerID: ptr("seller-1"),
				Status:   ptr(domain.ListingActive),
			},
			wantDataHas:  []string{"WHERE seller_id = $1 AND status = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE seller_id = $1 AND status = $2",
			wantArgs:     []any{"seller-1", "active"},
		},
		{
			name:         "limit is capped",
			query:        ListingQuery{Limit: 10000, Offset: -5},
			wantDataHas:  []string{"LIMIT 500", "OFFSET 0"},
			wantCountSQL: "SELECT COUNT(*) FROM listings",
		},
		{
			name:         "custom page",
			query:        ListingQuery{Limit: 20, Offset: 40},
			wantDataHas:  []string{"LIMIT 20", "OFFSET 40"},
			wantCountSQL: "SELECT COUNT(*) FROM listings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			assert.Equal(t, tt.wantCountSQL, countSQL)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOrderQuery_ToSQL(t *testing.T) {
	t.Parallel()

	dataSQL, args := (&OrderQuery{
		Participant: ptr("u1"),
		State:       ptr(domain.StateAccepted),
		Limit:       5,
	}).ToSQL()

	assert.Contains(t, dataSQL, "WHERE (buyer_id = $1 OR seller_id = $1) AND state = $2")
	assert.Contains(t, dataSQL, "LIMIT 5 OFFSET 0")
	assert.Equal(t, []any{"u1", "ACCEPTED"}, args)

	dataSQL, args = (&OrderQuery{}).ToSQL()
	assert.NotContains(t, dataSQL, "WHERE")
	assert.Nil(t, args)
}
