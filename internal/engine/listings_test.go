package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func validListing() ListingInput {
	return ListingInput{
		ServiceName:     "translate",
		PricePerUnit:    15,
		UnitDescription: "1M characters",
		EndpointURL:     "https://translate.example.com/v2",
		TotalUnits:      5,
	}
}

func TestListingInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(in *ListingInput)
		wantErr string
	}{
		{name: "valid", modify: func(*ListingInput) {}},
		{name: "no endpoint", modify: func(in *ListingInput) { in.EndpointURL = "" }},
		{
			name:    "empty service name",
			modify:  func(in *ListingInput) { in.ServiceName = "" },
			wantErr: "service name",
		},
		{
			name:    "service name too long",
			modify:  func(in *ListingInput) { in.ServiceName = strings.Repeat("s", maxListingTextChars+1) },
			wantErr: "service name",
		},
		{
			name:    "empty unit description",
			modify:  func(in *ListingInput) { in.UnitDescription = "" },
			wantErr: "unit description",
		},
		{
			name:    "zero price",
			modify:  func(in *ListingInput) { in.PricePerUnit = 0 },
			wantErr: "price per unit",
		},
		{
			name:    "price above cap",
			modify:  func(in *ListingInput) { in.PricePerUnit = maxPricePerUnit + 1 },
			wantErr: "price per unit",
		},
		{
			name:    "zero units",
			modify:  func(in *ListingInput) { in.TotalUnits = 0 },
			wantErr: "total units",
		},
		{
			name:    "ftp endpoint",
			modify:  func(in *ListingInput) { in.EndpointURL = "ftp://files.example.com" },
			wantErr: "endpoint URL",
		},
		{
			name:    "credential too large",
			modify:  func(in *ListingInput) { in.Credential = strings.Repeat("k", maxCredentialBytes+1) },
			wantErr: "credential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validListing()
			tt.modify(&in)

			err := in.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrInvalidListing)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestListingInput_ValidateReportsAllProblems(t *testing.T) {
	t.Parallel()

	err := ListingInput{}.validate()
	require.Error(t, err)
	for _, want := range []string{"service name", "unit description", "price per unit", "total units"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestCreateListing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	in := validListing()
	in.ServiceName = "  translate  "
	in.Credential = "tr-secret"

	l, err := f.eng.CreateListing(ctx, sellerActor, in)
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "translate", l.ServiceName)
	assert.Equal(t, sellerActor.UserID, l.SellerID)
	assert.Equal(t, 5, l.AvailableUnits)
	assert.Equal(t, domain.ListingActive, l.Status)
	assert.NotContains(t, string(l.Credential), "tr-secret", "credential is stored sealed")

	got, err := f.eng.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ServiceName, got.ServiceName)
}

func TestCreateListing_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	_, err := f.eng.CreateListing(ctx, domain.Actor{}, validListing())
	require.ErrorIs(t, err, domain.ErrForbidden)

	bad := validListing()
	bad.TotalUnits = -1
	_, err = f.eng.CreateListing(ctx, sellerActor, bad)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	noVault := NewEngine(store.NewMemoryStore(), nil, nil, WithLogger(quietLogger()))
	withCred := validListing()
	withCred.Credential = "k"
	_, err = noVault.CreateListing(ctx, sellerActor, withCred)
	require.Error(t, err)

	_, err = noVault.CreateListing(ctx, sellerActor, validListing())
	require.NoError(t, err, "listings without a credential need no vault")
}

func TestGetListing_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.eng.GetListing(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.Equal(t, domain.CodeNotFound, domain.ErrorCode(err))
}

func TestRevealCredential(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	got, err := f.eng.RevealCredential(ctx, f.listing.ID, sellerActor)
	require.NoError(t, err)
	assert.Equal(t, "sk-live-123", got)

	for _, actor := range []domain.Actor{buyerActor, adminActor, {}} {
		_, err := f.eng.RevealCredential(ctx, f.listing.ID, actor)
		require.ErrorIs(t, err, domain.ErrForbidden, "actor %q", actor.UserID)
	}

	plain, err := f.eng.CreateListing(ctx, sellerActor, validListing())
	require.NoError(t, err)
	got, err = f.eng.RevealCredential(ctx, plain.ID, sellerActor)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.eng.RevealCredential(ctx, "missing", sellerActor)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListListings(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	other := domain.Actor{UserID: "seller-2"}
	small := validListing()
	small.TotalUnits = 1
	soldOut, err := f.eng.CreateListing(ctx, other, small)
	require.NoError(t, err)
	_, err = f.eng.CreateOrder(ctx, soldOut.ID, buyerActor.UserID, 1)
	require.NoError(t, err)

	active, total, err := f.eng.ListListings(ctx, ListingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, active, 1)
	assert.Equal(t, f.listing.ID, active[0].ID)
	assert.Empty(t, active[0].Credential, "listings never expose the sealed credential")

	gone, total, err := f.eng.ListListings(ctx, ListingFilter{Status: domain.ListingSoldOut})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, gone, 1)
	assert.Equal(t, soldOut.ID, gone[0].ID)

	mine, _, err := f.eng.ListListings(ctx, ListingFilter{SellerID: other.UserID})
	require.NoError(t, err)
	assert.Empty(t, mine, "the other seller has no active listing")
	assert.NotNil(t, mine)
}
