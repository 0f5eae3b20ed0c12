package engine

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/CyberSolo/UDAM/internal/inventory"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const (
	maxListingTextChars = 128
	maxPricePerUnit     = 100_000_000_000
	maxCredentialBytes  = 4096
)

// ListingInput is what a seller supplies to publish a listing.
type ListingInput struct {
	ServiceName     string
	PricePerUnit    int64
	UnitDescription string
	EndpointURL     string
	TotalUnits      int
	Credential      string
}

func (in ListingInput) validate() error {
	var problems []string

	if n := utf8.RuneCountInString(in.ServiceName); n < 1 || n > maxListingTextChars {
		problems = append(problems, fmt.Sprintf("service name must be 1 to %d characters", maxListingTextChars))
	}
	if n := utf8.RuneCountInString(in.UnitDescription); n < 1 || n > maxListingTextChars {
		problems = append(problems, fmt.Sprintf("unit description must be 1 to %d characters", maxListingTextChars))
	}
	if in.PricePerUnit < 1 || in.PricePerUnit > maxPricePerUnit {
		problems = append(problems, fmt.Sprintf("price per unit must be between 1 and %d", int64(maxPricePerUnit)))
	}
	if in.TotalUnits < 1 || in.TotalUnits > inventory.MaxUnitsPerListing {
		problems = append(problems, fmt.Sprintf("total units must be between 1 and %d", inventory.MaxUnitsPerListing))
	}
	if in.EndpointURL != "" {
		u, err := url.Parse(in.EndpointURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, "endpoint URL must be an http or https URL")
		}
	}
	if len(in.Credential) > maxCredentialBytes {
		problems = append(problems, fmt.Sprintf("credential is limited to %d bytes", maxCredentialBytes))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidListing, strings.Join(problems, "; "))
	}
	return nil
}

// CreateListing publishes a listing owned by actor. The credential, if
// any, is sealed before it is stored.
func (eng *Engine) CreateListing(
	ctx context.Context,
	actor domain.Actor,
	in ListingInput,
) (l *domain.Listing, err error) {
	ctx, end := eng.startOp(ctx, "CreateListing")
	defer end(&err)

	if actor.UserID == "" {
		return nil, fmt.Errorf("%w: user required", domain.ErrForbidden)
	}

	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.UnitDescription = strings.TrimSpace(in.UnitDescription)
	in.EndpointURL = strings.TrimSpace(in.EndpointURL)
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := eng.now()
	l = &domain.Listing{
		ID:              uuid.NewString(),
		SellerID:        actor.UserID,
		ServiceName:     in.ServiceName,
		PricePerUnit:    in.PricePerUnit,
		UnitDescription: in.UnitDescription,
		EndpointURL:     in.EndpointURL,
		TotalUnits:      in.TotalUnits,
		AvailableUnits:  in.TotalUnits,
		Status:          domain.ListingActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if in.Credential != "" {
		if eng.vault == nil {
			return nil, fmt.Errorf("sealing credential: no vault configured")
		}
		sealed, err := eng.vault.Seal(l.ID, []byte(in.Credential))
		if err != nil {
			return nil, fmt.Errorf("sealing credential: %w", err)
		}
		l.Credential = sealed
	}

	if err := eng.store.CreateListing(ctx, l); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}

	eng.log.Info("listing created",
		"listing_id", l.ID,
		"seller_id", l.SellerID,
		"units", l.TotalUnits,
		"price_per_unit", l.PricePerUnit,
	)
	return l, nil
}

// GetListing returns one listing.
func (eng *Engine) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l, err := eng.store.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading listing %s: %w", id, err)
	}
	return l, nil
}

// ListingFilter narrows ListListings. Without a status only active listings
// are returned.
type ListingFilter struct {
	SellerID string
	Status   domain.ListingStatus
	Limit    int
	Offset   int
}

// ListListings returns listings newest first with the total match count.
func (eng *Engine) ListListings(ctx context.Context, f ListingFilter) ([]domain.Listing, int, error) {
	status := f.Status
	if status == "" {
		status = domain.ListingActive
	}

	q := &store.ListingQuery{
		Status: &status,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	if f.SellerID != "" {
		q.SellerID = &f.SellerID
	}

	listings, total, err := eng.store.ListListings(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing listings: %w", err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, total, nil
}

// RevealCredential opens the sealed credential of a listing for its seller.
func (eng *Engine) RevealCredential(
	ctx context.Context,
	listingID string,
	actor domain.Actor,
) (_ string, err error) {
	ctx, end := eng.startOp(ctx, "RevealCredential", attribute.String("listing.id", listingID))
	defer end(&err)

	l, err := eng.store.GetListing(ctx, listingID)
	if err != nil {
		return "", fmt.Errorf("loading listing %s: %w", listingID, err)
	}
	if actor.UserID == "" || actor.UserID != l.SellerID {
		return "", fmt.Errorf("%w: only the seller may reveal the credential", domain.ErrForbidden)
	}
	if len(l.Credential) == 0 {
		return "", nil
	}
	if eng.vault == nil {
		return "", fmt.Errorf("opening credential: no vault configured")
	}

	plain, err := eng.vault.Open(l.ID, l.Credential)
	if err != nil {
		return "", fmt.Errorf("opening credential of listing %s: %w", l.ID, err)
	}
	return string(plain), nil
}
