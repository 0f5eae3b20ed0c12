// Package inventory tracks listing unit counts. Every operation is a single
// conditional update on one listing, so callers may compose them inside a
// store.Atomic unit of work without holding locks of their own.
package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/store"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// MaxUnitsPerListing bounds listing capacity and order size.
const MaxUnitsPerListing = 1_000_000

// Reserve holds units of a listing for a new order. It fails with
// domain.ErrInsufficientInventory when fewer units are available.
func Reserve(ctx context.Context, s store.Store, listingID string, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}

	if err := s.ReserveUnits(ctx, listingID, units); err != nil {
		if errors.Is(err, domain.ErrInsufficientInventory) {
			metrics.ReservationFailuresTotal.Inc()
		}
		return fmt.Errorf("reserving %d units of listing %s: %w", units, listingID, err)
	}

	metrics.UnitsReservedTotal.Add(float64(units))
	return nil
}

// Restore returns reserved units to the listing when no service was
// rendered. Restoring more than is reserved fails with
// domain.ErrInvalidRestore.
func Restore(ctx context.Context, s store.Store, listingID string, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}

	if err := s.RestoreUnits(ctx, listingID, units); err != nil {
		return fmt.Errorf("restoring %d units of listing %s: %w", units, listingID, err)
	}

	metrics.UnitsRestoredTotal.Add(float64(units))
	return nil
}

// Commit marks reserved units as sold once the service was rendered.
func Commit(ctx context.Context, s store.Store, listingID string, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}

	if err := s.CommitUnits(ctx, listingID, units); err != nil {
		return fmt.Errorf("committing %d units of listing %s: %w", units, listingID, err)
	}

	metrics.UnitsSoldTotal.Add(float64(units))
	return nil
}

// Balanced reports whether the listing's unit counters add up to its
// capacity and none is negative.
func Balanced(l *domain.Listing) bool {
	if l.AvailableUnits < 0 || l.ReservedUnits < 0 || l.SoldUnits < 0 {
		return false
	}
	return l.AvailableUnits+l.ReservedUnits+l.SoldUnits == l.TotalUnits
}

func checkUnits(units int) error {
	if units <= 0 || units > MaxUnitsPerListing {
		return fmt.Errorf("%w: must be between 1 and %d, got %d",
			domain.ErrInvalidQuantity, MaxUnitsPerListing, units)
	}
	return nil
}
