package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrDuplicate             = errors.New("duplicate")
	ErrAlreadyReleased       = errors.New("already released")
	ErrInvalidInput          = errors.New("invalid input")
	ErrWindowExpired         = errors.New("window expired")
	ErrInvalidRestore        = errors.New("restore exceeds reserved units")
)

// Specific errors wrapping a kind.
var (
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrTokenNotFound   = fmt.Errorf("escrow token %w", ErrNotFound)

	ErrDuplicateToken  = fmt.Errorf("%w escrow token", ErrDuplicate)
	ErrDuplicateReview = fmt.Errorf("%w review", ErrDuplicate)

	ErrInvalidDispute  = fmt.Errorf("%w: dispute", ErrInvalidInput)
	ErrInvalidScore    = fmt.Errorf("%w: score", ErrInvalidInput)
	ErrInvalidReview   = fmt.Errorf("%w: review", ErrInvalidInput)
	ErrInvalidQuantity = fmt.Errorf("%w: units", ErrInvalidInput)
	ErrInvalidListing  = fmt.Errorf("%w: listing", ErrInvalidInput)
)

// Stable error codes for callers outside the engine.
const (
	CodeNotFound              = "not_found"
	CodeForbidden             = "forbidden"
	CodeInvalidTransition     = "invalid_transition"
	CodeInsufficientInventory = "insufficient_inventory"
	CodeDuplicate             = "duplicate"
	CodeAlreadyReleased       = "already_released"
	CodeInvalidInput          = "invalid_input"
	CodeWindowExpired         = "window_expired"
	CodeInternal              = "internal"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrNotFound, CodeNotFound},
	{ErrForbidden, CodeForbidden},
	{ErrInvalidTransition, CodeInvalidTransition},
	{ErrInsufficientInventory, CodeInsufficientInventory},
	{ErrDuplicate, CodeDuplicate},
	{ErrAlreadyReleased, CodeAlreadyReleased},
	{ErrInvalidInput, CodeInvalidInput},
	{ErrWindowExpired, CodeWindowExpired},
}

// ErrorCode returns the stable code for err, or CodeInternal.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
