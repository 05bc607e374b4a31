package domain

import "errors"

// Validation errors returned before any arithmetic or persistence happens.
var (
	ErrMissingDate      = errors.New("closing date is required")
	ErrNegativeCash     = errors.New("reported cash must be >= 0")
	ErrInvalidRange     = errors.New("end date must be >= start date")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrInsufficientCash = errors.New("received cash must be >= order total")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidMethod    = errors.New("unknown payment method")
	ErrMissingField     = errors.New("required field is missing")
	ErrUnknownProduct   = errors.New("unknown or inactive product")
	ErrNoChanges        = errors.New("no changes to update")
)

// ErrNotFound is returned by repositories when the row to update does not exist.
var ErrNotFound = errors.New("record not found")

// IsValidation reports whether err is one of the validation errors above.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrMissingDate, ErrNegativeCash, ErrInvalidRange, ErrInvalidMonth,
		ErrEmptyOrder, ErrInsufficientCash, ErrInvalidAmount, ErrInvalidMethod, ErrMissingField,
		ErrUnknownProduct, ErrNoChanges,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
