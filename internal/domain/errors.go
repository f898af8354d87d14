package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrValidation       = errors.New("validation failed")
	ErrCapacityExceeded = errors.New("capacity exceeded")

	ErrFlightNotFound    = fmt.Errorf("flight %w", ErrNotFound)
	ErrCarrierNotFound   = fmt.Errorf("carrier %w", ErrNotFound)
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrBookingNotFound   = fmt.Errorf("booking %w", ErrNotFound)
	ErrInventoryNotFound = fmt.Errorf("seat inventory %w", ErrNotFound)
)

// CapacityExceededError reports how many seats were asked for and how many were left.
type CapacityExceededError struct {
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("insufficient seats available: requested %d, available %d", e.Requested, e.Available)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
