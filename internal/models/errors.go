package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references an id absent
	// from its collection.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when an order is placed with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidTransition is returned when an order status update is not a
	// legal forward transition.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports malformed input on an add-item or similar action.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
