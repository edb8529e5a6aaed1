package inventory

import "errors"

// Catalog errors.
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrInvalidPrice    = errors.New("unit price cannot be negative")
	ErrInvalidName     = errors.New("item name cannot be empty")
)
