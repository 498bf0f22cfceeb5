package domain

import (
	"errors"
	"fmt"
)

// Errors returned by the sale recording path. Handlers map these onto
// HTTP status codes, so they must stay distinguishable with errors.Is/As.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidKind      = errors.New("kind must be sale or usage")
	ErrConflict         = errors.New("concurrent stock update conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// InsufficientStockError is returned when the requested quantity exceeds
// what is on hand. Available carries the quantity seen inside the
// transaction so callers can surface it to the client.
type InsufficientStockError struct {
	ItemID    uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: requested %d, available %d",
		e.ItemID, e.Requested, e.Available)
}
