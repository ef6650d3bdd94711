package errs

import (
	"errors"
	"fmt"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries the requested and the actually available quantity of an item.
type InsufficientStockError struct {
	Item      string
	Requested any
	Available any
}

func NewInsufficientStockError(item string, requested, available any) *InsufficientStockError {
	return &InsufficientStockError{
		Item:      item,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: item %s, requested %v, available %v",
		ErrInsufficientStock, e.Item, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
