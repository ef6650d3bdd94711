package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
)

// OrderRepository persists outbound orders with their lines.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
