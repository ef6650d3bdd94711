package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
)

// StockRepository persists stock rows. A row exists only while its quantity is positive.
type StockRepository interface {
	Add(ctx context.Context, aggregate *stock.Stock) error
	Update(ctx context.Context, aggregate *stock.Stock) error

	// Delete removes a depleted row.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error)

	// FindByItem returns the item's rows with a positive quantity in insertion order,
	// restricted to one location when locationID is set.
	FindByItem(ctx context.Context, itemID kernel.UUID, locationID *kernel.UUID) ([]*stock.Stock, error)

	// FindByLocationAndItem returns every row of the item held at the location, in insertion order.
	FindByLocationAndItem(ctx context.Context, locationID, itemID kernel.UUID) ([]*stock.Stock, error)
}
