// Package ports defines the persistence contracts of the warehouse core.
// Adapters implement them; command handlers depend only on these interfaces.
package ports

import (
	"context"

	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
)

// ItemRepository persists the item catalog.
type ItemRepository interface {
	// Add stores a new item. A taken code yields a Conflict error.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update stores the mutable attributes of an existing item.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get returns the item with the given id or ObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetByCode returns the item with the given code or ObjectNotFound.
	GetByCode(ctx context.Context, code string) (*item.Item, error)
}
