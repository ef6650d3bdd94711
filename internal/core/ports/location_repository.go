package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
)

// LocationRepository persists warehouse locations together with their volume and status.
type LocationRepository interface {
	// Add stores a new location. A taken code yields a Conflict error.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update stores code, description, capacity, current volume and status.
	Update(ctx context.Context, aggregate *location.Location) error

	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)
	GetByCode(ctx context.Context, code string) (*location.Location, error)

	// GetAll returns every location, ordered by code.
	GetAll(ctx context.Context) ([]*location.Location, error)
}
