package queries

import (
	"context"

	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetZoneCapacityQueryHandler loads the location tree once and rolls volumes up in memory.
type GetZoneCapacityQueryHandler struct {
	locations  LocationQueryHandler
	calculator services.ZoneCapacityCalculator
}

func NewGetZoneCapacityQueryHandler(db *gorm.DB) GetZoneCapacityQueryHandler {
	return GetZoneCapacityQueryHandler{
		locations:  NewLocationQueryHandler(db),
		calculator: services.NewZoneCapacityCalculator(),
	}
}

func (h GetZoneCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetZoneCapacityQuery,
) ([]services.ZoneCapacity, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.locations.load(ctx, nil)
	if err != nil {
		return nil, err
	}

	return h.calculator.Calculate(location.NewTree(all)), nil
}
