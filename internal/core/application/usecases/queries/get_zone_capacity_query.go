package queries

import (
	"errors"

	"wms/internal/pkg/guard"
)

var ErrGetZoneCapacityQueryIsNotConstructed = errors.New(
	"GetZoneCapacityQuery must be created via NewGetZoneCapacityQuery constructor",
)

// GetZoneCapacityQuery reports how full each AREA is, counting every location below it.
type GetZoneCapacityQuery struct {
	guard guard.ConstructorGuard
}

func NewGetZoneCapacityQuery() GetZoneCapacityQuery {
	return GetZoneCapacityQuery{guard: guard.NewConstructorGuard()}
}

func (q GetZoneCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetZoneCapacityQueryIsNotConstructed)
}
