package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand replaces code, description and capacity of a location.
// A nil capacity removes the limit.
type UpdateLocationCommand struct {
	locationID     kernel.UUID
	code           string
	description    string
	capacityVolume *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewUpdateLocationCommand(
	locationID kernel.UUID,
	code, description string,
	capacityVolume *decimal.Decimal,
) (UpdateLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return UpdateLocationCommand{}, err
	}

	return UpdateLocationCommand{
		locationID:     locationID,
		code:           code,
		description:    description,
		capacityVolume: capacityVolume,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

func (c UpdateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c UpdateLocationCommand) Code() string {
	return c.code
}

func (c UpdateLocationCommand) Description() string {
	return c.description
}

func (c UpdateLocationCommand) CapacityVolume() *decimal.Decimal {
	return c.capacityVolume
}
