package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var ErrBlockLocationCommandIsNotConstructed = errors.New(
	"BlockLocationCommand must be created via NewBlockLocationCommand constructor",
)

// BlockLocationCommand takes a location out of use for putaway and relocation.
type BlockLocationCommand struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBlockLocationCommand(locationID kernel.UUID) (BlockLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return BlockLocationCommand{}, err
	}

	return BlockLocationCommand{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c BlockLocationCommand) Validate() error {
	return c.guard.Validate(ErrBlockLocationCommandIsNotConstructed)
}

func (c BlockLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}
