package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand adds a node to the location tree.
type CreateLocationCommand struct {
	code           string
	description    string
	locationType   location.Type
	parentID       *kernel.UUID
	capacityVolume *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateLocationCommand(
	code, description string,
	locationType location.Type,
	parentID *kernel.UUID,
	capacityVolume *decimal.Decimal,
) (CreateLocationCommand, error) {
	if err := locationType.Validate(); err != nil {
		return CreateLocationCommand{}, err
	}
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return CreateLocationCommand{}, err
		}
	}

	return CreateLocationCommand{
		code:           code,
		description:    description,
		locationType:   locationType,
		parentID:       parentID,
		capacityVolume: capacityVolume,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) Code() string {
	return c.code
}

func (c CreateLocationCommand) Description() string {
	return c.description
}

func (c CreateLocationCommand) Type() location.Type {
	return c.locationType
}

func (c CreateLocationCommand) ParentID() *kernel.UUID {
	return c.parentID
}

func (c CreateLocationCommand) CapacityVolume() *decimal.Decimal {
	return c.capacityVolume
}
