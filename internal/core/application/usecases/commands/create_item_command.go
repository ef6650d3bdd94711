package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand registers a new item in the catalog. Attribute rules are
// enforced by the item aggregate; the command only carries them.
type CreateItemCommand struct {
	code          string
	description   string
	category      string
	unitOfMeasure string
	unitVolume    *decimal.Decimal
	reorderPoint  *kernel.Quantity

	guard guard.ConstructorGuard
}

func NewCreateItemCommand(
	code, description, category, unitOfMeasure string,
	unitVolume *decimal.Decimal,
	reorderPoint *kernel.Quantity,
) CreateItemCommand {
	return CreateItemCommand{
		code:          code,
		description:   description,
		category:      category,
		unitOfMeasure: unitOfMeasure,
		unitVolume:    unitVolume,
		reorderPoint:  reorderPoint,
		guard:         guard.NewConstructorGuard(),
	}
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) Code() string {
	return c.code
}

func (c CreateItemCommand) Description() string {
	return c.description
}

func (c CreateItemCommand) Category() string {
	return c.category
}

func (c CreateItemCommand) UnitOfMeasure() string {
	return c.unitOfMeasure
}

func (c CreateItemCommand) UnitVolume() *decimal.Decimal {
	return c.unitVolume
}

func (c CreateItemCommand) ReorderPoint() *kernel.Quantity {
	return c.reorderPoint
}
