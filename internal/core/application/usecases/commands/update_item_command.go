package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand changes the mutable attributes of an item. A nil field keeps
// the current value.
type UpdateItemCommand struct {
	itemID        kernel.UUID
	description   *string
	category      *string
	unitOfMeasure *string
	unitVolume    *decimal.Decimal
	reorderPoint  *kernel.Quantity

	guard guard.ConstructorGuard
}

func NewUpdateItemCommand(
	itemID kernel.UUID,
	description, category, unitOfMeasure *string,
	unitVolume *decimal.Decimal,
	reorderPoint *kernel.Quantity,
) (UpdateItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return UpdateItemCommand{}, err
	}

	return UpdateItemCommand{
		itemID:        itemID,
		description:   description,
		category:      category,
		unitOfMeasure: unitOfMeasure,
		unitVolume:    unitVolume,
		reorderPoint:  reorderPoint,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateItemCommand) Description() *string {
	return c.description
}

func (c UpdateItemCommand) Category() *string {
	return c.category
}

func (c UpdateItemCommand) UnitOfMeasure() *string {
	return c.unitOfMeasure
}

func (c UpdateItemCommand) UnitVolume() *decimal.Decimal {
	return c.unitVolume
}

func (c UpdateItemCommand) ReorderPoint() *kernel.Quantity {
	return c.reorderPoint
}
