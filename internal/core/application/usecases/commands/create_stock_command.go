package commands

import (
	"errors"
	"fmt"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var ErrCreateStockCommandIsNotConstructed = errors.New(
	"CreateStockCommand must be created via NewCreateStockCommand constructor",
)

// CreateStockCommand books received goods into a location (putaway).
type CreateStockCommand struct {
	itemID     kernel.UUID
	locationID kernel.UUID
	quantity   kernel.Quantity
	batch      *string
	operator   kernel.Operator

	guard guard.ConstructorGuard
}

func NewCreateStockCommand(
	itemID, locationID kernel.UUID,
	quantity kernel.Quantity,
	batch *string,
	operator kernel.Operator,
) (CreateStockCommand, error) {
	if err := errors.Join(
		itemID.Validate(),
		locationID.Validate(),
		validatePositive(quantity),
		operator.Validate(),
	); err != nil {
		return CreateStockCommand{}, err
	}

	return CreateStockCommand{
		itemID:     itemID,
		locationID: locationID,
		quantity:   quantity,
		batch:      batch,
		operator:   operator,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStockCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockCommandIsNotConstructed)
}

func (c CreateStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateStockCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c CreateStockCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c CreateStockCommand) Batch() *string {
	return c.batch
}

func (c CreateStockCommand) Operator() kernel.Operator {
	return c.operator
}

func validatePositive(quantity kernel.Quantity) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	return nil
}
