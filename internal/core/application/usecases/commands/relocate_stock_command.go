package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var ErrRelocateStockCommandIsNotConstructed = errors.New(
	"RelocateStockCommand must be created via NewRelocateStockCommand constructor",
)

// RelocateStockCommand moves part or all of one stock row to another location.
type RelocateStockCommand struct {
	stockID          kernel.UUID
	targetLocationID kernel.UUID
	quantity         kernel.Quantity
	operator         kernel.Operator

	guard guard.ConstructorGuard
}

func NewRelocateStockCommand(
	stockID, targetLocationID kernel.UUID,
	quantity kernel.Quantity,
	operator kernel.Operator,
) (RelocateStockCommand, error) {
	if err := errors.Join(
		stockID.Validate(),
		targetLocationID.Validate(),
		validatePositive(quantity),
		operator.Validate(),
	); err != nil {
		return RelocateStockCommand{}, err
	}

	return RelocateStockCommand{
		stockID:          stockID,
		targetLocationID: targetLocationID,
		quantity:         quantity,
		operator:         operator,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c RelocateStockCommand) Validate() error {
	return c.guard.Validate(ErrRelocateStockCommandIsNotConstructed)
}

func (c RelocateStockCommand) StockID() kernel.UUID {
	return c.stockID
}

func (c RelocateStockCommand) TargetLocationID() kernel.UUID {
	return c.targetLocationID
}

func (c RelocateStockCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c RelocateStockCommand) Operator() kernel.Operator {
	return c.operator
}
