package commands

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var ErrMoveStockCommandIsNotConstructed = errors.New(
	"MoveStockCommand must be created via NewMoveStockCommand constructor",
)

// MoveStockCommand moves a quantity of an item between two locations named by code,
// drawing on as many rows at the source as needed.
type MoveStockCommand struct {
	itemCode   string
	sourceCode string
	targetCode string
	quantity   kernel.Quantity
	operator   kernel.Operator

	guard guard.ConstructorGuard
}

func NewMoveStockCommand(
	itemCode, sourceCode, targetCode string,
	quantity kernel.Quantity,
	operator kernel.Operator,
) (MoveStockCommand, error) {
	itemCode, sourceCode, targetCode = strings.TrimSpace(itemCode), strings.TrimSpace(sourceCode), strings.TrimSpace(targetCode)

	if err := errors.Join(
		requireText("item code", itemCode),
		requireText("source location code", sourceCode),
		requireText("target location code", targetCode),
		validatePositive(quantity),
		operator.Validate(),
	); err != nil {
		return MoveStockCommand{}, err
	}

	return MoveStockCommand{
		itemCode:   itemCode,
		sourceCode: sourceCode,
		targetCode: targetCode,
		quantity:   quantity,
		operator:   operator,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MoveStockCommand) Validate() error {
	return c.guard.Validate(ErrMoveStockCommandIsNotConstructed)
}

func (c MoveStockCommand) ItemCode() string {
	return c.itemCode
}

func (c MoveStockCommand) SourceCode() string {
	return c.sourceCode
}

func (c MoveStockCommand) TargetCode() string {
	return c.targetCode
}

func (c MoveStockCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c MoveStockCommand) Operator() kernel.Operator {
	return c.operator
}

func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
