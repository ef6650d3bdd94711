package queries

import (
	"errors"
	"fmt"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
	"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
)

// GetLowStockItemsQuery finds items whose available quantity fell to their reorder
// point. DefaultThreshold applies to items without a reorder point of their own.
type GetLowStockItemsQuery struct {
	defaultThreshold kernel.Quantity

	guard guard.ConstructorGuard
}

func NewGetLowStockItemsQuery(defaultThreshold kernel.Quantity) (GetLowStockItemsQuery, error) {
	if defaultThreshold.Decimal().IsNegative() {
		return GetLowStockItemsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"default threshold",
			fmt.Errorf("%s is negative", defaultThreshold),
		)
	}

	return GetLowStockItemsQuery{
		defaultThreshold: defaultThreshold,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

func (q GetLowStockItemsQuery) DefaultThreshold() kernel.Quantity {
	return q.defaultThreshold
}

// LowStockItemResponse is an item below its threshold with what is left of it.
type LowStockItemResponse struct {
	Item      ItemResponse
	OnHand    kernel.Quantity
	Threshold kernel.Quantity
}
