package commands

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
	"wms/internal/pkg/errs"
)

// MoveStockCommandHandler relocates an item between locations lot by lot, in the
// order the repository returns the source rows.
type MoveStockCommandHandler struct {
	uowFactory LedgerUoWFactory
}

func NewMoveStockCommandHandler(uowFactory LedgerUoWFactory) MoveStockCommandHandler {
	return MoveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the last target row touched.
func (h MoveStockCommandHandler) Handle(ctx context.Context, cmd MoveStockCommand) (*stock.Stock, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moved, err := uow.ItemRepository().GetByCode(ctx, cmd.ItemCode())
	if err != nil {
		return nil, err
	}
	source, err := uow.LocationRepository().GetByCode(ctx, cmd.SourceCode())
	if err != nil {
		return nil, err
	}
	target, err := uow.LocationRepository().GetByCode(ctx, cmd.TargetCode())
	if err != nil {
		return nil, err
	}

	sourceID := source.ID()
	rows, err := uow.StockRepository().FindByItem(ctx, moved.ID(), &sourceID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("stock of "+moved.Code()+" at location", source.Code())
	}

	quantities := make([]kernel.Quantity, 0, len(rows))
	for _, row := range rows {
		quantities = append(quantities, row.Quantity())
	}
	available := kernel.SumQuantities(quantities...)
	if available.LessThan(cmd.Quantity()) {
		return nil, errs.NewInsufficientStockError(moved.Code(), cmd.Quantity().String(), available.String())
	}

	ledger := NewStockLedger(uow)
	remaining := cmd.Quantity()
	var last *stock.Stock
	for _, row := range rows {
		if remaining.IsZero() {
			break
		}

		lot := row.Quantity().Min(remaining)
		if last, err = ledger.Relocate(ctx, row, moved, source, target, lot, cmd.Operator()); err != nil {
			return nil, err
		}
		if remaining, err = remaining.Sub(lot); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return last, nil
}
