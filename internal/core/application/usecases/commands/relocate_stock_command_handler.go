package commands

import (
	"context"

	"wms/internal/core/domain/model/stock"
)

type RelocateStockCommandHandler struct {
	uowFactory LedgerUoWFactory
}

func NewRelocateStockCommandHandler(uowFactory LedgerUoWFactory) RelocateStockCommandHandler {
	return RelocateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the row at the target that received the quantity.
func (h RelocateStockCommandHandler) Handle(ctx context.Context, cmd RelocateStockCommand) (*stock.Stock, error) {
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

	row, err := uow.StockRepository().Get(ctx, cmd.StockID())
	if err != nil {
		return nil, err
	}
	target, err := uow.LocationRepository().Get(ctx, cmd.TargetLocationID())
	if err != nil {
		return nil, err
	}
	source, err := uow.LocationRepository().Get(ctx, row.LocationID())
	if err != nil {
		return nil, err
	}
	moved, err := uow.ItemRepository().Get(ctx, row.ItemID())
	if err != nil {
		return nil, err
	}

	targetRow, err := NewStockLedger(uow).Relocate(ctx, row, moved, source, target, cmd.Quantity(), cmd.Operator())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return targetRow, nil
}
