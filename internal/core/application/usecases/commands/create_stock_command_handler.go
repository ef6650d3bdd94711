package commands

import (
	"context"

	"wms/internal/core/domain/model/stock"
)

// CreateStockCommandHandler receives goods into a location: a new Available row,
// the location's volume and an INBOUND movement, all in one transaction.
type CreateStockCommandHandler struct {
	uowFactory LedgerUoWFactory
}

func NewCreateStockCommandHandler(uowFactory LedgerUoWFactory) CreateStockCommandHandler {
	return CreateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateStockCommandHandler) Handle(ctx context.Context, cmd CreateStockCommand) (*stock.Stock, error) {
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

	received, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}
	target, err := uow.LocationRepository().Get(ctx, cmd.LocationID())
	if err != nil {
		return nil, err
	}

	row, err := NewStockLedger(uow).Receive(ctx, received, target, cmd.Quantity(), cmd.Batch(), cmd.Operator())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return row, nil
}
