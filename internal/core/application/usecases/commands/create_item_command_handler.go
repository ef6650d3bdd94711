package commands

import (
	"context"

	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
)

// CreateItemCommandHandler adds an item to the catalog. A taken code surfaces as
// the repository's Conflict error.
type CreateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateItemCommandHandler(uowFactory CatalogUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*item.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newItem, err := item.NewItem(
		kernel.NewUUID(),
		cmd.Code(),
		cmd.Description(),
		cmd.Category(),
		cmd.UnitOfMeasure(),
		cmd.UnitVolume(),
		cmd.ReorderPoint(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newItem, nil
}
