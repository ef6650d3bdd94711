package commands

import (
	"context"

	"wms/internal/core/domain/model/item"
)

type UpdateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateItemCommandHandler(uowFactory CatalogUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle merges the supplied fields into the stored item and saves it.
func (h UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*item.Item, error) {
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

	repo := uow.ItemRepository()
	existing, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	description := valueOr(cmd.Description(), existing.Description())
	category := valueOr(cmd.Category(), existing.Category())
	unitOfMeasure := valueOr(cmd.UnitOfMeasure(), existing.UnitOfMeasure())

	unitVolume := existing.UnitVolume()
	if cmd.UnitVolume() != nil {
		unitVolume = cmd.UnitVolume()
	}
	reorderPoint := existing.ReorderPoint()
	if cmd.ReorderPoint() != nil {
		reorderPoint = cmd.ReorderPoint()
	}

	if err = existing.Update(description, category, unitOfMeasure, unitVolume, reorderPoint); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
