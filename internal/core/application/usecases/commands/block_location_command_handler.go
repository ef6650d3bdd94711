package commands

import (
	"context"

	"wms/internal/core/domain/model/location"
)

type BlockLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewBlockLocationCommandHandler(uowFactory LocationUoWFactory) BlockLocationCommandHandler {
	return BlockLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h BlockLocationCommandHandler) Handle(ctx context.Context, cmd BlockLocationCommand) (*location.Location, error) {
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

	repo := uow.LocationRepository()
	existing, err := repo.Get(ctx, cmd.LocationID())
	if err != nil {
		return nil, err
	}

	if err = existing.Block(); err != nil {
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
