package commands

import (
	"context"

	"wms/internal/core/domain/model/location"
)

type UpdateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewUpdateLocationCommandHandler(uowFactory LocationUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with CapacityExceeded when the new capacity is below the stored volume
// and with Conflict when the new code is taken.
func (h UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) (*location.Location, error) {
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

	if err = existing.Update(cmd.Code(), cmd.Description(), cmd.CapacityVolume()); err != nil {
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
