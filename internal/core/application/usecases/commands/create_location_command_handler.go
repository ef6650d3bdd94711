package commands

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"
)

// CreateLocationCommandHandler inserts a location under an existing parent.
// The parent's own chain must reach a root; a cycle in stored data is refused.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*location.Location, error) {
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

	if parentID := cmd.ParentID(); parentID != nil {
		all, err := repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}

		tree := location.NewTree(all)
		if _, ok := tree.Get(*parentID); !ok {
			return nil, errs.NewObjectNotFoundError("parent location", parentID.String())
		}
		if _, err = tree.Path(*parentID); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("parent location", err)
		}
	}

	created, err := location.NewLocation(
		kernel.NewUUID(),
		cmd.Code(),
		cmd.Description(),
		cmd.Type(),
		cmd.ParentID(),
		cmd.CapacityVolume(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
