package commands

import (
	"context"

	"wms/internal/core/domain/model/task"
	"wms/internal/core/domain/services"
)

// CancelTaskCommandHandler withdraws a pending or assigned task. The order may
// become Picked when the cancelled task was the last one outstanding.
type CancelTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	progress   services.OrderProgress
}

func NewCancelTaskCommandHandler(uowFactory TaskUoWFactory) CancelTaskCommandHandler {
	return CancelTaskCommandHandler{
		uowFactory: uowFactory,
		progress:   services.NewOrderProgress(),
	}
}

func (h CancelTaskCommandHandler) Handle(ctx context.Context, cmd TaskCommand) (*task.PickingTask, error) {
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

	t, err := uow.TaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return nil, err
	}
	if err = t.Cancel(); err != nil {
		return nil, err
	}
	if err = uow.TaskRepository().Update(ctx, t); err != nil {
		return nil, err
	}

	if err = refreshOrder(ctx, uow, h.progress, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
