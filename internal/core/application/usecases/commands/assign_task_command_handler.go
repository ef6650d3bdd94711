package commands

import (
	"context"

	"wms/internal/core/domain/model/task"
)

// AssignTaskCommandHandler hands a pending task to a picker.
type AssignTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

func NewAssignTaskCommandHandler(uowFactory TaskUoWFactory) AssignTaskCommandHandler {
	return AssignTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignTaskCommandHandler) Handle(ctx context.Context, cmd TaskCommand) (*task.PickingTask, error) {
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
	if err = t.Assign(); err != nil {
		return nil, err
	}
	if err = uow.TaskRepository().Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
