package commands

import (
	"context"

	"wms/internal/core/domain/model/task"
	"wms/internal/core/domain/services"
)

// ConfirmTaskCommandHandler completes a pending or assigned task: the picked quantity leaves
// the ledger, the source location's volume drops and the order status follows.
type ConfirmTaskCommandHandler struct {
	uowFactory UoWFactory
	progress   services.OrderProgress
}

func NewConfirmTaskCommandHandler(uowFactory UoWFactory) ConfirmTaskCommandHandler {
	return ConfirmTaskCommandHandler{
		uowFactory: uowFactory,
		progress:   services.NewOrderProgress(),
	}
}

func (h ConfirmTaskCommandHandler) Handle(ctx context.Context, cmd ConfirmTaskCommand) (*task.PickingTask, error) {
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
	if err = t.Complete(); err != nil {
		return nil, err
	}

	picked, err := uow.ItemRepository().Get(ctx, t.ItemID())
	if err != nil {
		return nil, err
	}
	source, err := uow.LocationRepository().Get(ctx, t.LocationID())
	if err != nil {
		return nil, err
	}

	if err = NewStockLedger(uow).Consume(ctx, picked, source, t.TargetQuantity(), cmd.Operator()); err != nil {
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

// refreshOrder recomputes the status of t's order from all of its tasks.
func refreshOrder(ctx context.Context, uow TaskUoW, progress services.OrderProgress, t *task.PickingTask) error {
	o, err := uow.OrderRepository().Get(ctx, t.OrderID())
	if err != nil {
		return err
	}
	tasks, err := uow.TaskRepository().FindByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	changed, err := progress.Apply(o, tasks)
	if err != nil || !changed {
		return err
	}

	return uow.OrderRepository().Update(ctx, o)
}
