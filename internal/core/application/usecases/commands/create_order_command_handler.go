package commands

import (
	"context"
	"fmt"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/services"
)

// CreateOrderCommandHandler accepts an outbound order and allocates it into picking tasks.
//
// The order is committed on its own first. Allocation of all lines then runs in a
// second transaction, so a line that cannot be served leaves the order in New
// without any task.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.Allocator
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewAllocator(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.Lines(), h.now())
	if err != nil {
		return nil, err
	}

	if err = h.accept(ctx, o); err != nil {
		return nil, err
	}

	if err = h.allocate(ctx, o); err != nil {
		return nil, fmt.Errorf("allocate order %s: %w", o.Number(), err)
	}

	return o, nil
}

func (h CreateOrderCommandHandler) accept(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) allocate(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, line := range o.Lines() {
		if err := h.allocateLine(ctx, uow, o, line); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) allocateLine(ctx context.Context, uow UoW, o *order.Order, line order.Line) error {
	requested, err := uow.ItemRepository().GetByCode(ctx, line.ItemCode())
	if err != nil {
		return err
	}

	var scope *kernel.UUID
	if code := line.SourceLocationCode(); code != nil {
		source, err := uow.LocationRepository().GetByCode(ctx, *code)
		if err != nil {
			return err
		}
		id := source.ID()
		scope = &id
	}

	candidates, err := uow.StockRepository().FindByItem(ctx, requested.ID(), scope)
	if err != nil {
		return err
	}
	reserved, err := uow.TaskRepository().ReservedQuantity(ctx, requested.ID(), scope)
	if err != nil {
		return err
	}

	tasks, err := h.allocator.Allocate(services.AllocationRequest{
		OrderID:            o.ID(),
		Item:               requested,
		Requested:          line.Quantity(),
		SourceLocationCode: line.SourceLocationCode(),
		Candidates:         candidates,
		Reserved:           reserved,
	})
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if err = uow.TaskRepository().Add(ctx, t); err != nil {
			return err
		}
	}

	return nil
}
