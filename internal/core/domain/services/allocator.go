package services

import (
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
	"wms/internal/core/domain/model/task"
	"wms/internal/pkg/errs"
)

// AllocationRequest is one order line resolved against the ledger.
type AllocationRequest struct {
	OrderID kernel.UUID
	Item    *item.Item

	// Requested is the line quantity.
	Requested kernel.Quantity

	// SourceLocationCode is set when the line asks for a specific location.
	// Candidates must then already be restricted to it.
	SourceLocationCode *string

	// Candidates are the item's stock rows, in repository order.
	Candidates []*stock.Stock

	// Reserved is the quantity promised to pending tasks within the same scope as Candidates.
	Reserved kernel.Quantity
}

// Allocator turns an order line into picking tasks, greedily, one task per stock row.
//
// Allocation never touches stock quantities. Physical stock only changes when a
// task is confirmed.
type Allocator struct{}

func NewAllocator() Allocator {
	return Allocator{}
}

// Allocate checks effective availability (physical minus reserved) and emits
// Pending tasks whose targets sum to exactly the requested quantity.
//
// Errors:
//   - ObjectNotFound when a source location was requested and holds none of the item
//   - InsufficientStock when effective availability is below the request
//   - StockInconsistency when candidates cannot cover the request after all,
//     which only happens when the inputs contradict each other
func (a Allocator) Allocate(req AllocationRequest) ([]*task.PickingTask, error) {
	if err := req.Item.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*stock.Stock, 0, len(req.Candidates))
	quantities := make([]kernel.Quantity, 0, len(req.Candidates))
	for _, s := range req.Candidates {
		if !s.Quantity().IsPositive() {
			continue
		}
		candidates = append(candidates, s)
		quantities = append(quantities, s.Quantity())
	}
	physical := kernel.SumQuantities(quantities...)

	if req.SourceLocationCode != nil && len(candidates) == 0 {
		return nil, errs.NewObjectNotFoundError("stock of "+req.Item.Code()+" at location", *req.SourceLocationCode)
	}

	// Reservations can exceed what is left on the shelf after a drift; availability floors at zero.
	effective := physical.SubClamped(req.Reserved)
	if effective.LessThan(req.Requested) {
		return nil, errs.NewInsufficientStockError(req.Item.Code(), req.Requested.String(), effective.String())
	}

	tasks := make([]*task.PickingTask, 0, len(candidates))
	remaining := req.Requested
	for _, s := range candidates {
		if remaining.IsZero() {
			break
		}

		allocated := s.Quantity().Min(remaining)
		t, err := task.NewPickingTask(kernel.NewUUID(), req.OrderID, req.Item.ID(), s.LocationID(), allocated)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)

		if remaining, err = remaining.Sub(allocated); err != nil {
			return nil, err
		}
	}

	if remaining.IsPositive() {
		return nil, errs.NewStockInconsistencyError(
			"allocation of " + req.Item.Code() + " left " + remaining.String() + " unassigned",
		)
	}

	return tasks, nil
}
