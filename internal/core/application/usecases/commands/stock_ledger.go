package commands

import (
	"context"
	"errors"
	"time"

	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/movement"
	"wms/internal/core/domain/model/stock"
	"wms/internal/core/domain/services"
	"wms/internal/pkg/errs"
)

var ErrTargetIsSourceLocation = errors.New("target location equals source location")

// StockLedger applies quantity changes to stock rows inside the caller's unit of work.
// Every change keeps location volume in step and appends one movement.
type StockLedger struct {
	repos    LedgerRepos
	capacity services.CapacityTracker
	now      func() time.Time
}

func NewStockLedger(repos LedgerRepos) StockLedger {
	return StockLedger{
		repos:    repos,
		capacity: services.NewCapacityTracker(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Receive books quantity of i into l as a new Available row and logs an INBOUND movement.
func (l StockLedger) Receive(
	ctx context.Context,
	i *item.Item,
	target *location.Location,
	quantity kernel.Quantity,
	batch *string,
	operator kernel.Operator,
) (*stock.Stock, error) {
	if err := l.capacity.EnsureAccepting(target); err != nil {
		return nil, err
	}

	row, err := stock.NewStock(kernel.NewUUID(), i.ID(), target.ID(), quantity, batch)
	if err != nil {
		return nil, err
	}

	if err = l.capacity.Reserve(target, i, quantity); err != nil {
		return nil, err
	}

	if err = l.repos.StockRepository().Add(ctx, row); err != nil {
		return nil, err
	}
	if err = l.repos.LocationRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	entry, err := movement.NewInbound(i.ID(), target.ID(), quantity, operator, l.now())
	if err != nil {
		return nil, err
	}
	if err = l.repos.MovementRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	return row, nil
}

// Relocate moves quantity out of row (held at source) into target, merging into a
// matching row there when one exists. It returns the target row and logs a MOVE.
func (l StockLedger) Relocate(
	ctx context.Context,
	row *stock.Stock,
	i *item.Item,
	source, target *location.Location,
	quantity kernel.Quantity,
	operator kernel.Operator,
) (*stock.Stock, error) {
	if source.ID().IsEqual(target.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("target location", ErrTargetIsSourceLocation)
	}
	if err := l.capacity.EnsureAccepting(target); err != nil {
		return nil, err
	}
	if row.Quantity().LessThan(quantity) {
		return nil, errs.NewInsufficientStockError(i.Code(), quantity.String(), row.Quantity().String())
	}

	batch := row.Batch()
	if err := l.take(ctx, row, quantity); err != nil {
		return nil, err
	}
	if err := l.capacity.Release(source, i, quantity); err != nil {
		return nil, err
	}
	if err := l.repos.LocationRepository().Update(ctx, source); err != nil {
		return nil, err
	}

	if err := l.capacity.Reserve(target, i, quantity); err != nil {
		return nil, err
	}
	targetRow, err := l.put(ctx, i, target, quantity, batch)
	if err != nil {
		return nil, err
	}
	if err = l.repos.LocationRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	entry, err := movement.NewMove(i.ID(), source.ID(), target.ID(), quantity, operator, l.now())
	if err != nil {
		return nil, err
	}
	if err = l.repos.MovementRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	return targetRow, nil
}

// Consume removes quantity of i from the first row at source that covers it,
// releases its volume and logs an OUTBOUND movement.
func (l StockLedger) Consume(
	ctx context.Context,
	i *item.Item,
	source *location.Location,
	quantity kernel.Quantity,
	operator kernel.Operator,
) error {
	rows, err := l.repos.StockRepository().FindByLocationAndItem(ctx, source.ID(), i.ID())
	if err != nil {
		return err
	}

	var row *stock.Stock
	for _, candidate := range rows {
		if !candidate.Quantity().LessThan(quantity) {
			row = candidate
			break
		}
	}
	if row == nil {
		return errs.NewStockInconsistencyError(
			"no stock row of " + i.Code() + " at " + source.Code() + " holds " + quantity.String(),
		)
	}

	if err = l.take(ctx, row, quantity); err != nil {
		return err
	}
	if err = l.capacity.Release(source, i, quantity); err != nil {
		return err
	}
	if err = l.repos.LocationRepository().Update(ctx, source); err != nil {
		return err
	}

	entry, err := movement.NewOutbound(i.ID(), source.ID(), quantity, operator, l.now())
	if err != nil {
		return err
	}
	return l.repos.MovementRepository().Add(ctx, entry)
}

// take decrements row and deletes it once empty.
func (l StockLedger) take(ctx context.Context, row *stock.Stock, quantity kernel.Quantity) error {
	depleted, err := row.Decrease(quantity)
	if err != nil {
		return err
	}
	if depleted {
		return l.repos.StockRepository().Delete(ctx, row.ID())
	}
	return l.repos.StockRepository().Update(ctx, row)
}

// put adds quantity to the mergeable row at target or inserts a new one.
func (l StockLedger) put(
	ctx context.Context,
	i *item.Item,
	target *location.Location,
	quantity kernel.Quantity,
	batch *string,
) (*stock.Stock, error) {
	rows, err := l.repos.StockRepository().FindByLocationAndItem(ctx, target.ID(), i.ID())
	if err != nil {
		return nil, err
	}

	for _, existing := range rows {
		if existing.IsMergeableWith(i.ID(), target.ID(), batch) {
			existing.Increase(quantity)
			if err = l.repos.StockRepository().Update(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	created, err := stock.NewStock(kernel.NewUUID(), i.ID(), target.ID(), quantity, batch)
	if err != nil {
		return nil, err
	}
	if err = l.repos.StockRepository().Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
