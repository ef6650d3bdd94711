package commands_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/movement"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/stock"
	"wms/internal/core/domain/model/task"
	"wms/internal/core/ports"
	"wms/internal/pkg/errs"
)

var errNoTransaction = errors.New("no transaction in progress")

// memState is one consistent snapshot of the warehouse. Aggregates are copied on
// the way in and out so a handler only changes what it explicitly saves.
type memState struct {
	items     map[string]*item.Item
	locations map[string]*location.Location
	stocks    map[string]*stock.Stock
	stockSeq  []string
	movements []*movement.Movement
	tasks     map[string]*task.PickingTask
	taskSeq   []string
	orders    map[string]*order.Order
}

func newMemState() *memState {
	return &memState{
		items:     map[string]*item.Item{},
		locations: map[string]*location.Location{},
		stocks:    map[string]*stock.Stock{},
		tasks:     map[string]*task.PickingTask{},
		orders:    map[string]*order.Order{},
	}
}

func (s *memState) clone() *memState {
	return &memState{
		items:     maps.Clone(s.items),
		locations: maps.Clone(s.locations),
		stocks:    maps.Clone(s.stocks),
		stockSeq:  slices.Clone(s.stockSeq),
		movements: slices.Clone(s.movements),
		tasks:     maps.Clone(s.tasks),
		taskSeq:   slices.Clone(s.taskSeq),
		orders:    maps.Clone(s.orders),
	}
}

func cp[T any](v *T) *T {
	c := *v
	return &c
}

// fakeWarehouse is an in-memory store whose units of work commit all or nothing.
type fakeWarehouse struct {
	committed *memState
	commits   int
}

func newFakeWarehouse() *fakeWarehouse {
	return &fakeWarehouse{committed: newMemState()}
}

func (w *fakeWarehouse) begin() *fakeUoW {
	return &fakeUoW{w: w}
}

func (w *fakeWarehouse) Create() commands.UoW { return w.begin() }

type catalogFactory struct{ w *fakeWarehouse }

func (f catalogFactory) Create() commands.CatalogUoW { return f.w.begin() }

type locationFactory struct{ w *fakeWarehouse }

func (f locationFactory) Create() commands.LocationUoW { return f.w.begin() }

type ledgerFactory struct{ w *fakeWarehouse }

func (f ledgerFactory) Create() commands.LedgerUoW { return f.w.begin() }

type orderFactory struct{ w *fakeWarehouse }

func (f orderFactory) Create() commands.OrderUoW { return f.w.begin() }

type taskFactory struct{ w *fakeWarehouse }

func (f taskFactory) Create() commands.TaskUoW { return f.w.begin() }

// Committed-state accessors used by assertions.

func (w *fakeWarehouse) location(code string) *location.Location {
	for _, l := range w.committed.locations {
		if l.Code() == code {
			return cp(l)
		}
	}
	return nil
}

func (w *fakeWarehouse) stockAt(locationID kernel.UUID) []*stock.Stock {
	var rows []*stock.Stock
	for _, id := range w.committed.stockSeq {
		if s := w.committed.stocks[id]; s.LocationID().IsEqual(locationID) {
			rows = append(rows, cp(s))
		}
	}
	return rows
}

func (w *fakeWarehouse) movements() []*movement.Movement {
	return slices.Clone(w.committed.movements)
}

func (w *fakeWarehouse) tasksOf(orderID kernel.UUID) []*task.PickingTask {
	var tasks []*task.PickingTask
	for _, id := range w.committed.taskSeq {
		if t := w.committed.tasks[id]; t.OrderID().IsEqual(orderID) {
			tasks = append(tasks, cp(t))
		}
	}
	return tasks
}

func (w *fakeWarehouse) order(id kernel.UUID) *order.Order {
	if o, ok := w.committed.orders[id.String()]; ok {
		return cp(o)
	}
	return nil
}

// fakeUoW works on a private copy of the committed state from Begin until Commit.
type fakeUoW struct {
	w  *fakeWarehouse
	tx *memState
}

func (u *fakeUoW) Begin(_ context.Context) error {
	if u.tx == nil {
		u.tx = u.w.committed.clone()
	}
	return nil
}

func (u *fakeUoW) Commit(_ context.Context) error {
	if u.tx == nil {
		return errNoTransaction
	}
	u.w.committed = u.tx
	u.w.commits++
	u.tx = nil
	return nil
}

func (u *fakeUoW) Rollback(_ context.Context) error {
	if u.tx == nil {
		return errNoTransaction
	}
	u.tx = nil
	return nil
}

func (u *fakeUoW) ItemRepository() ports.ItemRepository         { return memItems{u} }
func (u *fakeUoW) LocationRepository() ports.LocationRepository { return memLocations{u} }
func (u *fakeUoW) StockRepository() ports.StockRepository       { return memStocks{u} }
func (u *fakeUoW) MovementRepository() ports.MovementRepository { return memMovements{u} }
func (u *fakeUoW) TaskRepository() ports.TaskRepository         { return memTasks{u} }
func (u *fakeUoW) OrderRepository() ports.OrderRepository       { return memOrders{u} }

type memItems struct{ u *fakeUoW }

func (r memItems) Add(_ context.Context, i *item.Item) error {
	for _, existing := range r.u.tx.items {
		if existing.Code() == i.Code() {
			return errs.NewConflictError("item code", i.Code())
		}
	}
	r.u.tx.items[i.ID().String()] = cp(i)
	return nil
}

func (r memItems) Update(_ context.Context, i *item.Item) error {
	if _, ok := r.u.tx.items[i.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("item", i.ID())
	}
	r.u.tx.items[i.ID().String()] = cp(i)
	return nil
}

func (r memItems) Get(_ context.Context, id kernel.UUID) (*item.Item, error) {
	if i, ok := r.u.tx.items[id.String()]; ok {
		return cp(i), nil
	}
	return nil, errs.NewObjectNotFoundError("item", id)
}

func (r memItems) GetByCode(_ context.Context, code string) (*item.Item, error) {
	for _, i := range r.u.tx.items {
		if i.Code() == code {
			return cp(i), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", code)
}

type memLocations struct{ u *fakeUoW }

func (r memLocations) Add(_ context.Context, l *location.Location) error {
	for _, existing := range r.u.tx.locations {
		if existing.Code() == l.Code() {
			return errs.NewConflictError("location code", l.Code())
		}
	}
	r.u.tx.locations[l.ID().String()] = cp(l)
	return nil
}

func (r memLocations) Update(_ context.Context, l *location.Location) error {
	if _, ok := r.u.tx.locations[l.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("location", l.ID())
	}
	for _, existing := range r.u.tx.locations {
		if existing.Code() == l.Code() && !existing.ID().IsEqual(l.ID()) {
			return errs.NewConflictError("location code", l.Code())
		}
	}
	r.u.tx.locations[l.ID().String()] = cp(l)
	return nil
}

func (r memLocations) Get(_ context.Context, id kernel.UUID) (*location.Location, error) {
	if l, ok := r.u.tx.locations[id.String()]; ok {
		return cp(l), nil
	}
	return nil, errs.NewObjectNotFoundError("location", id)
}

func (r memLocations) GetByCode(_ context.Context, code string) (*location.Location, error) {
	for _, l := range r.u.tx.locations {
		if l.Code() == code {
			return cp(l), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("location", code)
}

func (r memLocations) GetAll(_ context.Context) ([]*location.Location, error) {
	all := make([]*location.Location, 0, len(r.u.tx.locations))
	for _, l := range r.u.tx.locations {
		all = append(all, cp(l))
	}
	slices.SortFunc(all, func(a, b *location.Location) int {
		return strings.Compare(a.Code(), b.Code())
	})
	return all, nil
}

type memStocks struct{ u *fakeUoW }

func (r memStocks) Add(_ context.Context, s *stock.Stock) error {
	r.u.tx.stocks[s.ID().String()] = cp(s)
	r.u.tx.stockSeq = append(r.u.tx.stockSeq, s.ID().String())
	return nil
}

func (r memStocks) Update(_ context.Context, s *stock.Stock) error {
	if _, ok := r.u.tx.stocks[s.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("stock", s.ID())
	}
	r.u.tx.stocks[s.ID().String()] = cp(s)
	return nil
}

func (r memStocks) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.u.tx.stocks[id.String()]; !ok {
		return errs.NewObjectNotFoundError("stock", id)
	}
	delete(r.u.tx.stocks, id.String())
	r.u.tx.stockSeq = slices.DeleteFunc(r.u.tx.stockSeq, func(s string) bool { return s == id.String() })
	return nil
}

func (r memStocks) Get(_ context.Context, id kernel.UUID) (*stock.Stock, error) {
	if s, ok := r.u.tx.stocks[id.String()]; ok {
		return cp(s), nil
	}
	return nil, errs.NewObjectNotFoundError("stock", id)
}

func (r memStocks) FindByItem(_ context.Context, itemID kernel.UUID, locationID *kernel.UUID) ([]*stock.Stock, error) {
	var rows []*stock.Stock
	for _, id := range r.u.tx.stockSeq {
		s := r.u.tx.stocks[id]
		if !s.ItemID().IsEqual(itemID) || !s.Quantity().IsPositive() {
			continue
		}
		if locationID != nil && !s.LocationID().IsEqual(*locationID) {
			continue
		}
		rows = append(rows, cp(s))
	}
	return rows, nil
}

func (r memStocks) FindByLocationAndItem(_ context.Context, locationID, itemID kernel.UUID) ([]*stock.Stock, error) {
	var rows []*stock.Stock
	for _, id := range r.u.tx.stockSeq {
		s := r.u.tx.stocks[id]
		if s.ItemID().IsEqual(itemID) && s.LocationID().IsEqual(locationID) {
			rows = append(rows, cp(s))
		}
	}
	return rows, nil
}

type memMovements struct{ u *fakeUoW }

func (r memMovements) Add(_ context.Context, m *movement.Movement) error {
	r.u.tx.movements = append(r.u.tx.movements, cp(m))
	return nil
}

type memTasks struct{ u *fakeUoW }

func (r memTasks) Add(_ context.Context, t *task.PickingTask) error {
	r.u.tx.tasks[t.ID().String()] = cp(t)
	r.u.tx.taskSeq = append(r.u.tx.taskSeq, t.ID().String())
	return nil
}

func (r memTasks) Update(_ context.Context, t *task.PickingTask) error {
	if _, ok := r.u.tx.tasks[t.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("picking task", t.ID())
	}
	r.u.tx.tasks[t.ID().String()] = cp(t)
	return nil
}

func (r memTasks) Get(_ context.Context, id kernel.UUID) (*task.PickingTask, error) {
	if t, ok := r.u.tx.tasks[id.String()]; ok {
		return cp(t), nil
	}
	return nil, errs.NewObjectNotFoundError("picking task", id)
}

func (r memTasks) FindByOrder(_ context.Context, orderID kernel.UUID) ([]*task.PickingTask, error) {
	var tasks []*task.PickingTask
	for _, id := range r.u.tx.taskSeq {
		if t := r.u.tx.tasks[id]; t.OrderID().IsEqual(orderID) {
			tasks = append(tasks, cp(t))
		}
	}
	return tasks, nil
}

func (r memTasks) ReservedQuantity(_ context.Context, itemID kernel.UUID, locationID *kernel.UUID) (kernel.Quantity, error) {
	reserved := kernel.ZeroQuantity()
	for _, t := range r.u.tx.tasks {
		if !t.Status().IsOutstanding() || !t.ItemID().IsEqual(itemID) {
			continue
		}
		if locationID != nil && !t.LocationID().IsEqual(*locationID) {
			continue
		}
		reserved = reserved.Add(t.TargetQuantity())
	}
	return reserved, nil
}

type memOrders struct{ u *fakeUoW }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	for _, existing := range r.u.tx.orders {
		if existing.Number() == o.Number() {
			return errs.NewConflictError("order number", o.Number())
		}
	}
	r.u.tx.orders[o.ID().String()] = cp(o)
	return nil
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.u.tx.orders[o.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	r.u.tx.orders[o.ID().String()] = cp(o)
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := r.u.tx.orders[id.String()]; ok {
		return cp(o), nil
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}
