package cmd

import (
	"log/slog"

	httpin "wms/internal/adapters/in/http"
	"wms/internal/adapters/out/picklist"
	"wms/internal/adapters/out/postgres"
	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) catalogFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) locationFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) ledgerFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) taskFactory() commands.TaskUoWFactory {
	return FuncTaskUoWFactory(func() commands.TaskUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) fullFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })
}

// LowStockThreshold is the configured default, or zero when the value is unusable.
func (c *CompositionRoot) LowStockThreshold() kernel.Quantity {
	threshold, err := kernel.NewQuantity(c.config.LowStockDefaultThreshold)
	if err != nil {
		c.logger.Warn("ignoring invalid low stock threshold", "value", c.config.LowStockDefaultThreshold.String())
		return kernel.ZeroQuantity()
	}
	return threshold
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.catalogFactory())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.catalogFactory())
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.locationFactory())
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.locationFactory())
}

func (c *CompositionRoot) CreateBlockLocationCommandHandler() commands.BlockLocationCommandHandler {
	return commands.NewBlockLocationCommandHandler(c.locationFactory())
}

func (c *CompositionRoot) CreateCreateStockCommandHandler() commands.CreateStockCommandHandler {
	return commands.NewCreateStockCommandHandler(c.ledgerFactory())
}

func (c *CompositionRoot) CreateMoveStockCommandHandler() commands.MoveStockCommandHandler {
	return commands.NewMoveStockCommandHandler(c.ledgerFactory())
}

func (c *CompositionRoot) CreateRelocateStockCommandHandler() commands.RelocateStockCommandHandler {
	return commands.NewRelocateStockCommandHandler(c.ledgerFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreateConfirmTaskCommandHandler() commands.ConfirmTaskCommandHandler {
	return commands.NewConfirmTaskCommandHandler(c.fullFactory())
}

func (c *CompositionRoot) CreateAssignTaskCommandHandler() commands.AssignTaskCommandHandler {
	return commands.NewAssignTaskCommandHandler(c.taskFactory())
}

func (c *CompositionRoot) CreateCancelTaskCommandHandler() commands.CancelTaskCommandHandler {
	return commands.NewCancelTaskCommandHandler(c.taskFactory())
}

// UseCases binds every handler the HTTP server exposes.
func (c *CompositionRoot) UseCases() httpin.UseCases {
	items := queries.NewItemQueryHandler(c.gormDB)
	locations := queries.NewLocationQueryHandler(c.gormDB)
	stock := queries.NewStockQueryHandler(c.gormDB)
	orders := queries.NewOrderQueryHandler(c.gormDB)

	return httpin.UseCases{
		CreateItem:    c.CreateCreateItemCommandHandler().Handle,
		UpdateItem:    c.CreateUpdateItemCommandHandler().Handle,
		ListItems:     items.List,
		GetItem:       items.Get,
		LowStockItems: queries.NewGetLowStockItemsQueryHandler(c.gormDB).Handle,

		CreateLocation: c.CreateCreateLocationCommandHandler().Handle,
		UpdateLocation: c.CreateUpdateLocationCommandHandler().Handle,
		BlockLocation:  c.CreateBlockLocationCommandHandler().Handle,
		ListLocations:  locations.List,
		GetLocation:    locations.Get,

		Putaway:          c.CreateCreateStockCommandHandler().Handle,
		MoveStock:        c.CreateMoveStockCommandHandler().Handle,
		RelocateStock:    c.CreateRelocateStockCommandHandler().Handle,
		InventorySummary: stock.Summary,
		StockByLocation:  stock.ByLocation,
		StockByItem:      stock.ByItem,

		CreateOrder:  c.CreateCreateOrderCommandHandler().Handle,
		ShipOrder:    c.CreateShipOrderCommandHandler().Handle,
		ListOrders:   orders.List,
		GetOrder:     orders.Get,
		PendingTasks: queries.NewGetPendingTasksQueryHandler(c.gormDB).Handle,
		ConfirmTask:  c.CreateConfirmTaskCommandHandler().Handle,
		AssignTask:   c.CreateAssignTaskCommandHandler().Handle,
		CancelTask:   c.CreateCancelTaskCommandHandler().Handle,

		DashboardStats:  queries.NewGetDashboardStatsQueryHandler(c.gormDB).Handle,
		RecentMovements: queries.NewGetRecentMovementsQueryHandler(c.gormDB).Handle,
		ZoneCapacity:    queries.NewGetZoneCapacityQueryHandler(c.gormDB).Handle,
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.UseCases(), picklist.NewGenerator(), c.LowStockThreshold())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetLowStockItemsQueryHandler(c.gormDB),
		c.LowStockThreshold(),
		c.config.LowStockReportSchedule,
		c.logger,
	)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
