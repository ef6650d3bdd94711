package queries_test

import (
	"context"
	"testing"

	"wms/internal/adapters/out/postgres"
	"wms/internal/adapters/out/postgres/pgtest"
	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type uowFactory struct{ f *postgres.GormUnitOfWorkFactory }

func (g uowFactory) Create() commands.UoW { return g.f.Create() }

type catalogFactory struct{ uowFactory }

func (g catalogFactory) Create() commands.CatalogUoW { return g.f.Create() }

type locationFactory struct{ uowFactory }

func (g locationFactory) Create() commands.LocationUoW { return g.f.Create() }

type ledgerFactory struct{ uowFactory }

func (g ledgerFactory) Create() commands.LedgerUoW { return g.f.Create() }

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   uowFactory

	zone, binA, binB *location.Location
	widget, gadget   *item.Item
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.factory = uowFactory{f: postgres.NewGormUnitOfWorkFactory(db)}
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// SetupTest builds ZONE-A with two bins, receives 10 + 4 widgets and leaves
// the gadget without stock.
func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE items, locations, stocks, stock_movements, picking_tasks, outbound_orders",
	).Error)

	suite.zone = suite.createLocation("ZONE-A", "Fast movers", location.Area, nil, decimal.Decimal{})
	zoneID := suite.zone.ID()
	suite.binA = suite.createLocation("A-01", "", location.Bin, &zoneID, decimal.NewFromInt(100))
	suite.binB = suite.createLocation("A-02", "", location.Bin, &zoneID, decimal.NewFromInt(100))

	reorderPoint := kernel.MustQuantity(5)
	suite.widget = suite.createItem("SKU-1", decimal.NewFromInt(2), &reorderPoint)
	suite.gadget = suite.createItem("SKU-2", decimal.Decimal{}, nil)

	suite.receive(suite.widget, suite.binA, 10)
	suite.receive(suite.widget, suite.binB, 4)
}

func (suite *QueriesIntegrationTestSuite) operator() kernel.Operator {
	op, err := kernel.NewOperator("integration")
	suite.Require().NoError(err)
	return op
}

func (suite *QueriesIntegrationTestSuite) createLocation(
	code, description string,
	locationType location.Type,
	parentID *kernel.UUID,
	capacity decimal.Decimal,
) *location.Location {
	var capacityPtr *decimal.Decimal
	if !capacity.IsZero() {
		capacityPtr = &capacity
	}
	cmd, err := commands.NewCreateLocationCommand(code, description, locationType, parentID, capacityPtr)
	suite.Require().NoError(err)
	created, err := commands.NewCreateLocationCommandHandler(locationFactory{suite.factory}).Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return created
}

func (suite *QueriesIntegrationTestSuite) createItem(code string, unitVolume decimal.Decimal, reorderPoint *kernel.Quantity) *item.Item {
	var volumePtr *decimal.Decimal
	if !unitVolume.IsZero() {
		volumePtr = &unitVolume
	}
	cmd := commands.NewCreateItemCommand(code, code+" description", "general", "EA", volumePtr, reorderPoint)
	created, err := commands.NewCreateItemCommandHandler(catalogFactory{suite.factory}).Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return created
}

func (suite *QueriesIntegrationTestSuite) receive(i *item.Item, l *location.Location, quantity int64) {
	cmd, err := commands.NewCreateStockCommand(i.ID(), l.ID(), kernel.MustQuantity(quantity), nil, suite.operator())
	suite.Require().NoError(err)
	_, err = commands.NewCreateStockCommandHandler(ledgerFactory{suite.factory}).Handle(context.Background(), cmd)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) placeOrder(itemCode string, quantity int64) *order.Order {
	line, err := order.NewLine(itemCode, kernel.MustQuantity(quantity), nil)
	suite.Require().NoError(err)
	cmd, err := commands.NewCreateOrderCommand("CUST-1", []order.Line{line})
	suite.Require().NoError(err)
	created, err := commands.NewCreateOrderCommandHandler(suite.factory).Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return created
}

func (suite *QueriesIntegrationTestSuite) TestItems() {
	ctx := context.Background()
	handler := queries.NewItemQueryHandler(suite.db)

	all, err := handler.List(ctx, queries.NewListItemsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("SKU-1", all[0].Code)
	suite.True(all[0].UnitVolume.Equal(decimal.NewFromInt(2)))
	suite.Nil(all[1].ReorderPoint)

	query, err := queries.NewGetItemQuery(suite.gadget.ID())
	suite.Require().NoError(err)
	one, err := handler.Get(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("SKU-2", one.Code)

	query, err = queries.NewGetItemQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Get(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestLocations() {
	ctx := context.Background()
	handler := queries.NewLocationQueryHandler(suite.db)

	bins := location.Bin
	query, err := queries.NewListLocationsQuery(&bins)
	suite.Require().NoError(err)
	listed, err := handler.List(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.Equal("A-01", listed[0].Code)
	suite.Equal("OCCUPIED", listed[0].Status)

	get, err := queries.NewGetLocationQuery(suite.binB.ID())
	suite.Require().NoError(err)
	one, err := handler.Get(ctx, get)
	suite.Require().NoError(err)
	suite.Equal([]string{"ZONE-A", "A-02"}, one.Path)
	suite.True(one.CurrentVolume.Equal(decimal.NewFromInt(8)))
}

func (suite *QueriesIntegrationTestSuite) TestStock() {
	ctx := context.Background()
	handler := queries.NewStockQueryHandler(suite.db)

	byLocation, err := queries.NewGetStockByLocationQuery(suite.binA.ID())
	suite.Require().NoError(err)
	rows, err := handler.ByLocation(ctx, byLocation)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("SKU-1", rows[0].ItemCode)
	suite.True(rows[0].Quantity.Equal(kernel.MustQuantity(10)))
	suite.Equal("AVAILABLE", rows[0].Status)

	byItem, err := queries.NewGetStockByItemQuery("SKU-1")
	suite.Require().NoError(err)
	rows, err = handler.ByItem(ctx, byItem)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("A-01", rows[0].LocationCode)
	suite.Equal("A-02", rows[1].LocationCode)

	summary, err := handler.Summary(ctx, queries.NewGetInventorySummaryQuery())
	suite.Require().NoError(err)
	suite.Require().Len(summary, 1)
	suite.True(summary[0].TotalQuantity.Equal(kernel.MustQuantity(14)))
	suite.Equal(2, summary[0].StockRows)
}

func (suite *QueriesIntegrationTestSuite) TestOrdersAndTasks() {
	ctx := context.Background()
	placed := suite.placeOrder("SKU-1", 12)

	orders := queries.NewOrderQueryHandler(suite.db)
	listed, err := orders.List(ctx, queries.NewListOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(placed.Number(), listed[0].Number)
	suite.Require().Len(listed[0].Lines, 1)
	suite.True(listed[0].Lines[0].Quantity.Equal(kernel.MustQuantity(12)))

	get, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)
	one, err := orders.Get(ctx, get)
	suite.Require().NoError(err)
	suite.Equal("NEW", one.Status)
	suite.Require().Len(one.Tasks, 2)

	pending, err := queries.NewGetPendingTasksQueryHandler(suite.db).Handle(ctx, queries.NewGetPendingTasksQuery())
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	codes := []string{pending[0].LocationCode, pending[1].LocationCode}
	suite.ElementsMatch([]string{"A-01", "A-02"}, codes)
	suite.Equal(placed.Number(), pending[0].OrderNumber)

	get, err = queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = orders.Get(ctx, get)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestLowStockAndDashboard() {
	ctx := context.Background()
	suite.placeOrder("SKU-1", 3)

	low, err := queries.NewGetLowStockItemsQuery(kernel.MustQuantity(3))
	suite.Require().NoError(err)
	items, err := queries.NewGetLowStockItemsQueryHandler(suite.db).Handle(ctx, low)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("SKU-2", items[0].Item.Code)
	suite.True(items[0].Threshold.Equal(kernel.MustQuantity(3)))

	stats, err := queries.NewGetDashboardStatsQuery(kernel.MustQuantity(3))
	suite.Require().NoError(err)
	dashboard, err := queries.NewGetDashboardStatsQueryHandler(suite.db).Handle(ctx, stats)
	suite.Require().NoError(err)
	suite.True(dashboard.TotalStockUnits.Equal(kernel.MustQuantity(14)))
	suite.EqualValues(1, dashboard.PendingOrders)
	suite.EqualValues(1, dashboard.PendingTasks)
	suite.Equal(1, dashboard.LowStockAlerts)
}

func (suite *QueriesIntegrationTestSuite) TestRecentMovements() {
	ctx := context.Background()

	query, err := queries.NewGetRecentMovementsQuery(0)
	suite.Require().NoError(err)
	movements, err := queries.NewGetRecentMovementsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(movements, 2)

	descriptions := []string{movements[0].Description, movements[1].Description}
	suite.ElementsMatch([]string{"Received 10 units", "Received 4 units"}, descriptions)
	suite.Nil(movements[0].FromLocationCode)
	suite.Require().NotNil(movements[0].ToLocationCode)
	suite.Equal("integration", movements[0].Operator)

	_, err = queries.NewGetRecentMovementsQuery(501)
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *QueriesIntegrationTestSuite) TestZoneCapacity() {
	zones, err := queries.NewGetZoneCapacityQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetZoneCapacityQuery())

	suite.Require().NoError(err)
	suite.Require().Len(zones, 1)
	suite.Equal("ZONE-A", zones[0].Code)
	suite.True(zones[0].Capacity.Equal(decimal.NewFromInt(200)))
	suite.True(zones[0].Current.Equal(decimal.NewFromInt(28)))
	suite.EqualValues(14, zones[0].Percentage)
}
