package http

import (
	"context"
	"net/http"
	"strings"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/stock"
	"wms/internal/core/domain/model/task"
	"wms/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	operatorHeader  = "X-Operator"
	defaultOperator = "anonymous"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] func(ctx context.Context, in In) (Out, error)

// PickListRenderer turns an order with its tasks into a printable document.
type PickListRenderer interface {
	Render(order queries.OrderResponse) ([]byte, error)
}

// UseCases wires the application layer into the server.
type UseCases struct {
	CreateItem    Handler[commands.CreateItemCommand, *item.Item]
	UpdateItem    Handler[commands.UpdateItemCommand, *item.Item]
	ListItems     Handler[queries.ListItemsQuery, []queries.ItemResponse]
	GetItem       Handler[queries.GetItemQuery, queries.ItemResponse]
	LowStockItems Handler[queries.GetLowStockItemsQuery, []queries.LowStockItemResponse]

	CreateLocation Handler[commands.CreateLocationCommand, *location.Location]
	UpdateLocation Handler[commands.UpdateLocationCommand, *location.Location]
	BlockLocation  Handler[commands.BlockLocationCommand, *location.Location]
	ListLocations  Handler[queries.ListLocationsQuery, []queries.LocationResponse]
	GetLocation    Handler[queries.GetLocationQuery, queries.LocationResponse]

	Putaway          Handler[commands.CreateStockCommand, *stock.Stock]
	MoveStock        Handler[commands.MoveStockCommand, *stock.Stock]
	RelocateStock    Handler[commands.RelocateStockCommand, *stock.Stock]
	InventorySummary Handler[queries.GetInventorySummaryQuery, []queries.InventorySummaryResponse]
	StockByLocation  Handler[queries.GetStockByLocationQuery, []queries.StockResponse]
	StockByItem      Handler[queries.GetStockByItemQuery, []queries.StockResponse]

	CreateOrder  Handler[commands.CreateOrderCommand, *order.Order]
	ShipOrder    Handler[commands.ShipOrderCommand, *order.Order]
	ListOrders   Handler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder     Handler[queries.GetOrderQuery, queries.OrderResponse]
	PendingTasks Handler[queries.GetPendingTasksQuery, []queries.TaskResponse]
	ConfirmTask  Handler[commands.ConfirmTaskCommand, *task.PickingTask]
	AssignTask   Handler[commands.TaskCommand, *task.PickingTask]
	CancelTask   Handler[commands.TaskCommand, *task.PickingTask]

	DashboardStats  Handler[queries.GetDashboardStatsQuery, queries.DashboardStatsResponse]
	RecentMovements Handler[queries.GetRecentMovementsQuery, []queries.MovementResponse]
	ZoneCapacity    Handler[queries.GetZoneCapacityQuery, []services.ZoneCapacity]
}

// Server implements ServerInterface on top of the use cases.
type Server struct {
	uc                UseCases
	pickLists         PickListRenderer
	lowStockThreshold kernel.Quantity
}

// NewServer creates the HTTP server. lowStockThreshold applies to items without a reorder point.
func NewServer(uc UseCases, pickLists PickListRenderer, lowStockThreshold kernel.Quantity) *Server {
	return &Server{uc: uc, pickLists: pickLists, lowStockThreshold: lowStockThreshold}
}

var _ ServerInterface = (*Server)(nil)

func operatorOf(ctx echo.Context) (kernel.Operator, error) {
	name := strings.TrimSpace(ctx.Request().Header.Get(operatorHeader))
	if name == "" {
		name = defaultOperator
	}
	return kernel.NewOperator(name)
}

func bind[T any](ctx echo.Context) (T, error) {
	var body T
	if err := ctx.Bind(&body); err != nil {
		return body, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return body, nil
}

func toID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalKernelID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toQuantity(d *decimal.Decimal) (*kernel.Quantity, error) {
	if d == nil {
		return nil, nil
	}
	q, err := kernel.NewQuantity(*d)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Items

func (s *Server) ListItems(ctx echo.Context) error {
	items, err := s.uc.ListItems(ctx.Request().Context(), queries.NewListItemsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(items, toItem))
}

func (s *Server) CreateItem(ctx echo.Context) error {
	body, err := bind[NewItem](ctx)
	if err != nil {
		return err
	}
	reorderPoint, err := toQuantity(body.ReorderPoint)
	if err != nil {
		return err
	}

	cmd := commands.NewCreateItemCommand(
		body.Code, body.Description, body.Category, body.UnitOfMeasure, body.UnitVolume, reorderPoint,
	)
	created, err := s.uc.CreateItem(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondItem(ctx, http.StatusCreated, created.ID())
}

func (s *Server) ListLowStockItems(ctx echo.Context) error {
	query, err := queries.NewGetLowStockItemsQuery(s.lowStockThreshold)
	if err != nil {
		return err
	}
	low, err := s.uc.LowStockItems(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(low, func(v queries.LowStockItemResponse) LowStockItem {
		return LowStockItem{Item: toItem(v.Item), OnHand: v.OnHand.Decimal(), Threshold: v.Threshold.Decimal()}
	}))
}

func (s *Server) GetItem(ctx echo.Context, id openapi_types.UUID) error {
	itemID, err := toID(id)
	if err != nil {
		return err
	}
	return s.respondItem(ctx, http.StatusOK, itemID)
}

func (s *Server) UpdateItem(ctx echo.Context, id openapi_types.UUID) error {
	body, err := bind[ItemChanges](ctx)
	if err != nil {
		return err
	}
	itemID, err := toID(id)
	if err != nil {
		return err
	}
	reorderPoint, err := toQuantity(body.ReorderPoint)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateItemCommand(
		itemID, body.Description, body.Category, body.UnitOfMeasure, body.UnitVolume, reorderPoint,
	)
	if err != nil {
		return err
	}
	if _, err = s.uc.UpdateItem(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondItem(ctx, http.StatusOK, itemID)
}

func (s *Server) respondItem(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetItemQuery(id)
	if err != nil {
		return err
	}
	found, err := s.uc.GetItem(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toItem(found))
}

// Locations

func (s *Server) ListLocations(ctx echo.Context, params ListLocationsParams) error {
	var locationType *location.Type
	if params.Type != nil {
		parsed, err := location.ParseType(*params.Type)
		if err != nil {
			return err
		}
		locationType = &parsed
	}

	query, err := queries.NewListLocationsQuery(locationType)
	if err != nil {
		return err
	}
	locations, err := s.uc.ListLocations(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(locations, toLocation))
}

func (s *Server) CreateLocation(ctx echo.Context) error {
	body, err := bind[NewLocation](ctx)
	if err != nil {
		return err
	}
	locationType, err := location.ParseType(body.Type)
	if err != nil {
		return err
	}
	parentID, err := optionalKernelID(body.ParentID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateLocationCommand(body.Code, body.Description, locationType, parentID, body.CapacityVolume)
	if err != nil {
		return err
	}
	created, err := s.uc.CreateLocation(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondLocation(ctx, http.StatusCreated, created.ID())
}

func (s *Server) GetLocation(ctx echo.Context, id openapi_types.UUID) error {
	locationID, err := toID(id)
	if err != nil {
		return err
	}
	return s.respondLocation(ctx, http.StatusOK, locationID)
}

func (s *Server) UpdateLocation(ctx echo.Context, id openapi_types.UUID) error {
	body, err := bind[LocationChanges](ctx)
	if err != nil {
		return err
	}
	locationID, err := toID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLocationCommand(locationID, body.Code, body.Description, body.CapacityVolume)
	if err != nil {
		return err
	}
	if _, err = s.uc.UpdateLocation(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondLocation(ctx, http.StatusOK, locationID)
}

func (s *Server) BlockLocation(ctx echo.Context, id openapi_types.UUID) error {
	locationID, err := toID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBlockLocationCommand(locationID)
	if err != nil {
		return err
	}
	if _, err = s.uc.BlockLocation(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondLocation(ctx, http.StatusOK, locationID)
}

func (s *Server) respondLocation(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetLocationQuery(id)
	if err != nil {
		return err
	}
	found, err := s.uc.GetLocation(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toLocation(found))
}

// Stock

func (s *Server) Putaway(ctx echo.Context) error {
	body, err := bind[PutawayRequest](ctx)
	if err != nil {
		return err
	}
	op, err := operatorOf(ctx)
	if err != nil {
		return err
	}
	itemID, err := toID(body.ItemID)
	if err != nil {
		return err
	}
	locationID, err := toID(body.LocationID)
	if err != nil {
		return err
	}
	quantity, err := kernel.NewQuantity(body.Quantity)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateStockCommand(itemID, locationID, quantity, body.Batch, op)
	if err != nil {
		return err
	}
	row, err := s.uc.Putaway(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, stockFromDomain(row))
}

func (s *Server) MoveStock(ctx echo.Context) error {
	body, err := bind[MoveRequest](ctx)
	if err != nil {
		return err
	}
	op, err := operatorOf(ctx)
	if err != nil {
		return err
	}
	quantity, err := kernel.NewQuantity(body.Quantity)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMoveStockCommand(body.ItemCode, body.SourceLocationCode, body.TargetLocationCode, quantity, op)
	if err != nil {
		return err
	}
	row, err := s.uc.MoveStock(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stockFromDomain(row))
}

func (s *Server) RelocateStock(ctx echo.Context, id openapi_types.UUID) error {
	body, err := bind[RelocateRequest](ctx)
	if err != nil {
		return err
	}
	op, err := operatorOf(ctx)
	if err != nil {
		return err
	}
	stockID, err := toID(id)
	if err != nil {
		return err
	}
	targetID, err := toID(body.TargetLocationID)
	if err != nil {
		return err
	}
	quantity, err := kernel.NewQuantity(body.Quantity)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRelocateStockCommand(stockID, targetID, quantity, op)
	if err != nil {
		return err
	}
	row, err := s.uc.RelocateStock(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stockFromDomain(row))
}

func (s *Server) GetInventorySummary(ctx echo.Context) error {
	summary, err := s.uc.InventorySummary(ctx.Request().Context(), queries.NewGetInventorySummaryQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(summary, func(v queries.InventorySummaryResponse) InventoryLine {
		return InventoryLine{
			ItemID:        v.ItemID.Bytes(),
			ItemCode:      v.ItemCode,
			Description:   v.Description,
			TotalQuantity: v.TotalQuantity.Decimal(),
			StockRows:     v.StockRows,
		}
	}))
}

func (s *Server) GetStockByLocation(ctx echo.Context, id openapi_types.UUID) error {
	locationID, err := toID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetStockByLocationQuery(locationID)
	if err != nil {
		return err
	}
	rows, err := s.uc.StockByLocation(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(rows, toStock))
}

func (s *Server) GetStockByItem(ctx echo.Context, code string) error {
	query, err := queries.NewGetStockByItemQuery(code)
	if err != nil {
		return err
	}
	rows, err := s.uc.StockByItem(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(rows, toStock))
}

// Outbound

func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.uc.ListOrders(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(orders, toOrder))
}

func (s *Server) CreateOrder(ctx echo.Context) error {
	body, err := bind[NewOrder](ctx)
	if err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(body.Lines))
	for _, l := range body.Lines {
		quantity, err := kernel.NewQuantity(l.Quantity)
		if err != nil {
			return err
		}
		line, err := order.NewLine(l.ItemCode, quantity, l.SourceLocationCode)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerID, lines)
	if err != nil {
		return err
	}
	created, err := s.uc.CreateOrder(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusCreated, created.ID())
}

func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toID(id)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) ShipOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return err
	}
	if _, err = s.uc.ShipOrder(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) GetPickList(ctx echo.Context, id openapi_types.UUID) error {
	found, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	pdf, err := s.pickLists.Render(found)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="picklist-`+found.Number+`.pdf"`)
	return ctx.Blob(http.StatusOK, "application/pdf", pdf)
}

func (s *Server) loadOrder(ctx echo.Context, id openapi_types.UUID) (queries.OrderResponse, error) {
	orderID, err := toID(id)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.uc.GetOrder(ctx.Request().Context(), query)
}

func (s *Server) respondOrder(ctx echo.Context, status int, id kernel.UUID) error {
	found, err := s.loadOrder(ctx, id.Bytes())
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(found))
}

func (s *Server) ListPendingTasks(ctx echo.Context) error {
	tasks, err := s.uc.PendingTasks(ctx.Request().Context(), queries.NewGetPendingTasksQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(tasks, toTask))
}

func (s *Server) ConfirmTask(ctx echo.Context, id openapi_types.UUID) error {
	op, err := operatorOf(ctx)
	if err != nil {
		return err
	}
	taskID, err := toID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmTaskCommand(taskID, op)
	if err != nil {
		return err
	}
	confirmed, err := s.uc.ConfirmTask(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, taskFromDomain(confirmed))
}

func (s *Server) AssignTask(ctx echo.Context, id openapi_types.UUID) error {
	return s.changeTask(ctx, id, s.uc.AssignTask)
}

func (s *Server) CancelTask(ctx echo.Context, id openapi_types.UUID) error {
	return s.changeTask(ctx, id, s.uc.CancelTask)
}

func (s *Server) changeTask(
	ctx echo.Context,
	id openapi_types.UUID,
	handle Handler[commands.TaskCommand, *task.PickingTask],
) error {
	taskID, err := toID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewTaskCommand(taskID)
	if err != nil {
		return err
	}
	changed, err := handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, taskFromDomain(changed))
}

// Dashboard

func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query, err := queries.NewGetDashboardStatsQuery(s.lowStockThreshold)
	if err != nil {
		return err
	}
	stats, err := s.uc.DashboardStats(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DashboardStats{
		TotalStockUnits: stats.TotalStockUnits.Decimal(),
		PendingOrders:   stats.PendingOrders,
		PendingTasks:    stats.PendingTasks,
		LowStockAlerts:  stats.LowStockAlerts,
	})
}

func (s *Server) GetRecentActivity(ctx echo.Context, params GetRecentActivityParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewGetRecentMovementsQuery(limit)
	if err != nil {
		return err
	}
	movements, err := s.uc.RecentMovements(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(movements, toActivity))
}

func (s *Server) GetZoneCapacity(ctx echo.Context) error {
	zones, err := s.uc.ZoneCapacity(ctx.Request().Context(), queries.NewGetZoneCapacityQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(zones, toZoneCapacity))
}
