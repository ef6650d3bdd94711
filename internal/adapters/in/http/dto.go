package http

import (
	"time"

	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
	"wms/internal/core/domain/model/task"
	"wms/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewItem struct {
	Code          string           `json:"code"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	UnitOfMeasure string           `json:"unitOfMeasure"`
	UnitVolume    *decimal.Decimal `json:"unitVolume,omitempty"`
	ReorderPoint  *decimal.Decimal `json:"reorderPoint,omitempty"`
}

type ItemChanges struct {
	Description   *string          `json:"description,omitempty"`
	Category      *string          `json:"category,omitempty"`
	UnitOfMeasure *string          `json:"unitOfMeasure,omitempty"`
	UnitVolume    *decimal.Decimal `json:"unitVolume,omitempty"`
	ReorderPoint  *decimal.Decimal `json:"reorderPoint,omitempty"`
}

type Item struct {
	ID            uuid.UUID        `json:"id"`
	Code          string           `json:"code"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	UnitOfMeasure string           `json:"unitOfMeasure"`
	UnitVolume    *decimal.Decimal `json:"unitVolume,omitempty"`
	ReorderPoint  *decimal.Decimal `json:"reorderPoint,omitempty"`
}

type LowStockItem struct {
	Item      Item            `json:"item"`
	OnHand    decimal.Decimal `json:"onHand"`
	Threshold decimal.Decimal `json:"threshold"`
}

type NewLocation struct {
	Code           string           `json:"code"`
	Description    string           `json:"description"`
	Type           string           `json:"type"`
	ParentID       *uuid.UUID       `json:"parentId,omitempty"`
	CapacityVolume *decimal.Decimal `json:"capacityVolume,omitempty"`
}

type LocationChanges struct {
	Code           string           `json:"code"`
	Description    string           `json:"description"`
	CapacityVolume *decimal.Decimal `json:"capacityVolume,omitempty"`
}

type Location struct {
	ID             uuid.UUID        `json:"id"`
	Code           string           `json:"code"`
	Description    string           `json:"description"`
	Type           string           `json:"type"`
	Status         string           `json:"status"`
	ParentID       *uuid.UUID       `json:"parentId,omitempty"`
	CapacityVolume *decimal.Decimal `json:"capacityVolume,omitempty"`
	CurrentVolume  decimal.Decimal  `json:"currentVolume"`
	Path           []string         `json:"path,omitempty"`
}

type PutawayRequest struct {
	ItemID     uuid.UUID       `json:"itemId"`
	LocationID uuid.UUID       `json:"locationId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Batch      *string         `json:"batch,omitempty"`
}

type MoveRequest struct {
	ItemCode           string          `json:"itemCode"`
	SourceLocationCode string          `json:"sourceLocationCode"`
	TargetLocationCode string          `json:"targetLocationCode"`
	Quantity           decimal.Decimal `json:"quantity"`
}

type RelocateRequest struct {
	TargetLocationID uuid.UUID       `json:"targetLocationId"`
	Quantity         decimal.Decimal `json:"quantity"`
}

type Stock struct {
	ID           uuid.UUID       `json:"id"`
	ItemID       uuid.UUID       `json:"itemId"`
	ItemCode     string          `json:"itemCode,omitempty"`
	LocationID   uuid.UUID       `json:"locationId"`
	LocationCode string          `json:"locationCode,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Batch        *string         `json:"batch,omitempty"`
	Status       string          `json:"status"`
}

type InventoryLine struct {
	ItemID        uuid.UUID       `json:"itemId"`
	ItemCode      string          `json:"itemCode"`
	Description   string          `json:"description"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	StockRows     int             `json:"stockRows"`
}

type NewOrderLine struct {
	ItemCode           string          `json:"itemCode"`
	Quantity           decimal.Decimal `json:"quantity"`
	SourceLocationCode *string         `json:"sourceLocationCode,omitempty"`
}

type NewOrder struct {
	CustomerID string         `json:"customerId"`
	Lines      []NewOrderLine `json:"lines"`
}

type OrderLine struct {
	ItemCode           string          `json:"itemCode"`
	Quantity           decimal.Decimal `json:"quantity"`
	SourceLocationCode *string         `json:"sourceLocationCode,omitempty"`
}

type Order struct {
	ID         uuid.UUID   `json:"id"`
	Number     string      `json:"number"`
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Lines      []OrderLine `json:"lines"`
	Tasks      []Task      `json:"tasks,omitempty"`
}

type Task struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"orderId"`
	OrderNumber    string          `json:"orderNumber,omitempty"`
	ItemID         uuid.UUID       `json:"itemId"`
	ItemCode       string          `json:"itemCode,omitempty"`
	ItemName       string          `json:"itemName,omitempty"`
	LocationID     uuid.UUID       `json:"locationId"`
	LocationCode   string          `json:"locationCode,omitempty"`
	TargetQuantity decimal.Decimal `json:"targetQuantity"`
	PickedQuantity decimal.Decimal `json:"pickedQuantity"`
	Status         string          `json:"status"`
}

type DashboardStats struct {
	TotalStockUnits decimal.Decimal `json:"totalStockUnits"`
	PendingOrders   int64           `json:"pendingOrders"`
	PendingTasks    int64           `json:"pendingTasks"`
	LowStockAlerts  int             `json:"lowStockAlerts"`
}

type Activity struct {
	ID               uuid.UUID       `json:"id"`
	ItemCode         string          `json:"itemCode"`
	FromLocationCode *string         `json:"fromLocationCode,omitempty"`
	ToLocationCode   *string         `json:"toLocationCode,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	Reason           string          `json:"reason"`
	Operator         string          `json:"operator"`
	Description      string          `json:"description"`
	Timestamp        time.Time       `json:"timestamp"`
}

type ZoneCapacity struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Capacity   decimal.Decimal `json:"capacity"`
	Current    decimal.Decimal `json:"current"`
	Percentage int64           `json:"percentage"`
}

func optionalQuantity(q *kernel.Quantity) *decimal.Decimal {
	if q == nil {
		return nil
	}
	d := q.Decimal()
	return &d
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toItem(v queries.ItemResponse) Item {
	return Item{
		ID:            v.ID.Bytes(),
		Code:          v.Code,
		Description:   v.Description,
		Category:      v.Category,
		UnitOfMeasure: v.UnitOfMeasure,
		UnitVolume:    v.UnitVolume,
		ReorderPoint:  optionalQuantity(v.ReorderPoint),
	}
}

func toLocation(v queries.LocationResponse) Location {
	return Location{
		ID:             v.ID.Bytes(),
		Code:           v.Code,
		Description:    v.Description,
		Type:           v.Type,
		Status:         v.Status,
		ParentID:       optionalID(v.ParentID),
		CapacityVolume: v.CapacityVolume,
		CurrentVolume:  v.CurrentVolume,
		Path:           v.Path,
	}
}

func stockFromDomain(s *stock.Stock) Stock {
	return Stock{
		ID:         s.ID().Bytes(),
		ItemID:     s.ItemID().Bytes(),
		LocationID: s.LocationID().Bytes(),
		Quantity:   s.Quantity().Decimal(),
		Batch:      s.Batch(),
		Status:     s.Status().String(),
	}
}

func toStock(v queries.StockResponse) Stock {
	return Stock{
		ID:           v.ID.Bytes(),
		ItemID:       v.ItemID.Bytes(),
		ItemCode:     v.ItemCode,
		LocationID:   v.LocationID.Bytes(),
		LocationCode: v.LocationCode,
		Quantity:     v.Quantity.Decimal(),
		Batch:        v.Batch,
		Status:       v.Status,
	}
}

func taskFromDomain(t *task.PickingTask) Task {
	return Task{
		ID:             t.ID().Bytes(),
		OrderID:        t.OrderID().Bytes(),
		ItemID:         t.ItemID().Bytes(),
		LocationID:     t.LocationID().Bytes(),
		TargetQuantity: t.TargetQuantity().Decimal(),
		PickedQuantity: t.PickedQuantity().Decimal(),
		Status:         t.Status().String(),
	}
}

func toTask(v queries.TaskResponse) Task {
	return Task{
		ID:             v.ID.Bytes(),
		OrderID:        v.OrderID.Bytes(),
		OrderNumber:    v.OrderNumber,
		ItemID:         v.ItemID.Bytes(),
		ItemCode:       v.ItemCode,
		ItemName:       v.ItemName,
		LocationID:     v.LocationID.Bytes(),
		LocationCode:   v.LocationCode,
		TargetQuantity: v.TargetQuantity.Decimal(),
		PickedQuantity: v.PickedQuantity.Decimal(),
		Status:         v.Status,
	}
}

func toOrder(v queries.OrderResponse) Order {
	o := Order{
		ID:         v.ID.Bytes(),
		Number:     v.Number,
		CustomerID: v.CustomerID,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		Lines:      make([]OrderLine, 0, len(v.Lines)),
	}
	for _, l := range v.Lines {
		o.Lines = append(o.Lines, OrderLine{
			ItemCode:           l.ItemCode,
			Quantity:           l.Quantity.Decimal(),
			SourceLocationCode: l.SourceLocationCode,
		})
	}
	if len(v.Tasks) > 0 {
		o.Tasks = mapSlice(v.Tasks, toTask)
	}
	return o
}

func toActivity(v queries.MovementResponse) Activity {
	return Activity{
		ID:               v.ID.Bytes(),
		ItemCode:         v.ItemCode,
		FromLocationCode: v.FromLocationCode,
		ToLocationCode:   v.ToLocationCode,
		Quantity:         v.Quantity.Decimal(),
		Reason:           v.Reason,
		Operator:         v.Operator,
		Description:      v.Description,
		Timestamp:        v.OccurredAt,
	}
}

// toZoneCapacity names a zone by its code with the description in brackets.
func toZoneCapacity(v services.ZoneCapacity) ZoneCapacity {
	name := v.Code
	if v.Description != "" {
		name += " (" + v.Description + ")"
	}
	return ZoneCapacity{
		ID:         v.ZoneID.Bytes(),
		Name:       name,
		Capacity:   v.Capacity,
		Current:    v.Current,
		Percentage: v.Percentage,
	}
}

func mapSlice[S, D any](in []S, convert func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, convert(v))
	}
	return out
}
