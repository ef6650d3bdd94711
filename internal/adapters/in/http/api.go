package http

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// ServerInterface lists every operation of openapi.yaml.
type ServerInterface interface {
	ListItems(ctx echo.Context) error
	CreateItem(ctx echo.Context) error
	ListLowStockItems(ctx echo.Context) error
	GetItem(ctx echo.Context, id openapi_types.UUID) error
	UpdateItem(ctx echo.Context, id openapi_types.UUID) error

	ListLocations(ctx echo.Context, params ListLocationsParams) error
	CreateLocation(ctx echo.Context) error
	GetLocation(ctx echo.Context, id openapi_types.UUID) error
	UpdateLocation(ctx echo.Context, id openapi_types.UUID) error
	BlockLocation(ctx echo.Context, id openapi_types.UUID) error

	Putaway(ctx echo.Context) error
	MoveStock(ctx echo.Context) error
	RelocateStock(ctx echo.Context, id openapi_types.UUID) error
	GetInventorySummary(ctx echo.Context) error
	GetStockByLocation(ctx echo.Context, id openapi_types.UUID) error
	GetStockByItem(ctx echo.Context, code string) error

	ListOrders(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	ShipOrder(ctx echo.Context, id openapi_types.UUID) error
	GetPickList(ctx echo.Context, id openapi_types.UUID) error
	ListPendingTasks(ctx echo.Context) error
	ConfirmTask(ctx echo.Context, id openapi_types.UUID) error
	AssignTask(ctx echo.Context, id openapi_types.UUID) error
	CancelTask(ctx echo.Context, id openapi_types.UUID) error

	GetDashboardStats(ctx echo.Context) error
	GetRecentActivity(ctx echo.Context, params GetRecentActivityParams) error
	GetZoneCapacity(ctx echo.Context) error
}

type ListLocationsParams struct {
	Type *string `form:"type,omitempty" json:"type,omitempty"`
}

type GetRecentActivityParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// ServerInterfaceWrapper binds path and query parameters before delegating.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) withID(call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindUUID(ctx, "id")
		if err != nil {
			return err
		}
		return call(ctx, id)
	}
}

func (w *ServerInterfaceWrapper) GetStockByItem(ctx echo.Context) error {
	var code string
	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}
	return w.Handler.GetStockByItem(ctx, code)
}

func (w *ServerInterfaceWrapper) ListLocations(ctx echo.Context) error {
	var params ListLocationsParams
	if err := runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}
	return w.Handler.ListLocations(ctx, params)
}

func (w *ServerInterfaceWrapper) GetRecentActivity(ctx echo.Context) error {
	var params GetRecentActivityParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.GetRecentActivity(ctx, params)
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/items", si.ListItems)
	router.POST(baseURL+"/items", si.CreateItem)
	router.GET(baseURL+"/items/low-stock", si.ListLowStockItems)
	router.GET(baseURL+"/items/:id", w.withID(si.GetItem))
	router.PUT(baseURL+"/items/:id", w.withID(si.UpdateItem))

	router.GET(baseURL+"/locations", w.ListLocations)
	router.POST(baseURL+"/locations", si.CreateLocation)
	router.GET(baseURL+"/locations/:id", w.withID(si.GetLocation))
	router.PUT(baseURL+"/locations/:id", w.withID(si.UpdateLocation))
	router.POST(baseURL+"/locations/:id/block", w.withID(si.BlockLocation))

	router.POST(baseURL+"/inbound/putaway", si.Putaway)
	router.POST(baseURL+"/stock/move", si.MoveStock)
	router.POST(baseURL+"/stock/:id/relocate", w.withID(si.RelocateStock))
	router.GET(baseURL+"/stock/inventory", si.GetInventorySummary)
	router.GET(baseURL+"/stock/location/:id", w.withID(si.GetStockByLocation))
	router.GET(baseURL+"/stock/item/:code", w.GetStockByItem)

	router.GET(baseURL+"/outbound/orders", si.ListOrders)
	router.POST(baseURL+"/outbound/orders", si.CreateOrder)
	router.GET(baseURL+"/outbound/orders/:id", w.withID(si.GetOrder))
	router.POST(baseURL+"/outbound/orders/:id/ship", w.withID(si.ShipOrder))
	router.GET(baseURL+"/outbound/orders/:id/picklist", w.withID(si.GetPickList))
	router.GET(baseURL+"/outbound/picking-tasks", si.ListPendingTasks)
	router.POST(baseURL+"/outbound/tasks/:id/confirm", w.withID(si.ConfirmTask))
	router.POST(baseURL+"/outbound/tasks/:id/assign", w.withID(si.AssignTask))
	router.POST(baseURL+"/outbound/tasks/:id/cancel", w.withID(si.CancelTask))

	router.GET(baseURL+"/dashboard/stats", si.GetDashboardStats)
	router.GET(baseURL+"/dashboard/recent-activity", w.GetRecentActivity)
	router.GET(baseURL+"/dashboard/capacity", si.GetZoneCapacity)
}

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger parses and validates the embedded OpenAPI document once.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		swaggerDoc, swaggerErr = loader.LoadFromData(openAPIDocument)
		if swaggerErr == nil {
			swaggerErr = swaggerDoc.Validate(loader.Context)
		}
	})
	return swaggerDoc, swaggerErr
}

// swaggerSpec serves the embedded document to the swagger UI.
type swaggerSpec struct {
	doc *openapi3.T
}

func (s swaggerSpec) ReadDoc() string {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

var registerSwaggerOnce sync.Once

func registerSwagger(doc *openapi3.T) {
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerSpec{doc: doc})
	})
}
