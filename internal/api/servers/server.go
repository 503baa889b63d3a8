package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Health check
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// List orders, urgent first
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Place an order through one of the construction variants
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Register a nutrition label
	// (POST /api/v1/nutrition)
	CreateNutritionFacts(ctx echo.Context) error
	// Read a nutrition label
	// (GET /api/v1/nutrition/{labelId})
	GetNutritionFacts(ctx echo.Context, labelId openapi_types.UUID) error
	// Stable sort of text values by character count
	// (POST /api/v1/sort/length)
	SortByLength(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	var params GetOrdersParams
	// ------------- Optional query parameter "urgent" -------------

	err = runtime.BindQueryParameter("form", true, false, "urgent", ctx.QueryParams(), &params.Urgent)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter urgent: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// CreateNutritionFacts converts echo context to params.
func (w *ServerInterfaceWrapper) CreateNutritionFacts(ctx echo.Context) error {
	return w.Handler.CreateNutritionFacts(ctx)
}

// GetNutritionFacts converts echo context to params.
func (w *ServerInterfaceWrapper) GetNutritionFacts(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "labelId" -------------
	var labelId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "labelId", ctx.Param("labelId"), &labelId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter labelId: %s", err))
	}

	return w.Handler.GetNutritionFacts(ctx, labelId)
}

// SortByLength converts echo context to params.
func (w *ServerInterfaceWrapper) SortByLength(ctx echo.Context) error {
	return w.Handler.SortByLength(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, prefixing every path with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.POST(baseURL+"/api/v1/nutrition", wrapper.CreateNutritionFacts)
	router.GET(baseURL+"/api/v1/nutrition/:labelId", wrapper.GetNutritionFacts)
	router.POST(baseURL+"/api/v1/sort/length", wrapper.SortByLength)
}
