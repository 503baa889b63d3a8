package http

import (
	"context"
	"errors"
	"net/http"

	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/application/usecases/queries"
	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/order"
	"menu/internal/api/servers"
	"menu/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case ports the server depends on. The command and query handlers from
// the application layer satisfy them.
type (
	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
	}

	NutritionRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterNutritionFactsCommand) error
	}

	OrdersReader interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}

	NutritionReader interface {
		Handle(ctx context.Context, query queries.GetNutritionFactsQuery) (queries.GetNutritionFactsQueryResponse, error)
	}

	LengthSorter interface {
		Handle(ctx context.Context, query queries.SortByLengthQuery) ([]string, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler             OrderPlacer
	registerNutritionFactsHandler NutritionRegistrar

	// Query handlers
	getOrdersHandler         OrdersReader
	getNutritionFactsHandler NutritionReader
	sortByLengthHandler      LengthSorter
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler OrderPlacer,
	registerNutritionFactsHandler NutritionRegistrar,
	getOrdersHandler OrdersReader,
	getNutritionFactsHandler NutritionReader,
	sortByLengthHandler LengthSorter,
) *Server {
	return &Server{
		placeOrderHandler:             placeOrderHandler,
		registerNutritionFactsHandler: registerNutritionFactsHandler,
		getOrdersHandler:              getOrdersHandler,
		getNutritionFactsHandler:      getNutritionFactsHandler,
		sortByLengthHandler:           sortByLengthHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /api/v1/orders - lists orders, urgent ones first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	urgentOnly := params.Urgent != nil && *params.Urgent

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(urgentOnly))
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Reference: o.Reference,
			Urgent:    o.Urgent,
			Common:    o.Common,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order through the
// requested construction variant.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	variant, err := order.ParseVariant(string(newOrder.Variant))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	flag := newOrder.Flag != nil && *newOrder.Flag
	cmd, err := commands.NewPlaceOrderCommand(newOrder.Reference, variant, flag)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to place order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateNutritionFacts handles POST /api/v1/nutrition - registers a label
// under a freshly generated identifier.
func (s *Server) CreateNutritionFacts(ctx echo.Context) error {
	var newFacts servers.CreateNutritionFactsJSONRequestBody
	if err := ctx.Bind(&newFacts); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	labelID := kernel.NewUUID()
	cmd, err := commands.NewRegisterNutritionFactsCommand(
		labelID,
		newFacts.ServingSize,
		newFacts.Servings,
		newFacts.Calories,
		newFacts.Fat,
	)
	if err != nil {
		return badRequest(ctx, "Invalid nutrition data: "+err.Error())
	}

	if err = s.registerNutritionFactsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to register nutrition facts")
	}

	return ctx.JSON(http.StatusCreated, servers.NutritionLabel{LabelId: labelID.Bytes()})
}

// GetNutritionFacts handles GET /api/v1/nutrition/{labelId}.
func (s *Server) GetNutritionFacts(ctx echo.Context, labelId openapi_types.UUID) error {
	labelID, err := kernel.UUIDFromString(labelId.String())
	if err != nil {
		return badRequest(ctx, "Invalid label ID: "+err.Error())
	}

	query, err := queries.NewGetNutritionFactsQuery(labelID)
	if err != nil {
		return badRequest(ctx, "Invalid label ID: "+err.Error())
	}

	result, err := s.getNutritionFactsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve nutrition facts")
	}

	return ctx.JSON(http.StatusOK, servers.NutritionFacts{
		LabelId:     result.LabelID.Bytes(),
		ServingSize: result.Facts.ServingSize(),
		Servings:    result.Facts.Servings(),
		Calories:    result.Facts.Calories(),
		Fat:         result.Facts.Fat(),
	})
}

// SortByLength handles POST /api/v1/sort/length.
func (s *Server) SortByLength(ctx echo.Context) error {
	var body servers.SortByLengthJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sorted, err := s.sortByLengthHandler.Handle(ctx.Request().Context(), queries.NewSortByLengthQuery(body.Values))
	if err != nil {
		return errorResponse(ctx, err, "Failed to sort values")
	}

	return ctx.JSON(http.StatusOK, servers.Values{Values: sorted})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors to status codes. Unknown errors become 500
// with the generic message; their text is not exposed.
func errorResponse(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	if status != http.StatusInternalServerError {
		message = message + ": " + err.Error()
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}
