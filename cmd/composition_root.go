package cmd

import (
	"log/slog"

	httpin "menu/internal/adapters/in/http"
	"menu/internal/adapters/out/postgres"
	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/application/usecases/queries"
	"menu/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterNutritionFactsCommandHandler() commands.RegisterNutritionFactsCommandHandler {
	var f commands.NutritionUoWFactory = FuncNutritionUoWFactory(func() commands.NutritionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterNutritionFactsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetNutritionFactsQueryHandler() queries.GetNutritionFactsQueryHandler {
	return queries.NewGetNutritionFactsQueryHandler(c.uowFactory.Create().NutritionRepository())
}

func (c *CompositionRoot) CreateSortByLengthQueryHandler() queries.SortByLengthQueryHandler {
	return queries.NewSortByLengthQueryHandler()
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	placeOrderHandler := c.CreatePlaceOrderCommandHandler()
	registerNutritionFactsHandler := c.CreateRegisterNutritionFactsCommandHandler()

	return httpin.NewServer(
		&placeOrderHandler,
		&registerNutritionFactsHandler,
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetNutritionFactsQueryHandler(),
		c.CreateSortByLengthQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrdersQueryHandler(), c.config.DigestSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNutritionUoWFactory func() commands.NutritionUoW

func (f FuncNutritionUoWFactory) Create() commands.NutritionUoW {
	return f()
}
