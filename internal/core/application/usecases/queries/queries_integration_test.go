package queries_test

import (
	"context"
	"testing"

	postgresadapter "menu/internal/adapters/out/postgres"
	"menu/internal/adapters/out/postgres/pgtest"
	"menu/internal/core/application/usecases/queries"
	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"
	"menu/internal/core/domain/model/order"
	"menu/internal/core/ports"
	"menu/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// QueriesIntegrationTestSuite runs the read-side handlers against rows written
// by the repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) addOrders(orders ...*order.Order) {
	repo := suite.factory.Create().OrderRepository()
	for _, o := range orders {
		suite.Require().NoError(repo.Add(context.Background(), o))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_UrgentFirst() {
	suite.addOrders(
		order.NewWithCommon("c1", true),
		order.MakeUrgentOrder("u1", true),
		order.New(),
		order.NewWithUrgency(true, "u2"),
	)

	got, err := queries.NewGetOrdersQueryHandler(suite.factory.Create().OrderRepository()).
		Handle(context.Background(), queries.NewGetOrdersQuery(false))

	suite.Require().NoError(err)
	suite.Equal([]queries.GetOrdersQueryResponse{
		{Reference: "u1", Urgent: true},
		{Reference: "u2", Urgent: true},
		{Reference: "c1", Common: true},
		{Reference: ""},
	}, got)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_UrgentOnly() {
	suite.addOrders(
		order.NewWithCommon("c1", true),
		order.MakeUrgentOrder("u1", true),
		order.MakeCommonOrder("ignored-flag", true),
	)

	got, err := queries.NewGetOrdersQueryHandler(suite.factory.Create().OrderRepository()).
		Handle(context.Background(), queries.NewGetOrdersQuery(true))

	suite.Require().NoError(err)
	suite.Equal([]queries.GetOrdersQueryResponse{{Reference: "u1", Urgent: true}}, got)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_Empty() {
	got, err := queries.NewGetOrdersQueryHandler(suite.factory.Create().OrderRepository()).
		Handle(context.Background(), queries.NewGetOrdersQuery(false))

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *QueriesIntegrationTestSuite) TestGetNutritionFacts() {
	ctx := context.Background()
	labelID := kernel.NewUUID()
	facts := nutrition.NewBuilder(240, 8).Fat(13).Build()
	suite.Require().NoError(suite.factory.Create().NutritionRepository().Add(ctx, labelID, facts))

	query, err := queries.NewGetNutritionFactsQuery(labelID)
	suite.Require().NoError(err)

	got, err := queries.NewGetNutritionFactsQueryHandler(suite.factory.Create().NutritionRepository()).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(labelID.IsEqual(got.LabelID))
	suite.True(facts.IsEqual(got.Facts))
	suite.Equal(0, got.Facts.Calories())
}

func (suite *QueriesIntegrationTestSuite) TestGetNutritionFacts_NotFound() {
	query, err := queries.NewGetNutritionFactsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetNutritionFactsQueryHandler(suite.factory.Create().NutritionRepository()).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestNewGetNutritionFactsQuery_RejectsNilUUID() {
	_, err := queries.NewGetNutritionFactsQuery(kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
