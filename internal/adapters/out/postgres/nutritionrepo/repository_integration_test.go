package nutritionrepo_test

import (
	"context"
	"testing"

	"menu/internal/adapters/out/postgres/nutritionrepo"
	"menu/internal/adapters/out/postgres/pgtest"
	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"
	"menu/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

type NutritionRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *nutritionrepo.GormNutritionRepository
	tracker    *MockAggregateTracker
}

func (suite *NutritionRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *NutritionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = nutritionrepo.NewGormNutritionRepository(suite.database.DB, suite.tracker)
}

func (suite *NutritionRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *NutritionRepositoryIntegrationTestSuite) TestAdd_AndGet() {
	ctx := context.Background()
	labelID := kernel.NewUUID()
	facts := nutrition.NewBuilder(240, 8).Calories(100).Fat(13).Build()
	suite.tracker.On("TrackAggregate", labelID.String(), facts).Return().Once()

	suite.Require().NoError(suite.repository.Add(ctx, labelID, facts))

	stored, err := suite.repository.Get(ctx, labelID)
	suite.Require().NoError(err)
	suite.Equal(240, stored.ServingSize())
	suite.Equal(8, stored.Servings())
	suite.Equal(100, stored.Calories())
	suite.Equal(13, stored.Fat())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NutritionRepositoryIntegrationTestSuite) TestAdd_NegativeValuesRoundTrip() {
	ctx := context.Background()
	labelID := kernel.NewUUID()
	facts := nutrition.NewBuilder(-1, -2).Fat(-3).Build()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	suite.Require().NoError(suite.repository.Add(ctx, labelID, facts))

	stored, err := suite.repository.Get(ctx, labelID)
	suite.Require().NoError(err)
	suite.True(facts.IsEqual(stored))
	suite.Equal(0, stored.Calories())
}

func (suite *NutritionRepositoryIntegrationTestSuite) TestAdd_DuplicateLabel() {
	ctx := context.Background()
	labelID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	suite.Require().NoError(suite.repository.Add(ctx, labelID, nutrition.NewFacts(1, 1)))
	err := suite.repository.Add(ctx, labelID, nutrition.NewFacts(2, 2))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *NutritionRepositoryIntegrationTestSuite) TestAdd_RejectsZeroValues() {
	err := suite.repository.Add(context.Background(), kernel.UUID{}, nutrition.Facts{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
	suite.Require().ErrorIs(err, nutrition.ErrFactsAreNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *NutritionRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestNutritionRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(NutritionRepositoryIntegrationTestSuite))
}
