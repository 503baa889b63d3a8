package commands_test

import (
	"context"

	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"
	"menu/internal/core/domain/model/order"
	"menu/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListUrgent(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockNutritionRepository struct{ mock.Mock }

func (m *MockNutritionRepository) Add(ctx context.Context, labelID kernel.UUID, facts nutrition.Facts) error {
	args := m.Called(ctx, labelID, facts)
	return args.Error(0)
}

func (m *MockNutritionRepository) Get(ctx context.Context, labelID kernel.UUID) (nutrition.Facts, error) {
	args := m.Called(ctx, labelID)
	facts, _ := args.Get(0).(nutrition.Facts)
	return facts, args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNutritionUoW struct{ MockTx }

func (m *MockNutritionUoW) NutritionRepository() ports.NutritionRepository {
	args := m.Called()
	return args.Get(0).(ports.NutritionRepository)
}

type MockNutritionUoWFactory struct{ mock.Mock }

func (m *MockNutritionUoWFactory) Create() commands.NutritionUoW {
	args := m.Called()
	return args.Get(0).(commands.NutritionUoW)
}
