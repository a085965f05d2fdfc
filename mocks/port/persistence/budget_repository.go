package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// MockBudgetRepository is a testify mock for the BudgetRepository port
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) GetByUserAndPeriod(ctx context.Context, userID uint64, period entity.Period) (*entity.Budget, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Budget), args.Error(1)
}

func (m *MockBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}
