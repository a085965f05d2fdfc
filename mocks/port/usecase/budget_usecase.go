package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// MockBudgetUseCase is a testify mock for the BudgetUseCase port
type MockBudgetUseCase struct {
	mock.Mock
}

func (m *MockBudgetUseCase) GetCurrentMonth(ctx context.Context, userID uint64) (*entity.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Budget), args.Error(1)
}

func (m *MockBudgetUseCase) Upsert(ctx context.Context, userID uint64, figures entity.BudgetFigures) (*entity.Budget, error) {
	args := m.Called(ctx, userID, figures)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Budget), args.Error(1)
}
