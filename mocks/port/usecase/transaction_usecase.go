package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// MockTransactionUseCase is a testify mock for the TransactionUseCase port
type MockTransactionUseCase struct {
	mock.Mock
}

func (m *MockTransactionUseCase) ListCurrentMonth(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Create(ctx context.Context, userID uint64, fields entity.TransactionFields) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Update(ctx context.Context, userID, id uint64, fields entity.TransactionFields) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Delete(ctx context.Context, userID, id uint64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
