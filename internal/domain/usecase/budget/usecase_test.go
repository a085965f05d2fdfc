package budget

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/logger"
	coremocks "github.com/viratsingh97/Budget-Advisor-virat-singh/mocks/port/core"
	persistencemocks "github.com/viratsingh97/Budget-Advisor-virat-singh/mocks/port/persistence"
)

var (
	fixedTime     = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	currentPeriod = entity.Period{Year: 2024, Month: time.June}
)

func newUseCase(t *testing.T) (*UseCase, *persistencemocks.MockBudgetRepository) {
	t.Helper()
	repo := new(persistencemocks.MockBudgetRepository)
	clock := new(coremocks.MockTimeProvider)
	clock.On("Now").Return(fixedTime).Maybe()
	return NewUseCase(repo, clock, logger.NewNoopLogger()), repo
}

func sampleFigures() entity.BudgetFigures {
	return entity.BudgetFigures{
		MonthlyIncome:  decimal.RequireFromString("3000.00"),
		SavingGoal:     decimal.RequireFromString("500.00"),
		TargetExpenses: decimal.RequireFromString("2000.00"),
		CategoryExpenses: map[string]decimal.Decimal{
			"Food": decimal.RequireFromString("400.00"),
			"None": decimal.Zero,
		},
	}
}

func existingBudget() *entity.Budget {
	return &entity.Budget{
		ID:             5,
		UserID:         7,
		Period:         currentPeriod,
		MonthlyIncome:  decimal.RequireFromString("2500.00"),
		SavingGoal:     decimal.RequireFromString("300.00"),
		TargetExpenses: decimal.RequireFromString("1800.00"),
	}
}

func TestGetCurrentMonth(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("GetByUserAndPeriod", mock.Anything, uint64(7), currentPeriod).
			Return(existingBudget(), nil).Once()

		budget, err := uc.GetCurrentMonth(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), budget.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("GetByUserAndPeriod", mock.Anything, uint64(7), currentPeriod).
			Return(nil, errs.ErrBudgetNotFound).Once()

		_, err := uc.GetCurrentMonth(context.Background(), 7)
		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
	})
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates when absent and drops non-positive categories", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("GetByUserAndPeriod", mock.Anything, uint64(7), currentPeriod).
			Return(nil, errs.ErrBudgetNotFound).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			_, hasZero := b.CategoryExpenses["None"]
			return b.UserID == 7 && b.Period == currentPeriod && len(b.CategoryExpenses) == 1 && !hasZero
		})).Return(nil).Once()

		budget, err := uc.Upsert(ctx, 7, sampleFigures())
		require.NoError(t, err)
		assert.Equal(t, currentPeriod, budget.Period)
		repo.AssertExpectations(t)
	})

	t.Run("Updates in place when present", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("GetByUserAndPeriod", mock.Anything, uint64(7), currentPeriod).
			Return(existingBudget(), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.ID == 5 && b.MonthlyIncome.Equal(decimal.RequireFromString("3000.00"))
		})).Return(nil).Once()

		budget, err := uc.Upsert(ctx, 7, sampleFigures())
		require.NoError(t, err)
		assert.Equal(t, uint64(5), budget.ID)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Lost insert race falls back to update", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("GetByUserAndPeriod", mock.Anything, uint64(7), currentPeriod).
			Return(nil, errs.ErrBudgetNotFound).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		repo.On("GetByUserAndPeriod", mock.Anything, uint64(7), currentPeriod).
			Return(existingBudget(), nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		budget, err := uc.Upsert(ctx, 7, sampleFigures())
		require.NoError(t, err)
		assert.Equal(t, uint64(5), budget.ID)
	})

	validationCases := []struct {
		name   string
		mutate func(*entity.BudgetFigures)
		field  string
	}{
		{"Zero monthly income", func(f *entity.BudgetFigures) { f.MonthlyIncome = decimal.Zero }, "monthlyIncome"},
		{"Negative saving goal", func(f *entity.BudgetFigures) { f.SavingGoal = decimal.RequireFromString("-1") }, "savingGoal"},
		{"Negative target expenses", func(f *entity.BudgetFigures) { f.TargetExpenses = decimal.RequireFromString("-1") }, "targetExpenses"},
	}

	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newUseCase(t)
			figures := sampleFigures()
			tc.mutate(&figures)

			_, err := uc.Upsert(ctx, 7, figures)
			require.ErrorIs(t, err, errs.ErrInvalidInput)

			var ve *errs.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			repo.AssertNotCalled(t, "GetByUserAndPeriod", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
