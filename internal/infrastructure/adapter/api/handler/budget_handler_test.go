package handler

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/middleware"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/viratsingh97/Budget-Advisor-virat-singh/mocks/port/usecase"
)

func juneBudget() *entity.Budget {
	return &entity.Budget{
		ID:             3,
		UserID:         7,
		Period:         entity.Period{Year: 2024, Month: 6},
		MonthlyIncome:  decimal.RequireFromString("3000"),
		SavingGoal:     decimal.RequireFromString("500"),
		TargetExpenses: decimal.RequireFromString("2000"),
		CategoryExpenses: map[string]decimal.Decimal{
			"Food": decimal.RequireFromString("400"),
		},
	}
}

func TestBudgetGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		budgetService := new(usecasemocks.MockBudgetUseCase)
		h := NewBudgetHandler(budgetService, logger.NewNoopLogger())

		budgetService.On("GetCurrentMonth", mock.Anything, uint64(7)).
			Return(juneBudget(), nil).Once()

		c, rec := testContext(t)
		c.Set(middleware.UserContextKey, regularUser())
		c.Request = jsonRequest(t, http.MethodGet, nil)

		h.Get(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"id": 3,
			"period": "2024-06",
			"monthlyIncome": "3000",
			"savingGoal": "500",
			"targetExpenses": "2000",
			"categoryExpenses": {"Food": "400"}
		}`, rec.Body.String())
	})

	t.Run("No budget this month", func(t *testing.T) {
		budgetService := new(usecasemocks.MockBudgetUseCase)
		h := NewBudgetHandler(budgetService, logger.NewNoopLogger())

		budgetService.On("GetCurrentMonth", mock.Anything, uint64(7)).
			Return(nil, errs.ErrBudgetNotFound).Once()

		c, rec := testContext(t)
		c.Set(middleware.UserContextKey, regularUser())
		c.Request = jsonRequest(t, http.MethodGet, nil)

		h.Get(c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No budget found for the current month.")
	})
}

func TestBudgetUpsert(t *testing.T) {
	t.Run("Saved", func(t *testing.T) {
		budgetService := new(usecasemocks.MockBudgetUseCase)
		h := NewBudgetHandler(budgetService, logger.NewNoopLogger())

		budgetService.On("Upsert", mock.Anything, uint64(7), mock.MatchedBy(func(figures entity.BudgetFigures) bool {
			return figures.MonthlyIncome.Equal(decimal.RequireFromString("3000")) &&
				figures.CategoryExpenses["Food"].Equal(decimal.RequireFromString("400"))
		})).Return(juneBudget(), nil).Once()

		c, rec := testContext(t)
		c.Set(middleware.UserContextKey, regularUser())
		c.Request = jsonRequest(t, http.MethodPost, map[string]any{
			"monthlyIncome":    "3000",
			"savingGoal":       "500",
			"targetExpenses":   "2000",
			"categoryExpenses": map[string]string{"Food": "400"},
		})

		h.Upsert(c)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Budget saved successfully"`)
		assert.Contains(t, rec.Body.String(), `"period":"2024-06"`)
	})

	t.Run("Invalid figures", func(t *testing.T) {
		budgetService := new(usecasemocks.MockBudgetUseCase)
		h := NewBudgetHandler(budgetService, logger.NewNoopLogger())

		budgetService.On("Upsert", mock.Anything, uint64(7), mock.Anything).
			Return(nil, errs.NewValidationError("monthlyIncome", "Monthly income must be greater than 0")).Once()

		c, rec := testContext(t)
		c.Set(middleware.UserContextKey, regularUser())
		c.Request = jsonRequest(t, http.MethodPost, map[string]any{
			"monthlyIncome": "0",
		})

		h.Upsert(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Monthly income must be greater than 0")
	})
}
