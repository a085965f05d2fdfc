package dto

import (
	"github.com/shopspring/decimal"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// BudgetRequest is the request body for POST /api/budgets
type BudgetRequest struct {
	MonthlyIncome    decimal.Decimal            `json:"monthlyIncome"`
	SavingGoal       decimal.Decimal            `json:"savingGoal"`
	TargetExpenses   decimal.Decimal            `json:"targetExpenses"`
	CategoryExpenses map[string]decimal.Decimal `json:"categoryExpenses"`
}

// BudgetResponse is the wire representation of a monthly budget
type BudgetResponse struct {
	ID               uint64                     `json:"id"`
	Period           string                     `json:"period"`
	MonthlyIncome    decimal.Decimal            `json:"monthlyIncome"`
	SavingGoal       decimal.Decimal            `json:"savingGoal"`
	TargetExpenses   decimal.Decimal            `json:"targetExpenses"`
	CategoryExpenses map[string]decimal.Decimal `json:"categoryExpenses"`
}

// BudgetSavedResponse is the success body for POST /api/budgets
type BudgetSavedResponse struct {
	Message string         `json:"message"`
	Budget  BudgetResponse `json:"budget"`
}

// NewBudgetResponse converts a budget entity to its wire form
func NewBudgetResponse(budget *entity.Budget) BudgetResponse {
	categories := budget.CategoryExpenses
	if categories == nil {
		categories = map[string]decimal.Decimal{}
	}

	return BudgetResponse{
		ID:               budget.ID,
		Period:           budget.Period.String(),
		MonthlyIncome:    budget.MonthlyIncome,
		SavingGoal:       budget.SavingGoal,
		TargetExpenses:   budget.TargetExpenses,
		CategoryExpenses: categories,
	}
}
