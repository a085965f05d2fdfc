package entity

import (
	"time"

	"github.com/shopspring/decimal"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

// Budget holds one user's targets for a single calendar month.
// At most one budget exists per (user, period); the storage layer enforces
// this with a composite unique index.
type Budget struct {
	ID               uint64
	UserID           uint64
	Period           Period
	MonthlyIncome    decimal.Decimal
	SavingGoal       decimal.Decimal
	TargetExpenses   decimal.Decimal
	CategoryExpenses map[string]decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BudgetFigures are the caller-supplied budget targets
type BudgetFigures struct {
	MonthlyIncome    decimal.Decimal
	SavingGoal       decimal.Decimal
	TargetExpenses   decimal.Decimal
	CategoryExpenses map[string]decimal.Decimal
}

// Validate checks the figures in a fixed order so the first failing field
// is the one reported
func (f BudgetFigures) Validate() error {
	if f.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return errs.NewValidationError("monthlyIncome", "Monthly income must be greater than 0")
	}
	if f.SavingGoal.IsNegative() {
		return errs.NewValidationError("savingGoal", "Saving goal cannot be negative")
	}
	if f.TargetExpenses.IsNegative() {
		return errs.NewValidationError("targetExpenses", "Target expenses cannot be negative")
	}
	return nil
}

// FilterCategoryExpenses keeps only entries with a positive amount.
// Non-positive entries are dropped silently, not rejected.
func FilterCategoryExpenses(expenses map[string]decimal.Decimal) map[string]decimal.Decimal {
	filtered := make(map[string]decimal.Decimal, len(expenses))
	for category, amount := range expenses {
		if amount.IsPositive() {
			filtered[category] = amount
		}
	}
	return filtered
}

// NewBudget creates a budget for (userID, period) from validated figures
func NewBudget(userID uint64, period Period, figures BudgetFigures, timeProvider coreport.TimeProvider) (*Budget, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if period.IsZero() {
		return nil, errs.NewValidationError("period", "Period is required")
	}
	if err := figures.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Budget{
		UserID:           userID,
		Period:           period,
		MonthlyIncome:    figures.MonthlyIncome,
		SavingGoal:       figures.SavingGoal,
		TargetExpenses:   figures.TargetExpenses,
		CategoryExpenses: FilterCategoryExpenses(figures.CategoryExpenses),
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// ApplyFigures mutates an existing budget in place; user and period are untouched
func (b *Budget) ApplyFigures(figures BudgetFigures, timeProvider coreport.TimeProvider) error {
	if err := figures.Validate(); err != nil {
		return err
	}

	b.MonthlyIncome = figures.MonthlyIncome
	b.SavingGoal = figures.SavingGoal
	b.TargetExpenses = figures.TargetExpenses
	b.CategoryExpenses = FilterCategoryExpenses(figures.CategoryExpenses)
	b.UpdatedAt = timeProvider.Now()
	return nil
}
