package usecase

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// BudgetUseCase defines the budget planner operations. The period is always
// the server's current calendar month; callers cannot target other months.
type BudgetUseCase interface {
	// GetCurrentMonth returns the user's budget for the current period
	// (ErrBudgetNotFound if absent)
	GetCurrentMonth(ctx context.Context, userID uint64) (*entity.Budget, error)

	// Upsert validates the figures and creates or updates the budget for
	// (userID, current period); a second upsert in the same month updates
	// the existing record in place
	Upsert(ctx context.Context, userID uint64, figures entity.BudgetFigures) (*entity.Budget, error)
}
