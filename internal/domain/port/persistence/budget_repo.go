package persistence

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// BudgetRepository defines the durable budget store.
//
// The (user_id, period) pair carries a composite unique index, so a
// concurrent first-upsert race surfaces as ErrConstraintViolation on the
// losing insert rather than a duplicate row.
type BudgetRepository interface {
	// GetByUserAndPeriod retrieves the budget for (userID, period)
	// including its category expenses (ErrBudgetNotFound if absent)
	GetByUserAndPeriod(ctx context.Context, userID uint64, period entity.Period) (*entity.Budget, error)

	// Create persists a new budget with its category expenses and fills
	// in the generated ID.
	//
	// Possible errors:
	// - ErrConstraintViolation: if a budget for (userID, period) already exists
	Create(ctx context.Context, budget *entity.Budget) error

	// Update overwrites the budget figures and replaces the category
	// expense rows atomically (ErrBudgetNotFound if absent)
	Update(ctx context.Context, budget *entity.Budget) error
}
