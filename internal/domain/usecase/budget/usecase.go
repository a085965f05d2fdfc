package budget

import (
	"context"
	"errors"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/persistence"
)

// UseCase implements the budget planner operations
type UseCase struct {
	budgetRepo   persistence.BudgetRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new budget use case
func NewUseCase(
	budgetRepo persistence.BudgetRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		budgetRepo:   budgetRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetCurrentMonth returns the user's budget for the current period
func (u *UseCase) GetCurrentMonth(ctx context.Context, userID uint64) (*entity.Budget, error) {
	period := entity.PeriodOf(u.timeProvider.Now())
	return u.budgetRepo.GetByUserAndPeriod(ctx, userID, period)
}

// Upsert creates or updates the budget for (userID, current period).
// Validation happens before the lookup so invalid figures never touch storage.
func (u *UseCase) Upsert(ctx context.Context, userID uint64, figures entity.BudgetFigures) (*entity.Budget, error) {
	if err := figures.Validate(); err != nil {
		return nil, err
	}

	period := entity.PeriodOf(u.timeProvider.Now())

	existing, err := u.budgetRepo.GetByUserAndPeriod(ctx, userID, period)
	switch {
	case err == nil:
		return u.update(ctx, existing, figures)
	case errors.Is(err, errs.ErrBudgetNotFound):
		return u.create(ctx, userID, period, figures)
	default:
		return nil, err
	}
}

func (u *UseCase) create(ctx context.Context, userID uint64, period entity.Period, figures entity.BudgetFigures) (*entity.Budget, error) {
	budget, err := entity.NewBudget(userID, period, figures, u.timeProvider)
	if err != nil {
		return nil, err
	}

	err = u.budgetRepo.Create(ctx, budget)
	if errors.Is(err, errs.ErrConstraintViolation) {
		// Lost a concurrent first-upsert race; the row exists now, update it.
		existing, getErr := u.budgetRepo.GetByUserAndPeriod(ctx, userID, period)
		if getErr != nil {
			return nil, getErr
		}
		return u.update(ctx, existing, figures)
	}
	if err != nil {
		u.logger.Error("Failed to create budget", map[string]any{
			"user_id": userID,
			"period":  period.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Budget created", map[string]any{
		"budget_id": budget.ID,
		"user_id":   userID,
		"period":    period.String(),
	})

	return budget, nil
}

func (u *UseCase) update(ctx context.Context, budget *entity.Budget, figures entity.BudgetFigures) (*entity.Budget, error) {
	if err := budget.ApplyFigures(figures, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.budgetRepo.Update(ctx, budget); err != nil {
		u.logger.Error("Failed to update budget", map[string]any{
			"budget_id": budget.ID,
			"user_id":   budget.UserID,
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Budget updated", map[string]any{
		"budget_id": budget.ID,
		"user_id":   budget.UserID,
		"period":    budget.Period.String(),
	})

	return budget, nil
}
