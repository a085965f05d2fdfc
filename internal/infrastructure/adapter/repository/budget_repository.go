package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/database"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/model"
)

// BudgetRepository implements the BudgetRepository port using GORM
type BudgetRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

func (r *BudgetRepository) modelToEntity(budgetModel *model.Budget) (*entity.Budget, error) {
	period, err := entity.ParsePeriod(budgetModel.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed period %q on budget %d", errs.ErrInternalServer, budgetModel.Period, budgetModel.ID)
	}

	categories := make(map[string]decimal.Decimal, len(budgetModel.CategoryExpenses))
	for _, row := range budgetModel.CategoryExpenses {
		categories[row.Category] = row.Amount
	}

	return &entity.Budget{
		ID:               budgetModel.ID,
		UserID:           budgetModel.UserID,
		Period:           period,
		MonthlyIncome:    budgetModel.MonthlyIncome,
		SavingGoal:       budgetModel.SavingGoal,
		TargetExpenses:   budgetModel.TargetExpenses,
		CategoryExpenses: categories,
		CreatedAt:        budgetModel.CreatedAt,
		UpdatedAt:        budgetModel.UpdatedAt,
	}, nil
}

func (r *BudgetRepository) entityToModel(budget *entity.Budget) *model.Budget {
	rows := make([]model.BudgetCategoryExpense, 0, len(budget.CategoryExpenses))
	for category, amount := range budget.CategoryExpenses {
		rows = append(rows, model.BudgetCategoryExpense{
			BudgetID: budget.ID,
			Category: category,
			Amount:   amount,
		})
	}

	return &model.Budget{
		ID:               budget.ID,
		UserID:           budget.UserID,
		Period:           budget.Period.String(),
		MonthlyIncome:    budget.MonthlyIncome,
		SavingGoal:       budget.SavingGoal,
		TargetExpenses:   budget.TargetExpenses,
		CreatedAt:        budget.CreatedAt,
		UpdatedAt:        budget.UpdatedAt,
		CategoryExpenses: rows,
	}
}

// handleDatabaseError logs the failure and maps it to a domain error
func (r *BudgetRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	return r.errorMapper.MapEntityNotFoundError(err, database.EntityTypeBudget)
}

// GetByUserAndPeriod retrieves the budget for (userID, period) with its categories
func (r *BudgetRepository) GetByUserAndPeriod(ctx context.Context, userID uint64, period entity.Period) (*entity.Budget, error) {
	var budgetModel model.Budget
	err := r.db.WithContext(ctx).
		Preload("CategoryExpenses").
		Where("user_id = ? AND period = ?", userID, period.String()).
		First(&budgetModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting budget", err, userID)
	}

	return r.modelToEntity(&budgetModel)
}

// Create persists a new budget with its category expenses
func (r *BudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := r.entityToModel(budget)

	if err := r.db.WithContext(ctx).Create(budgetModel).Error; err != nil {
		return r.handleDatabaseError("creating budget", err, budget.UserID)
	}

	budget.ID = budgetModel.ID
	return nil
}

// Update overwrites the budget figures and replaces the category expense
// rows in one storage transaction
func (r *BudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := r.entityToModel(budget)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Budget{}).
			Where("id = ?", budget.ID).
			Updates(map[string]any{
				"monthly_income":  budgetModel.MonthlyIncome,
				"saving_goal":     budgetModel.SavingGoal,
				"target_expenses": budgetModel.TargetExpenses,
				"updated_at":      budgetModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrBudgetNotFound
		}

		if err := tx.Where("budget_id = ?", budget.ID).Delete(&model.BudgetCategoryExpense{}).Error; err != nil {
			return err
		}

		if len(budgetModel.CategoryExpenses) == 0 {
			return nil
		}

		rows := budgetModel.CategoryExpenses
		for i := range rows {
			rows[i].BudgetID = budget.ID
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, errs.ErrBudgetNotFound) {
			return err
		}
		return r.handleDatabaseError("updating budget", err, budget.UserID)
	}

	return nil
}
