package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/database"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/model"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:           userModel.ID,
		Name:         userModel.Name,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		Role:         entity.Role(userModel.Role),
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
}

// entityToModel converts a user entity to a model
func (r *UserRepository) entityToModel(user *entity.User) *model.User {
	return &model.User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// handleDatabaseError logs the failure and maps it to a domain error
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	return r.errorMapper.MapEntityNotFoundError(err, database.EntityTypeUser)
}

// Create persists a new user and fills in the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := r.entityToModel(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	user.ID = userModel.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user by email", err, 0)
	}

	return r.modelToEntity(&userModel), nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", entity.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking email existence", err, 0)
	}

	return count > 0, nil
}

// List returns all users in storage order
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}

	return users, nil
}

// Update persists changed profile fields
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := r.entityToModel(user)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          userModel.Name,
			"email":         userModel.Email,
			"password_hash": userModel.PasswordHash,
			"role":          userModel.Role,
			"updated_at":    userModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// Delete removes the user together with everything they own.
// All rows go in one storage transaction so a crash cannot leave
// orphaned transactions or budgets behind.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budgetIDs []uint64
		if err := tx.Model(&model.Budget{}).Where("user_id = ?", id).Pluck("id", &budgetIDs).Error; err != nil {
			return err
		}

		if len(budgetIDs) > 0 {
			if err := tx.Where("budget_id IN ?", budgetIDs).Delete(&model.BudgetCategoryExpense{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Budget{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Transaction{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
		return r.handleDatabaseError("deleting user", err, id)
	}

	return nil
}
