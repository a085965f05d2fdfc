package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/model"
)

// RunMigrations brings the schema up to date. AutoMigrate is additive, so
// reruns on an existing database are safe.
func RunMigrations(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	err := db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Budget{},
		&model.BudgetCategoryExpense{},
	)
	if err != nil {
		logger.Error("Database migration failed", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("auto migrate: %w", err)
	}

	logger.Info("Database migrations completed", nil)
	return nil
}

// SeedAdminUser creates the bootstrap admin account when credentials are
// configured and no user with that email exists yet. Without it a fresh
// install has no way to reach the admin endpoints.
func SeedAdminUser(
	ctx context.Context,
	db *gorm.DB,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	email, password string,
	logger coreport.Logger,
) error {
	if email == "" || password == "" {
		logger.Debug("Admin seed credentials not configured, skipping", nil)
		return nil
	}

	email = entity.NormalizeEmail(email)

	var existing model.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Debug("Admin user already present, skipping seed", map[string]any{
			"email": email,
		})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin, err := entity.NewUser("Administrator", email, hash, entity.RoleAdmin, timeProvider)
	if err != nil {
		return fmt.Errorf("build admin user: %w", err)
	}

	adminModel := model.User{
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Role:         string(admin.Role),
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
	if err := db.WithContext(ctx).Create(&adminModel).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Seeded admin user", map[string]any{
		"email": email,
	})
	return nil
}
