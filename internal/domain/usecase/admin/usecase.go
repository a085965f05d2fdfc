package admin

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/persistence"
)

// UseCase implements the admin-only identity operations
type UseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new admin use case
func NewUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListUsers returns all registered users
func (u *UseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.List(ctx)
}

// DeleteUser removes the user and, by policy, everything they own:
// their transactions and budgets go in the same storage transaction
func (u *UseCase) DeleteUser(ctx context.Context, id uint64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})

	return nil
}

// CreateAdmin registers a user with the role forced to ADMIN
func (u *UseCase) CreateAdmin(ctx context.Context, name, email, password string) (*entity.User, error) {
	if password == "" {
		return nil, errs.NewValidationError("password", "Password is required")
	}

	email = entity.NormalizeEmail(email)
	exists, err := u.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateEmail
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(name, email, hash, entity.RoleAdmin, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("Admin user created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return user, nil
}
