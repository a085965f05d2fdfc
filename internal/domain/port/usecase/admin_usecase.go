package usecase

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// AdminUseCase defines the admin-only identity operations
type AdminUseCase interface {
	// ListUsers returns all registered users
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes a user and everything they own
	// (ErrUserNotFound if absent)
	DeleteUser(ctx context.Context, id uint64) error

	// CreateAdmin registers a new user with the ADMIN role
	CreateAdmin(ctx context.Context, name, email, password string) (*entity.User, error)
}
