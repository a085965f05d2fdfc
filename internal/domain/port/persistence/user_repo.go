package persistence

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// UserRepository defines the durable identity store.
//
// Email uniqueness is enforced by the store's unique index, so a
// check-then-insert race still surfaces as ErrDuplicateEmail.
type UserRepository interface {
	// Create persists a new user and fills in the generated ID.
	//
	// Possible errors:
	// - ErrDuplicateEmail: if the email is already registered
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID (ErrUserNotFound if absent)
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email (ErrUserNotFound if absent)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns all users in storage order
	List(ctx context.Context) ([]*entity.User, error)

	// Update persists changed profile fields.
	//
	// Possible errors:
	// - ErrUserNotFound: if the user no longer exists
	// - ErrDuplicateEmail: if the new email is taken by another user
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user together with their transactions and budgets
	// (ErrUserNotFound if absent)
	Delete(ctx context.Context, id uint64) error
}
