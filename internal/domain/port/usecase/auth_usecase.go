package usecase

import (
	"context"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// SignupInput carries the fields for a new registration
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string // optional, defaults to USER
}

// LoginInput carries the login credentials plus the optional requested role
type LoginInput struct {
	Email    string
	Password string
	Role     string // optional; mismatch with the stored role fails the login
}

// LoginResult is a successful login: the issued token plus the identity
type LoginResult struct {
	Token string
	User  *entity.User
}

// ProfileUpdate carries optional profile changes; empty fields are left untouched
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
}

// AuthUseCase defines the credential service operations
type AuthUseCase interface {
	// Signup registers a new user, storing only a one-way hash of the password
	Signup(ctx context.Context, input SignupInput) (*entity.User, error)

	// Login verifies the credentials and issues a signed bearer token
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)

	// Authenticate resolves a bearer token to the stored identity
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// UpdateProfile applies the non-empty fields to the user's profile
	UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*entity.User, error)
}
