package entity

import (
	"strings"
	"time"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

// Role is the authorization level of a user
type Role string

const (
	// RoleUser is the default role assigned at signup
	RoleUser Role = "USER"
	// RoleAdmin grants access to the /api/admin endpoints
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a string to a Role, case-insensitively.
// An empty string defaults to RoleUser.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return RoleUser, nil
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", errs.NewValidationError("role", "Role must be USER or ADMIN")
	}
}

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered identity
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a new user with an already-hashed credential
func NewUser(name, email, passwordHash string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name", "Name is required")
	}

	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewValidationError("email", "A valid email address is required")
	}

	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "Password is required")
	}

	if !role.Valid() {
		return nil, errs.NewValidationError("role", "Role must be USER or ADMIN")
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
