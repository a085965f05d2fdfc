package dto

import (
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

// UserResponse is the wire representation of a user. The password hash
// never leaves the server.
type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateAdminRequest is the request body for POST /api/admin/users/create-admin
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// NewUserResponse converts a user entity to its wire form
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// NewUserListResponse converts a slice of users to wire form
func NewUserListResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
