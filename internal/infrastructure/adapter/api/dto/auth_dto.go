package dto

// SignupRequest is the request body for POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest is the request body for POST /api/auth/login.
// Role is optional; when present the stored role must match it.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginResponse is the success body for POST /api/auth/login
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UpdateProfileRequest is the request body for PUT /api/auth/profile.
// Every field is optional; empty fields are left untouched.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse wraps the plain confirmation messages the API returns
type MessageResponse struct {
	Message string `json:"message"`
}
