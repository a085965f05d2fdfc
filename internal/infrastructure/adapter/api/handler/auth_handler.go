package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	usecaseport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/dto"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration, login and profile HTTP requests
type AuthHandler struct {
	authService usecaseport.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecaseport.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	_, err := h.authService.Signup(c.Request.Context(), usecaseport.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User registered successfully!"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), usecaseport.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		// An unknown email reads as failed credentials here, not as a
		// missing resource.
		if errors.Is(err, domainerr.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUserNotFound,
				Message: "User not found!",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: result.Token,
		Email: result.User.Email,
		Name:  result.User.Name,
		Role:  string(result.User.Role),
	})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidToken,
			Message: "Invalid token",
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	_, err := h.authService.UpdateProfile(c.Request.Context(), user.ID, usecaseport.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile updated successfully!"})
}
