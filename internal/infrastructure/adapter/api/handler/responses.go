package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/dto"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrDuplicateEmail),
		errors.Is(err, domainerr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrInvalidToken),
		errors.Is(err, domainerr.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrRoleMismatch),
		errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrUserNotFound),
		errors.Is(err, domainerr.ErrTransactionNotFound),
		errors.Is(err, domainerr.ErrBudgetNotFound),
		errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageFromError maps domain errors to the API's user-facing messages
func messageFromError(err error) string {
	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var roleErr *domainerr.RoleMismatchError
	if errors.As(err, &roleErr) {
		if strings.EqualFold(roleErr.RequestedRole, "ADMIN") {
			return "Access Denied: You are registered as a User, not an Admin."
		}
		return "Access Denied: You are trying to log in as User, but are registered as Admin."
	}

	switch {
	case errors.Is(err, domainerr.ErrDuplicateEmail):
		return "Email is already taken!"
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return "Invalid credentials!"
	case errors.Is(err, domainerr.ErrUserNotFound):
		return "User not found!"
	case errors.Is(err, domainerr.ErrBudgetNotFound):
		return "No budget found for the current month."
	case errors.Is(err, domainerr.ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, domainerr.ErrForbidden):
		return "Access denied"
	default:
		return err.Error()
	}
}

// respondError writes the standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageFromError(err),
	})
}
