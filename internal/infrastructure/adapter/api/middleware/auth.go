package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	domainerr "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
	usecaseport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/dto"
)

// UserContextKey is the gin context key holding the authenticated user
const UserContextKey = "authenticated_user"

// Auth middleware parses the Bearer token, verifies it and resolves the
// stored identity. The role always comes from storage, never from the
// token, so a role change takes effect on the next request.
func Auth(authService usecaseport.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Missing Authorization header",
			})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Authorization header must use the Bearer scheme",
			})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, domainerr.ErrTokenExpired) {
				message = "Token has expired"
			}

			logger.Debug("Rejected bearer token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: message,
			})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated user does not hold the
// given role. It must run after Auth.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := AuthenticatedUser(c)
		if !ok || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Access denied",
			})
			return
		}
		c.Next()
	}
}

// AuthenticatedUser returns the user stashed by the Auth middleware
func AuthenticatedUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entity.User)
	return user, ok
}
