package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/viratsingh97/Budget-Advisor-virat-singh/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authRouter wires the Auth middleware in front of a probe handler that
// echoes the resolved identity.
func authRouter(authService *usecasemocks.MockAuthUseCase) *gin.Engine {
	router := gin.New()
	router.GET("/probe", Auth(authService, logger.NewNoopLogger()), func(c *gin.Context) {
		user, ok := AuthenticatedUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return router
}

func TestAuth(t *testing.T) {
	aliceUser := &entity.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: entity.RoleUser}

	t.Run("Valid token resolves the identity", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		authService.On("Authenticate", mock.Anything, "good-token").
			Return(aliceUser, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		authRouter(authService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"alice@example.com"}`, rec.Body.String())
	})

	t.Run("Missing header", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		authRouter(authService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing Authorization header")
		authService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		authRouter(authService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bearer scheme")
	})

	t.Run("Expired token", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		authService.On("Authenticate", mock.Anything, "stale-token").
			Return(nil, errs.ErrTokenExpired).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		authRouter(authService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token has expired")
	})

	t.Run("Invalid token", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		authService.On("Authenticate", mock.Anything, "garbage").
			Return(nil, errs.ErrInvalidToken).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		authRouter(authService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})
}

func TestRequireRole(t *testing.T) {
	router := func(user *entity.User) *gin.Engine {
		r := gin.New()
		r.GET("/admin-probe",
			func(c *gin.Context) {
				if user != nil {
					c.Set(UserContextKey, user)
				}
			},
			RequireRole(entity.RoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	t.Run("Admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
		router(&entity.User{ID: 1, Role: entity.RoleAdmin}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Regular user is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
		router(&entity.User{ID: 7, Role: entity.RoleUser}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access denied")
	})

	t.Run("No authenticated user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
		router(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
