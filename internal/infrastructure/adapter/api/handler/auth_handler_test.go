package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	usecaseport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/usecase"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/middleware"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/viratsingh97/Budget-Advisor-virat-singh/mocks/port/usecase"
)

func jsonRequest(t *testing.T, method string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("Signup", mock.Anything, usecaseport.SignupInput{
			Name: "Alice", Email: "alice@example.com", Password: "s3cret",
		}).Return(regularUser(), nil).Once()

		c, rec := testContext(t)
		c.Request = jsonRequest(t, http.MethodPost, map[string]string{
			"name": "Alice", "email": "alice@example.com", "password": "s3cret",
		})

		h.Signup(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"User registered successfully!"}`, rec.Body.String())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("Signup", mock.Anything, mock.Anything).
			Return(nil, errs.ErrDuplicateEmail).Once()

		c, rec := testContext(t)
		c.Request = jsonRequest(t, http.MethodPost, map[string]string{
			"name": "Alice", "email": "alice@example.com", "password": "s3cret",
		})

		h.Signup(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email is already taken!")
	})

	t.Run("Malformed body", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		c, rec := testContext(t)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{")))

		h.Signup(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authService.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success returns token and identity", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("Login", mock.Anything, usecaseport.LoginInput{
			Email: "alice@example.com", Password: "s3cret",
		}).Return(&usecaseport.LoginResult{Token: "signed-token", User: regularUser()}, nil).Once()

		c, rec := testContext(t)
		c.Request = jsonRequest(t, http.MethodPost, map[string]string{
			"email": "alice@example.com", "password": "s3cret",
		})

		h.Login(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"signed-token","email":"alice@example.com","name":"Alice","role":"USER"}`, rec.Body.String())
	})

	t.Run("Unknown email is unauthorized", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("Login", mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()

		c, rec := testContext(t)
		c.Request = jsonRequest(t, http.MethodPost, map[string]string{
			"email": "ghost@example.com", "password": "s3cret",
		})

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found!")
	})

	t.Run("Role mismatch is forbidden with role-specific message", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("Login", mock.Anything, mock.Anything).
			Return(nil, errs.NewRoleMismatchError("ADMIN", "USER")).Once()

		c, rec := testContext(t)
		c.Request = jsonRequest(t, http.MethodPost, map[string]string{
			"email": "alice@example.com", "password": "s3cret", "role": "ADMIN",
		})

		h.Login(c)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "You are registered as a User, not an Admin.")
	})

	t.Run("Wrong password", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("Login", mock.Anything, mock.Anything).
			Return(nil, errs.ErrInvalidCredentials).Once()

		c, rec := testContext(t)
		c.Request = jsonRequest(t, http.MethodPost, map[string]string{
			"email": "alice@example.com", "password": "wrong",
		})

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials!")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("UpdateProfile", mock.Anything, uint64(7), usecaseport.ProfileUpdate{
			Name: "Alicia",
		}).Return(regularUser(), nil).Once()

		c, rec := testContext(t)
		c.Set(middleware.UserContextKey, regularUser())
		c.Request = jsonRequest(t, http.MethodPut, map[string]string{"name": "Alicia"})

		h.UpdateProfile(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Profile updated successfully!"}`, rec.Body.String())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		authService := new(usecasemocks.MockAuthUseCase)
		h := NewAuthHandler(authService, logger.NewNoopLogger())

		authService.On("UpdateProfile", mock.Anything, uint64(7), mock.Anything).
			Return(nil, errs.ErrDuplicateEmail).Once()

		c, rec := testContext(t)
		c.Set(middleware.UserContextKey, regularUser())
		c.Request = jsonRequest(t, http.MethodPut, map[string]string{"email": "taken@example.com"})

		h.UpdateProfile(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email is already taken!")
	})
}

