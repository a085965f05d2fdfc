package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"DuplicateEmail", ErrDuplicateEmail, CodeDuplicateEmail},
		{"InvalidInput", ErrInvalidInput, CodeInvalidInput},
		{"ConstraintViolation", ErrConstraintViolation, CodeConstraintViolation},
		{"InvalidCredentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"InvalidToken", ErrInvalidToken, CodeInvalidToken},
		{"TokenExpired", ErrTokenExpired, CodeTokenExpired},
		{"RoleMismatch", ErrRoleMismatch, CodeRoleMismatch},
		{"Forbidden", ErrForbidden, CodeForbidden},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"TransactionNotFound", ErrTransactionNotFound, CodeTransactionNotFound},
		{"BudgetNotFound", ErrBudgetNotFound, CodeBudgetNotFound},
		{"Unknown", errors.New("some other error"), CodeInternalServer},
		{"WrappedUserNotFound", fmt.Errorf("lookup failed: %w", ErrUserNotFound), CodeUserNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("monthlyIncome", "Monthly income must be greater than 0")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "monthlyIncome")
	assert.Equal(t, CodeInvalidInput, ErrorCode(err))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "monthlyIncome", ve.Field)
	assert.Equal(t, CodeInvalidInput, ve.LogFields()["error_code"])
}

func TestRoleMismatchError(t *testing.T) {
	err := NewRoleMismatchError("ADMIN", "USER")

	assert.True(t, errors.Is(err, ErrRoleMismatch))
	assert.Equal(t, CodeRoleMismatch, ErrorCode(err))

	var rme *RoleMismatchError
	assert.True(t, errors.As(err, &rme))
	assert.Equal(t, "ADMIN", rme.RequestedRole)
	assert.Equal(t, "USER", rme.ActualRole)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.True(t, IsNotFoundError(ErrBudgetNotFound))
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.False(t, IsNotFoundError(ErrForbidden))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrInvalidCredentials))
	assert.True(t, IsAuthError(ErrInvalidToken))
	assert.True(t, IsAuthError(ErrTokenExpired))
	assert.False(t, IsAuthError(ErrForbidden))
}
