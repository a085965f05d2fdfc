package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeDuplicateEmail      = 4001
	CodeInvalidInput        = 4002
	CodeConstraintViolation = 4005
	CodeInvalidCredentials  = 4010
	CodeInvalidToken        = 4011
	CodeTokenExpired        = 4012
	CodeRoleMismatch        = 4030
	CodeForbidden           = 4031
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeBudgetNotFound      = 4042

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrDuplicateEmail is returned when the email address is already registered
	ErrDuplicateEmail = errors.New("email is already taken")

	// ErrInvalidInput is returned when a request field fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when the password does not match the stored hash
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token fails signature or claim validation
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a bearer token is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrRoleMismatch is returned when the requested login role differs from the stored role
	ErrRoleMismatch = errors.New("role mismatch")

	// ErrForbidden is returned when the caller is not permitted to act on the resource
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when no budget exists for the requested period
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrRoleMismatch):
		return CodeRoleMismatch
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a field-level validation failure
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Is checks if the target error is an ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"message":    e.Message,
		"error_code": CodeInvalidInput,
	}
}

// NewValidationError creates a new field-level validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RoleMismatchError is returned when a login requests a role the user does not hold.
// The message distinguishes a USER asking for ADMIN from the reverse; the stored role
// still drives authorization, this is only a login-time check.
type RoleMismatchError struct {
	RequestedRole string
	ActualRole    string
}

// Error implements the error interface
func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("role mismatch: requested %s, registered as %s", e.RequestedRole, e.ActualRole)
}

// Is checks if the target error is an ErrRoleMismatch
func (e *RoleMismatchError) Is(target error) bool {
	return target == ErrRoleMismatch
}

// LogFields returns a map of fields for structured logging
func (e *RoleMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "role_mismatch",
		"requested_role": e.RequestedRole,
		"actual_role":    e.ActualRole,
		"error_code":     CodeRoleMismatch,
	}
}

// NewRoleMismatchError creates a new role mismatch error
func NewRoleMismatchError(requestedRole, actualRole string) error {
	return &RoleMismatchError{RequestedRole: requestedRole, ActualRole: actualRole}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBudgetNotFound)
}

// IsDuplicateEmailError checks if the error is a duplicate email error
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

// IsValidationError checks if the error is a field-level validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAuthError checks if the error should surface as an authentication failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}
