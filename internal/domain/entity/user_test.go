package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{"USER", RoleUser, false},
		{"ADMIN", RoleAdmin, false},
		{"admin", RoleAdmin, false},
		{" user ", RoleUser, false},
		{"", RoleUser, false},
		{"SUPERUSER", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Run("Successful creation normalizes email", func(t *testing.T) {
		user, err := NewUser("Alice", "  Alice@Example.COM ", "hashed", RoleUser, testClock)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, testClock.Now(), user.CreatedAt)
		assert.False(t, user.IsAdmin())
	})

	t.Run("Admin role", func(t *testing.T) {
		user, err := NewUser("Root", "root@example.com", "hashed", RoleAdmin, testClock)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Missing name", func(t *testing.T) {
		_, err := NewUser("  ", "a@x.com", "hashed", RoleUser, testClock)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Invalid email", func(t *testing.T) {
		_, err := NewUser("Alice", "not-an-email", "hashed", RoleUser, testClock)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Missing password hash", func(t *testing.T) {
		_, err := NewUser("Alice", "a@x.com", "", RoleUser, testClock)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Invalid role", func(t *testing.T) {
		_, err := NewUser("Alice", "a@x.com", "hashed", Role("ROOT"), testClock)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
