package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

func TestIssueAndVerify(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	manager := NewJWTManager("test-secret", time.Hour, clock)

	claims := core.TokenClaims{UserID: 42, Email: "user@example.com", Role: "USER"}

	signed, err := manager.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, claims, *got)
}

func TestVerifyExpiredToken(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	manager := NewJWTManager("test-secret", time.Hour, clock)

	signed, err := manager.Issue(core.TokenClaims{UserID: 1, Email: "a@b.com", Role: "USER"})
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	issuer := NewJWTManager("secret-one", time.Hour, clock)
	verifier := NewJWTManager("secret-two", time.Hour, clock)

	signed, err := issuer.Issue(core.TokenClaims{UserID: 1, Email: "a@b.com", Role: "USER"})
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	clock := &stubClock{now: time.Now()}
	manager := NewJWTManager("test-secret", time.Hour, clock)

	_, err := manager.Verify("not.a.token")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}
