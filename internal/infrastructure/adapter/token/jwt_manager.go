package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

// JWTManager issues and verifies HMAC-SHA256 signed tokens
type JWTManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTManager creates a new JWT token manager
func NewJWTManager(secret string, ttl time.Duration, timeProvider core.TimeProvider) *JWTManager {
	return &JWTManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token carrying the user's identity
func (m *JWTManager) Issue(claims core.TokenClaims) (string, error) {
	now := m.timeProvider.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", claims.UserID),
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a signed token
func (m *JWTManager) Verify(tokenString string) (*core.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, errs.ErrInvalidToken
	}

	var userID uint64
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil {
		return nil, errs.ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &core.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}
