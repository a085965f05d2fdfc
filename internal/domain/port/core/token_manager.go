package core

// TokenClaims carries the identity embedded in a bearer token
type TokenClaims struct {
	UserID uint64
	Email  string
	Role   string
}

// TokenManager issues and verifies signed bearer tokens.
// Verify returns ErrTokenExpired for expired tokens and ErrInvalidToken
// for anything else that fails validation.
type TokenManager interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}
