package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/port/core"
)

// MockTokenManager is a testify mock for the TokenManager port
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Issue(claims coreport.TokenClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Verify(token string) (*coreport.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coreport.TokenClaims), args.Error(1)
}
