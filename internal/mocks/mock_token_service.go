package mocks

import (
	"fmt"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, email string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate returns a deterministic fake token by default
func (m *MockTokenService) Generate(userID uint, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email)
	}
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

// Validate rejects everything by default
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
