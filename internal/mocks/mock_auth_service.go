package mocks

import (
	"context"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, email, password string) (*domain.User, error)
	VerifyRegistrationFunc   func(ctx context.Context, email, code string) error
	ResendVerificationFunc   func(ctx context.Context, email string) error
	LoginFunc                func(ctx context.Context, email, password, remoteAddr string) (*domain.AuthResult, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ConfirmPasswordResetFunc func(ctx context.Context, email, code, newPassword string) error
	GetProfileFunc           func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return &domain.User{ID: 1, Email: email}, nil
}

func (m *MockAuthService) VerifyRegistration(ctx context.Context, email, code string) error {
	if m.VerifyRegistrationFunc != nil {
		return m.VerifyRegistrationFunc(ctx, email, code)
	}
	return nil
}

func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password, remoteAddr string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, remoteAddr)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if m.ConfirmPasswordResetFunc != nil {
		return m.ConfirmPasswordResetFunc(ctx, email, code, newPassword)
	}
	return nil
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
