package mocks

import (
	"context"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc    func(ctx context.Context, user *domain.User, subject, bodyFormat string) error
	ValidateFunc func(user *domain.User, code string) error
}

// NewMockOTPService creates a new MockOTPService
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue succeeds by default
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User, subject, bodyFormat string) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user, subject, bodyFormat)
	}
	return nil
}

// Validate compares against the user's stored code by default
func (m *MockOTPService) Validate(user *domain.User, code string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(user, code)
	}
	if !user.OTPPending() {
		return domain.ErrOTPMissing
	}
	if *user.OTP != code {
		return domain.ErrOTPMismatch
	}
	return nil
}
