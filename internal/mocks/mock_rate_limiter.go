package mocks

import (
	"context"
	"time"
)

// MockRateLimiter implements domain.RateLimiter for testing
type MockRateLimiter struct {
	AllowFunc func(ctx context.Context, key string) (bool, time.Duration, error)
}

// NewMockRateLimiter creates a new MockRateLimiter
func NewMockRateLimiter() *MockRateLimiter {
	return &MockRateLimiter{}
}

// Allow permits everything by default
func (m *MockRateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	return true, 0, nil
}
