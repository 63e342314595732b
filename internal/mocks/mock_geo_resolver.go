package mocks

import "context"

// MockGeoResolver implements domain.GeoResolver for testing
type MockGeoResolver struct {
	ResolveFunc func(ctx context.Context, addr string) string
}

// NewMockGeoResolver creates a new MockGeoResolver
func NewMockGeoResolver() *MockGeoResolver {
	return &MockGeoResolver{}
}

// Resolve returns "Unknown Location" by default
func (m *MockGeoResolver) Resolve(ctx context.Context, addr string) string {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, addr)
	}
	return "Unknown Location"
}
