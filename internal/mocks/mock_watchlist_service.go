package mocks

import (
	"context"
	"sync"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// MockWatchlistService implements domain.WatchlistService for testing
type MockWatchlistService struct {
	AddFunc           func(ctx context.Context, userID uint, title, genre, status string) (*domain.WatchlistItem, error)
	ListFunc          func(ctx context.Context, userID uint) ([]domain.WatchlistItem, error)
	UpdateFunc        func(ctx context.Context, userID, itemID uint, title, genre, status string) (*domain.WatchlistItem, error)
	RemoveFunc        func(ctx context.Context, userID, itemID uint) (*domain.WatchlistItem, error)
	CreateDefaultFunc func(ctx context.Context, userID uint) error

	mu              sync.Mutex
	defaultsCreated []uint
}

// NewMockWatchlistService creates a new MockWatchlistService
func NewMockWatchlistService() *MockWatchlistService {
	return &MockWatchlistService{}
}

func (m *MockWatchlistService) Add(ctx context.Context, userID uint, title, genre, status string) (*domain.WatchlistItem, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, title, genre, status)
	}
	return &domain.WatchlistItem{ID: 1, UserID: userID, Title: title, Genre: genre, Status: status}, nil
}

func (m *MockWatchlistService) List(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []domain.WatchlistItem{}, nil
}

func (m *MockWatchlistService) Update(ctx context.Context, userID, itemID uint, title, genre, status string) (*domain.WatchlistItem, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, itemID, title, genre, status)
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockWatchlistService) Remove(ctx context.Context, userID, itemID uint) (*domain.WatchlistItem, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, itemID)
	}
	return nil, domain.ErrItemNotFound
}

// CreateDefault records the user it was called for
func (m *MockWatchlistService) CreateDefault(ctx context.Context, userID uint) error {
	m.mu.Lock()
	m.defaultsCreated = append(m.defaultsCreated, userID)
	m.mu.Unlock()

	if m.CreateDefaultFunc != nil {
		return m.CreateDefaultFunc(ctx, userID)
	}
	return nil
}

// DefaultsCreated returns the users CreateDefault was called for
func (m *MockWatchlistService) DefaultsCreated() []uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint, len(m.defaultsCreated))
	copy(out, m.defaultsCreated)
	return out
}
