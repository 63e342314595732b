package mocks

import (
	"context"
	"sync"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// MockWatchlistRepository implements domain.WatchlistRepository for
// testing. With no Func overrides it behaves as an in-memory store.
type MockWatchlistRepository struct {
	CreateFunc     func(ctx context.Context, item *domain.WatchlistItem) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]domain.WatchlistItem, error)
	FindByIDFunc   func(ctx context.Context, id, userID uint) (*domain.WatchlistItem, error)
	UpdateFunc     func(ctx context.Context, item *domain.WatchlistItem) error
	DeleteFunc     func(ctx context.Context, id, userID uint) error

	mu     sync.Mutex
	nextID uint
	items  map[uint]*domain.WatchlistItem
}

// NewMockWatchlistRepository creates a new MockWatchlistRepository
func NewMockWatchlistRepository() *MockWatchlistRepository {
	return &MockWatchlistRepository{
		nextID: 1,
		items:  make(map[uint]*domain.WatchlistItem),
	}
}

// Create stores a new item
func (m *MockWatchlistRepository) Create(ctx context.Context, item *domain.WatchlistItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.nextID
	m.nextID++
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

// ListByUser returns all items owned by userID
func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]domain.WatchlistItem, 0)
	for _, it := range m.items {
		if it.UserID == userID {
			items = append(items, *it)
		}
	}
	return items, nil
}

// FindByID returns the item if it exists and is owned by userID
func (m *MockWatchlistRepository) FindByID(ctx context.Context, id, userID uint) (*domain.WatchlistItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok || it.UserID != userID {
		return nil, domain.ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

// Update replaces a stored item
func (m *MockWatchlistRepository) Update(ctx context.Context, item *domain.WatchlistItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[item.ID]
	if !ok || it.UserID != item.UserID {
		return domain.ErrItemNotFound
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

// Delete removes a stored item
func (m *MockWatchlistRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok || it.UserID != userID {
		return domain.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}
