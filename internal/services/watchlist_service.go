package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// Default watchlist item created when a registration is verified.
const (
	defaultTitle  = "My Watchlist"
	defaultGenre  = "General"
	defaultStatus = domain.StatusWatching
)

// WatchlistServiceImpl implements domain.WatchlistService
type WatchlistServiceImpl struct {
	watchlistRepo domain.WatchlistRepository
}

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(watchlistRepo domain.WatchlistRepository) domain.WatchlistService {
	return &WatchlistServiceImpl{watchlistRepo: watchlistRepo}
}

// Add implements domain.WatchlistService
func (s *WatchlistServiceImpl) Add(ctx context.Context, userID uint, title, genre, status string) (*domain.WatchlistItem, error) {
	if status == "" {
		status = domain.StatusWatching
	}
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	item := &domain.WatchlistItem{
		UserID: userID,
		Title:  title,
		Genre:  genre,
		Status: status,
	}
	if err := s.watchlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add watchlist item: %w", err)
	}
	return item, nil
}

// List implements domain.WatchlistService. An empty watchlist is a
// normal result, not an error.
func (s *WatchlistServiceImpl) List(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	items, err := s.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return items, nil
}

// Update implements domain.WatchlistService. Items belonging to other
// users are reported as not found.
func (s *WatchlistServiceImpl) Update(ctx context.Context, userID, itemID uint, title, genre, status string) (*domain.WatchlistItem, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	item, err := s.watchlistRepo.FindByID(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find watchlist item: %w", err)
	}

	if title != "" {
		item.Title = title
	}
	if genre != "" {
		item.Genre = genre
	}
	if status != "" {
		item.Status = status
	}

	if err := s.watchlistRepo.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update watchlist item: %w", err)
	}
	return item, nil
}

// Remove implements domain.WatchlistService
func (s *WatchlistServiceImpl) Remove(ctx context.Context, userID, itemID uint) (*domain.WatchlistItem, error) {
	item, err := s.watchlistRepo.FindByID(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find watchlist item: %w", err)
	}

	if err := s.watchlistRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to remove watchlist item: %w", err)
	}
	return item, nil
}

// CreateDefault implements domain.WatchlistService. Called by the auth
// flow when a registration is verified.
func (s *WatchlistServiceImpl) CreateDefault(ctx context.Context, userID uint) error {
	item := &domain.WatchlistItem{
		UserID: userID,
		Title:  defaultTitle,
		Genre:  defaultGenre,
		Status: defaultStatus,
	}
	if err := s.watchlistRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("failed to create default watchlist: %w", err)
	}
	return nil
}
