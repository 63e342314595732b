package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jallichakravarthi/mern-watchlist/domain"
	"gorm.io/gorm"
)

// WatchlistRepositoryImpl implements domain.WatchlistRepository using GORM
type WatchlistRepositoryImpl struct {
	db *gorm.DB
}

// DBWatchlistItem represents the database model for WatchlistItem.
// Every query is scoped by user_id so one user can never see or touch
// another user's items.
type DBWatchlistItem struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Title     string    `gorm:"size:255;not null"`
	Genre     string    `gorm:"size:128;not null"`
	Status    string    `gorm:"size:32;not null;default:watching"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBWatchlistItem) TableName() string {
	return "watchlists"
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *gorm.DB) domain.WatchlistRepository {
	return &WatchlistRepositoryImpl{db: db}
}

// Create implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) Create(ctx context.Context, item *domain.WatchlistItem) error {
	dbItem := r.domainToDB(item)
	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return err
	}
	item.ID = dbItem.ID
	return nil
}

// ListByUser implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	var dbItems []DBWatchlistItem
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&dbItems).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.WatchlistItem, 0, len(dbItems))
	for i := range dbItems {
		items = append(items, *r.dbToDomain(&dbItems[i]))
	}
	return items, nil
}

// FindByID implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) FindByID(ctx context.Context, id, userID uint) (*domain.WatchlistItem, error) {
	var dbItem DBWatchlistItem
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbItem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbItem), nil
}

// Update implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) Update(ctx context.Context, item *domain.WatchlistItem) error {
	res := r.db.WithContext(ctx).Model(&DBWatchlistItem{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]interface{}{
			"title":  item.Title,
			"genre":  item.Genre,
			"status": item.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete implements domain.WatchlistRepository
func (r *WatchlistRepositoryImpl) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBWatchlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// domainToDB converts domain item to database item
func (r *WatchlistRepositoryImpl) domainToDB(item *domain.WatchlistItem) *DBWatchlistItem {
	return &DBWatchlistItem{
		ID:     item.ID,
		UserID: item.UserID,
		Title:  item.Title,
		Genre:  item.Genre,
		Status: item.Status,
	}
}

// dbToDomain converts database item to domain item
func (r *WatchlistRepositoryImpl) dbToDomain(dbItem *DBWatchlistItem) *domain.WatchlistItem {
	return &domain.WatchlistItem{
		ID:        dbItem.ID,
		UserID:    dbItem.UserID,
		Title:     dbItem.Title,
		Genre:     dbItem.Genre,
		Status:    dbItem.Status,
		CreatedAt: dbItem.CreatedAt,
		UpdatedAt: dbItem.UpdatedAt,
	}
}
