package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
}

// WatchlistRepository defines watchlist data access operations
type WatchlistRepository interface {
	Create(ctx context.Context, item *WatchlistItem) error
	ListByUser(ctx context.Context, userID uint) ([]WatchlistItem, error)
	FindByID(ctx context.Context, id, userID uint) (*WatchlistItem, error)
	Update(ctx context.Context, item *WatchlistItem) error
	Delete(ctx context.Context, id, userID uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	VerifyRegistration(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email, password, remoteAddr string) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	GetProfile(ctx context.Context, userID uint) (*User, error)
}

// OTPService defines one-time code operations. Issue persists a fresh
// code on the user; Validate checks a supplied code but leaves the
// fields in place so the caller can clear them atomically with its own
// state change.
type OTPService interface {
	Issue(ctx context.Context, user *User, subject, bodyFormat string) error
	Validate(user *User, code string) error
}

// WatchlistService defines watchlist business logic
type WatchlistService interface {
	Add(ctx context.Context, userID uint, title, genre, status string) (*WatchlistItem, error)
	List(ctx context.Context, userID uint) ([]WatchlistItem, error)
	Update(ctx context.Context, userID, itemID uint, title, genre, status string) (*WatchlistItem, error)
	Remove(ctx context.Context, userID, itemID uint) (*WatchlistItem, error)
	CreateDefault(ctx context.Context, userID uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, email string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines transactional email operations. Failures
// are logged by callers, never propagated as operation failures.
type NotificationService interface {
	Send(to, subject, body string) error
}

// GeoResolver resolves a network address to an approximate location.
// Best effort: implementations return "Unknown Location" on any
// failure rather than an error the caller must handle.
type GeoResolver interface {
	Resolve(ctx context.Context, addr string) string
}

// RateLimiter enforces a fixed-window attempt limit per key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}
