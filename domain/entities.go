package domain

import "time"

// Watch status values for watchlist items.
const (
	StatusWatching  = "watching"
	StatusCompleted = "completed"
)

// User represents an account in the system. OTP and OTPExpires are
// both set while a verification or password-reset flow is pending and
// both nil otherwise.
type User struct {
	ID           uint
	Email        string
	PasswordHash string `gorm:"column:password"`
	IsVerified   bool
	OTP          *string
	OTPExpires   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OTPPending reports whether a one-time code is currently issued.
func (u *User) OTPPending() bool {
	return u.OTP != nil && u.OTPExpires != nil
}

// ClearOTP removes the pending code. Callers persist the user together
// with the state change the code authorized.
func (u *User) ClearOTP() {
	u.OTP = nil
	u.OTPExpires = nil
}

// WatchlistItem represents a single entry in a user's watchlist.
type WatchlistItem struct {
	ID        uint
	UserID    uint
	Title     string
	Genre     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidStatus reports whether s is a recognized watch status.
func ValidStatus(s string) bool {
	return s == StatusWatching || s == StatusCompleted
}

// AuthResult represents a successful login outcome.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims represents the signed session token payload.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Identity is the minimal authenticated principal attached to a
// request after token verification.
type Identity struct {
	ID    uint
	Email string
}
