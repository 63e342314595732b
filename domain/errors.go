package domain

import "errors"

// Account errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrEmailAlreadyVerified = errors.New("email is already verified")
)

// OTP errors
var (
	ErrOTPMissing  = errors.New("no otp pending")
	ErrOTPMismatch = errors.New("invalid otp code")
	ErrOTPExpired  = errors.New("otp has expired")
)

// Token errors
var (
	ErrTokenInvalid        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenMalformed      = errors.New("malformed token")
	ErrTokenMissingSubject = errors.New("token has no subject")
)

// Watchlist errors
var (
	ErrItemNotFound  = errors.New("watchlist item not found")
	ErrInvalidStatus = errors.New("invalid status value")
)

// Rate limit errors
var (
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
