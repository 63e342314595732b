package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"time"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes live on the user
// record itself: issuing stores the code and its expiry instant,
// validation compares against them. There is no cleanup sweep; expiry
// is enforced by timestamp comparison at validation time.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	userRepo        domain.UserRepository
	config          OTPConfig
}

type OTPConfig struct {
	TTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(notificationSvc domain.NotificationService, userRepo domain.UserRepository, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		userRepo:        userRepo,
		config:          config,
	}
}

// Issue implements domain.OTPService. It stores a fresh code on the
// user, persists it, then emails the code without blocking the caller.
// A failed delivery is logged and never rolls back the issuance.
// Issuing again replaces any previous code, so only the most recent
// one validates.
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User, subject, bodyFormat string) error {
	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	expires := time.Now().Add(s.config.TTL)
	user.OTP = &code
	user.OTPExpires = &expires

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	email := user.Email
	body := fmt.Sprintf(bodyFormat, code)
	go func() {
		if err := s.notificationSvc.Send(email, subject, body); err != nil {
			log.Printf("OTP_EMAIL_FAILED: to=%s subject=%q error=%v", email, subject, err)
		}
	}()

	return nil
}

// Validate implements domain.OTPService. Checks run in a fixed order
// (missing, mismatch, expired) so error precedence is deterministic.
// The fields are left in place: the caller clears them together with
// the state change the code authorizes.
func (s *OTPServiceImpl) Validate(user *domain.User, code string) error {
	if !user.OTPPending() {
		return domain.ErrOTPMissing
	}
	if *user.OTP != code {
		return domain.ErrOTPMismatch
	}
	if !time.Now().Before(*user.OTPExpires) {
		return domain.ErrOTPExpired
	}
	return nil
}

// generateCode draws a 6-digit code uniformly from [100000, 999999].
func (s *OTPServiceImpl) generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
