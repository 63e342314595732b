package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// Email copy for the authentication flows.
const (
	subjectVerify     = "Verify Your Email"
	subjectResend     = "Resend: Verify Your Email"
	subjectWelcome    = "Welcome to Watchlist!"
	subjectReset      = "Reset Your Password"
	subjectLoginAlert = "Account Login Alert"

	bodyVerify  = "Your OTP for Watchlist is %s. It expires in 10 minutes."
	bodyResend  = "Your new OTP is %s. It expires in 10 minutes."
	bodyReset   = "Your OTP for password reset is %s. It expires in 10 minutes."
	bodyWelcome = "Your email has been successfully verified. Welcome to Watchlist!"
)

// geoTimeout bounds the best-effort location lookup on login.
const geoTimeout = 2 * time.Second

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	otpSvc          domain.OTPService
	watchlistSvc    domain.WatchlistService
	notificationSvc domain.NotificationService
	geoSvc          domain.GeoResolver
	tokenTTL        time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	watchlistSvc domain.WatchlistService,
	notificationSvc domain.NotificationService,
	geoSvc domain.GeoResolver,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		otpSvc:          otpSvc,
		watchlistSvc:    watchlistSvc,
		notificationSvc: notificationSvc,
		geoSvc:          geoSvc,
		tokenTTL:        tokenTTL,
	}
}

// Register implements domain.AuthService. A duplicate email is
// reported as such; callers can tell an address is taken, which
// mirrors the original behavior.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		IsVerified:   false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpSvc.Issue(ctx, user, subjectVerify, bodyVerify); err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	return user, nil
}

// VerifyRegistration implements domain.AuthService. On success the
// verified flag is flipped and the OTP cleared in a single save, so
// the code cannot be replayed. The user's default watchlist is created
// here, exactly once per verification.
func (s *AuthServiceImpl) VerifyRegistration(ctx context.Context, email, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := s.otpSvc.Validate(user, code); err != nil {
		return err
	}

	user.IsVerified = true
	user.ClearOTP()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	s.notifyAsync(user.Email, subjectWelcome, bodyWelcome)

	if err := s.watchlistSvc.CreateDefault(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to create default watchlist: %w", err)
	}

	return nil
}

// ResendVerification implements domain.AuthService
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	return s.otpSvc.Issue(ctx, user, subjectResend, bodyResend)
}

// Login implements domain.AuthService. An unknown email and a wrong
// password are indistinguishable to the caller. The login-alert email
// with the resolved location runs in the background and never blocks
// or fails the login itself.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, remoteAddr string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, domain.ErrEmailNotVerified
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	go s.sendLoginAlert(user.Email, remoteAddr, time.Now())

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// RequestPasswordReset implements domain.AuthService. A reset code is
// issued regardless of the account's verification state.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	return s.otpSvc.Issue(ctx, user, subjectReset, bodyReset)
}

// ConfirmPasswordReset implements domain.AuthService. The new hash and
// the OTP clear land in the same save.
func (s *AuthServiceImpl) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := s.otpSvc.Validate(user, code); err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ClearOTP()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// sendLoginAlert resolves the caller's address to an approximate
// location and emails a login notification. Both steps are best
// effort: a failed lookup degrades to "Unknown Location" and a failed
// send is only logged.
func (s *AuthServiceImpl) sendLoginAlert(email, remoteAddr string, at time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), geoTimeout)
	defer cancel()

	location := s.geoSvc.Resolve(ctx, remoteAddr)

	body := fmt.Sprintf(
		"Your account was logged into on %s from IP: %s (%s). If this was not you, please reset your password immediately.",
		at.Format("2006-01-02 15:04:05"), remoteAddr, location,
	)
	if err := s.notificationSvc.Send(email, subjectLoginAlert, body); err != nil {
		log.Printf("LOGIN_ALERT_FAILED: to=%s error=%v", email, err)
	}
}

// notifyAsync sends an email in the background, downgrading any
// delivery failure to a log warning.
func (s *AuthServiceImpl) notifyAsync(to, subject, body string) {
	go func() {
		if err := s.notificationSvc.Send(to, subject, body); err != nil {
			log.Printf("NOTIFY_FAILED: to=%s subject=%q error=%v", to, subject, err)
		}
	}()
}
