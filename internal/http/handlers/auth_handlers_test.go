package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jallichakravarthi/mern-watchlist/domain"
	"github.com/jallichakravarthi/mern-watchlist/internal/mocks"
)

func performAuthHandlerRequest(t *testing.T, authSvc *mocks.MockAuthService, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAuthHandlers(authSvc)
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/verify-otp", h.VerifyOTP)
	r.POST("/resend-otp", h.ResendOTP)
	r.POST("/login", h.Login)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/reset-password", h.ResetPassword)

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		registerErr    error
		expectedStatus int
	}{
		{
			name:           "successful registration",
			body:           RegisterRequest{Email: "u@example.com", Password: "secret1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email",
			body:           RegisterRequest{Email: "u@example.com", Password: "secret1"},
			registerErr:    domain.ErrUserAlreadyExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing email",
			body:           map[string]string{"password": "secret1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           RegisterRequest{Email: "u@example.com", Password: "abc"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "store failure is a generic 500",
			body:           RegisterRequest{Email: "u@example.com", Password: "secret1"},
			registerErr:    context.DeadlineExceeded,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.registerErr != nil {
				authSvc.RegisterFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
					return nil, tt.registerErr
				}
			}

			w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/register", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusInternalServerError && bytes.Contains(w.Body.Bytes(), []byte("deadline")) {
				t.Error("internal errors must not leak to the response")
			}
		})
	}
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	tests := []struct {
		name           string
		verifyErr      error
		expectedStatus int
	}{
		{"success", nil, http.StatusOK},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"no otp pending", domain.ErrOTPMissing, http.StatusBadRequest},
		{"wrong code", domain.ErrOTPMismatch, http.StatusBadRequest},
		{"expired code", domain.ErrOTPExpired, http.StatusBadRequest},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.VerifyRegistrationFunc = func(ctx context.Context, email, code string) error {
				return tt.verifyErr
			}

			body := VerifyOTPRequest{Email: "u@example.com", OTP: "123456"}
			w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/verify-otp", body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_ResendOTP(t *testing.T) {
	tests := []struct {
		name           string
		resendErr      error
		expectedStatus int
	}{
		{"success", nil, http.StatusOK},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"already verified", domain.ErrEmailAlreadyVerified, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.ResendVerificationFunc = func(ctx context.Context, email string) error {
				return tt.resendErr
			}

			w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/resend-otp", EmailRequest{Email: "u@example.com"})
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("successful login returns token and identity", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password, remoteAddr string) (*domain.AuthResult, error) {
			return &domain.AuthResult{
				User:      &domain.User{ID: 1, Email: email},
				Token:     "signed-token",
				ExpiresIn: 86400,
			}, nil
		}

		body := LoginRequest{Email: "u@example.com", Password: "secret1"}
		w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/login", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}

		var resp struct {
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				ID    uint   `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Token != "signed-token" {
			t.Errorf("expected token in response, got %q", resp.Token)
		}
		if resp.User.ID != 1 || resp.User.Email != "u@example.com" {
			t.Errorf("unexpected user payload %+v", resp.User)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name           string
			loginErr       error
			expectedStatus int
		}{
			{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
			{"not verified", domain.ErrEmailNotVerified, http.StatusForbidden},
			{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				authSvc := mocks.NewMockAuthService()
				authSvc.LoginFunc = func(ctx context.Context, email, password, remoteAddr string) (*domain.AuthResult, error) {
					return nil, tt.loginErr
				}

				body := LoginRequest{Email: "u@example.com", Password: "secret1"}
				w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/login", body)
				if w.Code != tt.expectedStatus {
					t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
				}
			})
		}
	})
}

func TestAuthHandlers_PasswordReset(t *testing.T) {
	t.Run("forgot password unknown email", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RequestPasswordResetFunc = func(ctx context.Context, email string) error {
			return domain.ErrUserNotFound
		}

		w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/forgot-password", EmailRequest{Email: "x@example.com"})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reset password error mapping", func(t *testing.T) {
		tests := []struct {
			name           string
			resetErr       error
			expectedStatus int
		}{
			{"success", nil, http.StatusOK},
			{"wrong code", domain.ErrOTPMismatch, http.StatusBadRequest},
			{"expired code", domain.ErrOTPExpired, http.StatusBadRequest},
			{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				authSvc := mocks.NewMockAuthService()
				authSvc.ConfirmPasswordResetFunc = func(ctx context.Context, email, code, newPassword string) error {
					return tt.resetErr
				}

				body := ResetPasswordRequest{Email: "u@example.com", OTP: "123456", NewPassword: "newpass"}
				w := performAuthHandlerRequest(t, authSvc, http.MethodPost, "/reset-password", body)
				if w.Code != tt.expectedStatus {
					t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
				}
			})
		}
	})
}
