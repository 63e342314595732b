package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testConfigYAML = `app:
  port: 5000
  gin_mode: test

database:
  dsn: "host=localhost dbname=watchlist_test"

redis:
  addr: "localhost:6379"
  password: ""
  db: 1

jwt:
  secret: "file-secret"
  issuer: "watchlist-test"
  ttl: 24h

otp:
  ttl: 10m

smtp:
  host: "smtp.example.com"
  port: "587"
  username: "mailer@example.com"
  password: "mailer-pass"
  from: "mailer@example.com"

geoip:
  endpoint: "http://ip-api.com/json"
  timeout: 2s

login_limit:
  window: 15m
  max_attempts: 5
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(writeTestConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token TTL, got %v", cfg.TokenTTL)
	}
	if cfg.OTPTTL != 10*time.Minute {
		t.Errorf("expected 10m OTP TTL, got %v", cfg.OTPTTL)
	}
	if cfg.LoginWindow != 15*time.Minute || cfg.LoginMax != 5 {
		t.Errorf("unexpected login limit %v/%d", cfg.LoginWindow, cfg.LoginMax)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.JWTSecret)
	}
}

func TestLoadFrom_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("EMAIL_USER", "env-mailer@example.com")
	t.Setenv("EMAIL_PASS", "env-pass")

	cfg, err := LoadFrom(writeTestConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.JWTSecret != "env-secret" {
		t.Errorf("expected env secret to win, got %q", cfg.JWTSecret)
	}
	if cfg.SMTPUsername != "env-mailer@example.com" || cfg.SMTPPassword != "env-pass" {
		t.Errorf("expected SMTP credentials from env, got %q/%q", cfg.SMTPUsername, cfg.SMTPPassword)
	}
}

func TestLoadFrom_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr bool
	}{
		{
			name:    "missing file",
			mutate:  nil,
			wantErr: true,
		},
		{
			name: "bad jwt ttl",
			mutate: func(s string) string {
				return strings.Replace(s, "ttl: 24h", "ttl: soon", 1)
			},
			wantErr: true,
		},
		{
			name: "missing jwt secret",
			mutate: func(s string) string {
				return strings.Replace(s, `secret: "file-secret"`, `secret: ""`, 1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yml")
			if tt.mutate != nil {
				path = writeTestConfig(t, tt.mutate(testConfigYAML))
			}
			if _, err := LoadFrom(path); (err != nil) != tt.wantErr {
				t.Errorf("LoadFrom error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
