package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type GeoIPConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

type LoginLimitConfig struct {
	Window      string `yaml:"window"`
	MaxAttempts int64  `yaml:"max_attempts"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	OTP        OTPConfig        `yaml:"otp"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	GeoIP      GeoIPConfig      `yaml:"geoip"`
	LoginLimit LoginLimitConfig `yaml:"login_limit"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
	OTPTTL        time.Duration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
	GeoIPEndpoint string
	GeoIPTimeout  time.Duration
	LoginWindow   time.Duration
	LoginMax      int64
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom reads the yaml config at path. Secrets can be overridden by
// environment (JWT_SECRET, EMAIL_USER, EMAIL_PASS, DATABASE_DSN) so
// they never need to live in the file.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	geoTimeout, err := time.ParseDuration(configFile.GeoIP.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid geoip timeout: %w", err)
	}

	loginWindow, err := time.ParseDuration(configFile.LoginLimit.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid login limit window: %w", err)
	}

	cfg := &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,
		JWTSecret:     env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:     configFile.JWT.Issuer,
		TokenTTL:      tokenTTL,
		OTPTTL:        otpTTL,
		SMTPHost:      configFile.SMTP.Host,
		SMTPPort:      configFile.SMTP.Port,
		SMTPUsername:  env("EMAIL_USER", configFile.SMTP.Username),
		SMTPPassword:  env("EMAIL_PASS", configFile.SMTP.Password),
		SMTPFrom:      env("EMAIL_USER", configFile.SMTP.From),
		GeoIPEndpoint: configFile.GeoIP.Endpoint,
		GeoIPTimeout:  geoTimeout,
		LoginWindow:   loginWindow,
		LoginMax:      configFile.LoginLimit.MaxAttempts,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
