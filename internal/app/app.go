package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jallichakravarthi/mern-watchlist/internal/config"
	httpx "github.com/jallichakravarthi/mern-watchlist/internal/http"
	"github.com/jallichakravarthi/mern-watchlist/internal/http/handlers"
	"github.com/jallichakravarthi/mern-watchlist/internal/http/middleware"
	"github.com/jallichakravarthi/mern-watchlist/internal/infrastructure/auth"
	"github.com/jallichakravarthi/mern-watchlist/internal/infrastructure/database"
	"github.com/jallichakravarthi/mern-watchlist/internal/infrastructure/geoip"
	"github.com/jallichakravarthi/mern-watchlist/internal/infrastructure/notifications"
	"github.com/jallichakravarthi/mern-watchlist/internal/infrastructure/ratelimit"
	"github.com/jallichakravarthi/mern-watchlist/internal/infrastructure/repositories"
	"github.com/jallichakravarthi/mern-watchlist/internal/services"
)

// Run wires every dependency explicitly, in order, and starts the
// HTTP server. Nothing is reached through package-level globals.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rc := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rc.Ping(context.Background()); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	notificationSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	geoSvc := geoip.NewIPAPIService(cfg.GeoIPEndpoint, cfg.GeoIPTimeout)
	loginLimiter := ratelimit.NewRedisLimiter(rc.Client, "login:rl", cfg.LoginWindow, cfg.LoginMax)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	watchlistRepo := repositories.NewWatchlistRepository(gdb)

	// Services
	otpSvc := services.NewOTPService(notificationSvc, userRepo, services.OTPConfig{TTL: cfg.OTPTTL})
	watchlistSvc := services.NewWatchlistService(watchlistRepo)
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, watchlistSvc, notificationSvc, geoSvc, cfg.TokenTTL)

	// Handlers and middleware
	authH := handlers.NewAuthHandlers(authSvc)
	watchlistH := handlers.NewWatchlistHandlers(watchlistSvc)
	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo)
	loginLimitMW := middleware.RateLimitMiddleware(loginLimiter)

	r := httpx.BuildRouter(authH, watchlistH, jwtMW, loginLimitMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
