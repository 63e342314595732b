package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/jallichakravarthi/mern-watchlist/internal/http/handlers"
	"github.com/jallichakravarthi/mern-watchlist/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, wh *handlers.WatchlistHandlers, jwtmw *middleware.AuthMW, loginLimit gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/", func(c *gin.Context) { c.String(200, "Welcome to the Watchlist API!") })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", loginLimit, ah.Login)
	auth.POST("/resend-otp", ah.ResendOTP)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.GET("/profile", jwtmw.WithJWT(), ah.Profile)

	wl := r.Group("/api/watchlist").Use(jwtmw.WithJWT())
	wl.POST("/add", wh.Add)
	wl.GET("/", wh.List)
	wl.PUT("/update/:id", wh.Update)
	wl.DELETE("/remove/:id", wh.Remove)

	return r
}
