package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// RateLimitMiddleware enforces a fixed-window attempt limit per client
// address. A limiter backend failure fails open: blocking logins on a
// Redis outage would turn the limiter into an availability hazard.
func RateLimitMiddleware(limiter domain.RateLimiter) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		allowed, wait, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("RATE_LIMIT_CHECK_FAILED: ip=%s error=%v", c.ClientIP(), err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(wait.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed login attempts. Try again later."})
			c.Abort()
			return
		}

		c.Next()
	})
}
