package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// Context keys set by the auth middleware.
const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
)

// AuthMiddleware gates protected routes. It validates the bearer token
// and then re-checks that the subject still exists in the store, so a
// token never outlives its account.
func AuthMiddleware(tokenSvc domain.TokenService, userRepo domain.UserRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenParts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please log in again."})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
			}
			c.Abort()
			return
		}

		// Existence re-check: the signed payload alone is not trusted.
		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found. Authentication failed."})
			c.Abort()
			return
		}

		c.Set(ctxUserID, user.ID)
		c.Set(ctxUserEmail, user.Email)

		c.Next()
	})
}

// IdentityFrom returns the authenticated identity attached to the
// request, if any.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return domain.Identity{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return domain.Identity{}, false
	}
	email, _ := c.Get(ctxUserEmail)
	emailStr, _ := email.(string)
	return domain.Identity{ID: userID, Email: emailStr}, true
}
