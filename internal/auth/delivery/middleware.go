package delivery

import (
	"net/http"
	"strings"

	authdomain "monderh-backend/internal/auth/domain"
	"monderh-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid Bearer token is
// present but lets anonymous requests through
func OptionalAuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if user, err := authUsecase.ValidateToken(parts[1]); err == nil {
				c.Set("user", user)
				c.Set("userID", user.ID)
			}
		}
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware; rejects non-admin users
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware, or nil
func CurrentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := v.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
