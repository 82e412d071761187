package middleware

import (
	"net/http"
	"strings"

	"animevote/internal/http-api/repository"
	"animevote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the Authorization header.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate token
		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// RequireAdmin gates admin-only routes. The token carries an is_admin
// snapshot, but this middleware re-checks the live user record so a
// revoked admin loses access immediately instead of at token expiry.
func RequireAdmin(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID.(string))
		if err != nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
