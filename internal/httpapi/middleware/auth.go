package middleware

import (
	"net/http"
	"strings"

	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// forbiddenBody is the one denial shape every gate returns. It never
// distinguishes "not found" from "not allowed".
var forbiddenBody = gin.H{"error": "You do not have permission to perform this action"}

// AuthMiddleware checks the bearer token and loads the subject's user
// record from the store. The store stays the source of truth for role and
// standing; the token only proves identity.
func AuthMiddleware(authService service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated subject, or nil for requests that
// passed through without the auth middleware.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAdmin gates a route on effective admin standing.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, forbiddenBody)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Forbidden writes the uniform denial response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, forbiddenBody)
}
