package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillup-platform/skillup-api/internal/store"
	"github.com/skillup-platform/skillup-api/internal/utils"
)

// ContextEmailKey is where AuthMiddleware stores the verified claim email.
const ContextEmailKey = "email"

// AuthMiddleware requires a valid Bearer token and attaches the claim
// email to the context for downstream gates and handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, _ := claims["email"].(string)
		c.Set(ContextEmailKey, email)

		c.Next()
	}
}

// RequireRole gates a route on the authenticated user's role. It resolves
// the role from the user store by the claim email set by AuthMiddleware,
// so it must be registered after it.
func RequireRole(users store.UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
			return
		}
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}
