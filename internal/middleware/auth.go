package middleware

import (
	"net/http"

	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a logged-in session and stores the
// caller's identity in the gin context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identityFromSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if _, ok := roleSet[id.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
