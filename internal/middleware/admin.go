package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GrantChecker reports whether an admin capability grant is valid.
type GrantChecker interface {
	Granted(grant string) bool
}

// AdminMiddleware requires a bearer grant issued by the admin login
func AdminMiddleware(gate GrantChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Check if header starts with "Bearer "
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with 'Bearer '"})
			return
		}

		grant := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if grant == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			return
		}

		if !gate.Granted(grant) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("admin", true)
		c.Next()
	}
}
