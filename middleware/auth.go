package middleware

import (
	"net/http"
	"strings"

	"food-donation-api/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthRequired validates the bearer token and injects the resolved user id
// into the request context. On failure the wrapped handler never runs.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID extracts the caller's user id from context
func GetUserID(c *gin.Context) string {
	val, _ := c.Get(userIDKey)
	id, _ := val.(string)
	return id
}
