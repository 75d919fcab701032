package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the context key under which the auth middleware stores the
// authenticated user's ID. A custom type prevents collisions.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware. It returns the user ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	// Fall back to the Gin context map for handlers invoked outside the
	// middleware chain, such as in tests.
	if v, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}
