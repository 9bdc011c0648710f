package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the Gin
// context. userRoleKey holds the role claim from the same token.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the
// Gin context. An empty role is valid; authorization falls back to
// participant matching only.
func GetUserRoleFromContext(c *gin.Context) string {
	roleVal, exists := c.Get(string(userRoleKey))
	if !exists {
		return ""
	}
	role, _ := roleVal.(string)
	return role
}
