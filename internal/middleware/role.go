package middleware

import (
	"net/http"

	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user has one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Role not found in token")
			c.Abort()
			return
		}

		if !allowed[role.(string)] {
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}

// StaffOnly admits staff and admin.
func StaffOnly() gin.HandlerFunc {
	return RequireRole("staff", "admin")
}
