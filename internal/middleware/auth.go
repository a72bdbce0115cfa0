package middleware

import (
	"net/http"
	"strings"

	jwtsvc "gymops/internal/pkg/jwt"
	"gymops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores user_id and role in the
// request context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
