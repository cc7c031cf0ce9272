package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin:
// - anonymous: 401 (auth comes before the role check, so a signed-out
//   request is never answered with a role verdict)
// - authenticated non-admin: 403
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}
