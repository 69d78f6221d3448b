package middlewares

import (
	"smart_canteen/internal/services"
	"smart_canteen/pkg/resp"

	"github.com/gin-gonic/gin"
)

// AdminRequired rejects admin actions while the session is not in admin
// mode. This models the UI's admin-mode gate, not authentication.
func AdminRequired(session services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.AdminMode() {
			resp.Forbidden(c, "admin mode is off")
			c.Abort()
			return
		}
		c.Next()
	}
}
