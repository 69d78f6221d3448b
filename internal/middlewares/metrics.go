package middlewares

import (
	"strconv"

	"smart_canteen/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts handled requests by method, route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.Requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
