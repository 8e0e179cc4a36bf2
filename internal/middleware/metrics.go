package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/observability"
)

// Metrics records request counts and latency per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		observability.HTTPRequests().WithLabelValues(c.Request.Method, route, status).Inc()
		observability.HTTPLatency().WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
