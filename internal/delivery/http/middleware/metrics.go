package middleware

import (
	"strconv"
	"time"

	"portfolio-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics records latency per matched route. Unmatched paths share
// one label so scanners cannot blow up cardinality.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
