package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
)

// RequestLogger logs one line per request with latency and status. Paths with
// long-lived connections (the SSE stream) are skipped to keep the log usable.
func RequestLogger(log *logger.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}
	reqLog := log.With("component", "HTTP")
	return func(c *gin.Context) {
		if skip[c.FullPath()] {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		reqLog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
