package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Peculiar9/dojo/internal/logger"
	"github.com/Peculiar9/dojo/internal/types"
	secutils "github.com/Peculiar9/dojo/internal/utils"
)

// Logger middleware logs one line per request with the request ID, method,
// path, status, response size, latency and client IP. The API is GET-only,
// so no request or response bodies are captured.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		requestIDStr := "unknown"
		if requestID, exists := c.Get(types.RequestIDContextKey.String()); exists {
			if idStr, ok := requestID.(string); ok && idStr != "" {
				requestIDStr = idStr
			}
		}

		latency := time.Since(start)

		if raw != "" {
			path = path + "?" + raw
		}

		logger.GetLogger(c).WithFields(map[string]interface{}{
			"request_id":  secutils.SanitizeForLog(requestIDStr),
			"method":      c.Request.Method,
			"path":        secutils.SanitizeForLog(path),
			"status_code": c.Writer.Status(),
			"size":        c.Writer.Size(),
			"latency":     latency.String(),
			"client_ip":   secutils.SanitizeForLog(c.ClientIP()),
		}).Info("request completed")
	}
}
