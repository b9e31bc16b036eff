package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Peculiar9/dojo/internal/logger"
	"github.com/Peculiar9/dojo/internal/types"
	secutils "github.com/Peculiar9/dojo/internal/utils"
)

// RequestID middleware assigns each request a unique ID, taken from the
// X-Request-ID header when the caller supplies one, and stores a
// request-scoped logger carrying it in the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		safeRequestID := secutils.SanitizeForLog(requestID)

		// Echo the ID so callers can correlate responses with their logs
		c.Header("X-Request-ID", requestID)
		c.Set(types.RequestIDContextKey.String(), requestID)

		requestLogger := logger.GetLogger(c).WithField("request_id", safeRequestID)
		c.Set(types.LoggerContextKey.String(), requestLogger)

		c.Request = c.Request.WithContext(
			context.WithValue(
				context.WithValue(c.Request.Context(), types.RequestIDContextKey, requestID),
				types.LoggerContextKey, requestLogger,
			),
		)

		c.Next()
	}
}
