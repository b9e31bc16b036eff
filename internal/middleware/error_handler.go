package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Peculiar9/dojo/internal/errors"
	"github.com/Peculiar9/dojo/internal/logger"
)

// ErrorHandler is middleware for handling application errors pushed onto
// the gin context. Errors carrying an AppError render with their own HTTP
// status and code; anything else renders as a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger.GetLogger(c).WithField("error", err.Error()).Error("request failed")

		if appErr, ok := errors.IsAppError(err); ok {
			c.JSON(appErr.HTTPCode, gin.H{
				"success": false,
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
					"details": appErr.Details,
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    errors.ErrInternalServer,
				"message": "Internal server error",
			},
		})
	}
}
