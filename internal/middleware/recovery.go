package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Peculiar9/dojo/internal/errors"
	"github.com/Peculiar9/dojo/internal/logger"
)

// Recovery middleware converts handler panics into a 500 response instead
// of letting them kill the process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.GetLogger(c).WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    errors.ErrInternalServer,
				"message": "Internal server error",
			},
		})
	})
}
