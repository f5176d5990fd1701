package middleware

import (
	"errors"
	"net/http"

	"go-careers-backend/internal/delivery/http/response"
	"go-careers-backend/pkg/apperror"
	"go-careers-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				}
				var fields interface{}
				if len(appErr.Fields) > 0 {
					fields = appErr.Fields
				}
				response.Error(c, appErr.Code, appErr.Message, fields)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message out.
				logger.Log.Error("Unhandled error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
