package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				log.ErrorContext(c.Request.Context(), "request failed",
					"path", c.FullPath(), "status", appErr.Code, "error", err, "request_id", c.GetString(response.RequestIDKey))
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}

		// Internal details stay in the log.
		log.ErrorContext(c.Request.Context(), "unhandled error",
			"path", c.FullPath(), "error", err, "request_id", c.GetString(response.RequestIDKey))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
	}
}
