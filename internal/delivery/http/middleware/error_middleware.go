package middleware

import (
	"errors"
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors pushed into the gin context to the
// response envelope. AppError carries its own status code; anything else is
// logged server-side and reported as a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Never expose internal error details to clients
				logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
