package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and renders the last error a handler attached
// with c.Error, mapping domain errors to status codes
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestID(c),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:      errs.ErrorCode(errs.ErrInternalServer),
					Message:   "Internal server error",
					RequestID: RequestID(c),
				})
			}
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		err := last.Err
		status := errs.HTTPStatus(err)
		fields := errs.LogFields(err)
		fields["path"] = c.Request.URL.Path
		fields["request_id"] = RequestID(c)
		fields["status"] = status

		message := err.Error()
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
			if status == http.StatusInternalServerError {
				message = "Internal server error"
			}
		} else {
			logger.Debug("Request rejected", fields)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:      errs.ErrorCode(err),
			Message:   message,
			RequestID: RequestID(c),
		})
	}
}
