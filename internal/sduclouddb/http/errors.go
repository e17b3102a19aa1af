package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/api/http/middleware"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownColumn), errors.Is(err, domain.ErrInvalidLookupValue):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUniqueViolation):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotNullViolation), errors.Is(err, domain.ErrForeignKeyViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"ok": false, "error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}
