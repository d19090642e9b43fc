package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// handleError maps service errors to HTTP responses. Anything outside
// the taxonomy is a 500 with a generic body; details stay in the log.
func handleError(c *gin.Context, l *logger.Logger, err error) {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.HTTPCode, gin.H{"error": apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	l.Error("Handler: unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
