package handlers

import (
	"net/http"

	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsPersistence(err):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).
			WithField("path", c.FullPath()).
			WithError(err).
			Error("Request failed")
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}
