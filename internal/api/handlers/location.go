package handlers

import (
	"net/http"

	"sos-escalation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler accepts location fixes from subject devices
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// ReportLocation stores a subject's latest fix
// @Summary Report device location
// @Description Devices post their last known position. An SOS activation uses the freshest fix.
// @Tags location
// @Accept json
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Param location body service.ReportLocationRequest true "Location fix"
// @Success 204 "Location stored"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /subjects/{subjectId}/location [post]
func (h *LocationHandler) ReportLocation(c *gin.Context) {
	var req service.ReportLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.locationService.ReportLocation(c.Request.Context(), c.Param("subjectId"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
