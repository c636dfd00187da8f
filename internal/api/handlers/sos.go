package handlers

import (
	"net/http"
	"strconv"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SOSHandler handles HTTP requests for SOS events
type SOSHandler struct {
	sosService service.SOSServiceInterface
}

// NewSOSHandler creates a new SOS handler
func NewSOSHandler(sosService service.SOSServiceInterface) *SOSHandler {
	return &SOSHandler{
		sosService: sosService,
	}
}

// EmergencyTestResponse reports whether a test notification reached any contact
type EmergencyTestResponse struct {
	Delivered bool `json:"delivered"`
}

// Activate raises a new SOS event
// @Summary Activate SOS
// @Description Record an emergency for a worker or client, notify the primary contacts and start the escalation timeline.
// @Description
// @Description The event is persisted before any notification goes out. Notification failures never fail the request.
// @Tags sos
// @Accept json
// @Produce json
// @Param request body service.ActivateSOSRequest true "Activation data"
// @Success 201 {object} service.SOSEventResponse "SOS event created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Event could not be persisted"
// @Security BearerAuth
// @Router /sos [post]
func (h *SOSHandler) Activate(c *gin.Context) {
	var req service.ActivateSOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.sosService.Activate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	event, err := h.sosService.GetEvent(c.Request.Context(), id)
	if err != nil {
		// Activation itself succeeded; hand back the id so the caller can poll.
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent retrieves an SOS event with its notification log
// @Summary Get SOS event
// @Description Get an SOS event by UUID including every notification attempt
// @Tags sos
// @Accept json
// @Produce json
// @Param id path string true "SOS event ID (UUID)"
// @Success 200 {object} service.SOSEventResponse "Successfully retrieved event"
// @Failure 400 {object} ErrorResponse "Invalid SOS event ID"
// @Failure 404 {object} ErrorResponse "SOS event not found"
// @Security BearerAuth
// @Router /sos/{id} [get]
func (h *SOSHandler) GetEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid SOS event ID")
	if !ok {
		return
	}

	event, err := h.sosService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListBySubject lists a subject's SOS events, newest first
// @Summary List SOS events for a subject
// @Tags sos
// @Accept json
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.SOSEventListResponse "Successfully retrieved events"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /subjects/{subjectId}/sos [get]
func (h *SOSHandler) ListBySubject(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid offset"})
		return
	}

	list, err := h.sosService.ListBySubject(c.Request.Context(), c.Param("subjectId"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Resolve closes an SOS event
// @Summary Resolve SOS
// @Description Close an active or responding event as resolved or false_alarm. Pending escalations are cancelled.
// @Description Resolving an already closed event is a no-op and returns the event unchanged.
// @Tags sos
// @Accept json
// @Produce json
// @Param id path string true "SOS event ID (UUID)"
// @Param request body service.ResolveSOSRequest true "Resolution data"
// @Success 200 {object} service.SOSEventResponse "Event after resolution"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "SOS event not found"
// @Security BearerAuth
// @Router /sos/{id}/resolve [post]
func (h *SOSHandler) Resolve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid SOS event ID")
	if !ok {
		return
	}

	var req service.ResolveSOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.sosService.Resolve(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Escalate moves an SOS event to a higher tier on operator request
// @Summary Escalate SOS manually
// @Description Escalate an active event to supervisor or emergency_services. Never lowers the tier.
// @Tags sos
// @Accept json
// @Produce json
// @Param id path string true "SOS event ID (UUID)"
// @Param request body service.EscalateSOSRequest true "Target tier"
// @Success 200 {object} service.EscalateSOSResponse "Whether the escalation applied"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "SOS event not found"
// @Security BearerAuth
// @Router /sos/{id}/escalate [post]
func (h *SOSHandler) Escalate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid SOS event ID")
	if !ok {
		return
	}

	var req service.EscalateSOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	tier, err := models.ParseEscalationTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	applied, err := h.sosService.Escalate(c.Request.Context(), id, tier)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.EscalateSOSResponse{Applied: applied, Tier: tier})
}

// Acknowledge records that a recipient is responding
// @Summary Acknowledge notification
// @Description Mark a notification as acknowledged. An active event moves to responding and its escalation stops.
// @Tags sos
// @Accept json
// @Produce json
// @Param id path string true "SOS event ID (UUID)"
// @Param notificationId path string true "Notification record ID (UUID)"
// @Success 200 {object} service.SOSEventResponse "Event after acknowledgment"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Event or notification not found"
// @Security BearerAuth
// @Router /sos/{id}/notifications/{notificationId}/ack [post]
func (h *SOSHandler) Acknowledge(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid SOS event ID")
	if !ok {
		return
	}
	notificationID, ok := parseUUIDParam(c, "notificationId", "Invalid notification ID")
	if !ok {
		return
	}

	event, err := h.sosService.Acknowledge(c.Request.Context(), id, notificationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// EmergencyTest sends a test alert to a subject's contacts
// @Summary Test emergency system
// @Description Push a clearly marked test message to every active contact. No SOS event is created.
// @Tags sos
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} EmergencyTestResponse "Whether any contact received the test"
// @Failure 400 {object} ErrorResponse "Invalid subject"
// @Security BearerAuth
// @Router /subjects/{subjectId}/emergency-test [post]
func (h *SOSHandler) EmergencyTest(c *gin.Context) {
	delivered, err := h.sosService.TestEmergencySystem(c.Request.Context(), c.Param("subjectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, EmergencyTestResponse{Delivered: delivered})
}

func parseUUIDParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
		return uuid.Nil, false
	}
	return id, true
}
