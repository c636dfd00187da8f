package handlers

import (
	"net/http"
	"strconv"

	"sos-escalation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests for emergency contacts
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new emergency contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// AddEmergencyContact registers a contact for a subject
// @Summary Add emergency contact
// @Description Register an emergency contact for a worker or client.
// @Description
// @Description Optional Fields with Defaults:
// @Description - channels: Defaults to ["push"] (valid values: sms, call, push, email)
// @Description - is_primary: Defaults to false. Primary contacts are notified immediately, the rest after the secondary delay.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.AddEmergencyContactRequest true "Contact data"
// @Success 201 {object} service.EmergencyContactResponse "Successfully created contact"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) AddEmergencyContact(c *gin.Context) {
	var req service.AddEmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contact, err := h.contactService.AddEmergencyContact(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContacts lists a subject's emergency contacts
// @Summary List emergency contacts
// @Description Active contacts ordered primary first. Pass include_inactive=true to see deactivated ones too.
// @Tags contacts
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Param include_inactive query bool false "Include deactivated contacts" default(false)
// @Success 200 {array} service.EmergencyContactResponse "Successfully retrieved contacts"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /subjects/{subjectId}/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	includeInactive, err := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid include_inactive"})
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), c.Param("subjectId"), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// DeactivateContact stops a contact from receiving alerts
// @Summary Deactivate emergency contact
// @Description Contacts are never hard deleted so past notification logs stay meaningful.
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} map[string]interface{} "Contact deactivated"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeactivateContact(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid contact ID")
	if !ok {
		return
	}

	if err := h.contactService.DeactivateContact(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deactivated successfully"})
}
