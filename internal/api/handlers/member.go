package handlers

import (
	"net/http"
	"strings"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for members
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember creates a new member
// @Summary Create a new member
// @Description Register an admin or supervisor that SOS escalation can reach.
// @Description
// @Description Optional Fields with Defaults:
// @Description - channels: Defaults to ["push"] (valid values: sms, call, push, email)
// @Description - is_active: Defaults to true
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Description Get a specific member by their UUID
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid member ID")
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers lists active members by role
// @Summary List active members
// @Description Active members holding any of the given roles, oldest first. Without a role filter the escalation pool is listed: admins and supervisors.
// @Tags members
// @Produce json
// @Param role query []string false "Role filter, repeatable or comma separated" collectionFormat(multi)
// @Success 200 {array} service.MemberResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Unknown role"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var roles []models.MemberRole
	for _, value := range c.QueryArray("role") {
		for _, role := range strings.Split(value, ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, models.MemberRole(strings.ToLower(role)))
			}
		}
	}

	members, err := h.memberService.ListActiveMembers(c.Request.Context(), roles)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMember updates an existing member
// @Summary Update member
// @Description Update an existing member by ID. Set is_active to false to take a member out of future escalations.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Updated member data"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request body or member ID"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid member ID")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}
