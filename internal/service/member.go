package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService manages the admins and supervisors that SOS escalation reaches
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMemberRequest represents the data needed to create a member
type CreateMemberRequest struct {
	FullName    string            `json:"full_name" validate:"required,max=200" example:"Jordan Reyes"`
	Email       string            `json:"email" validate:"required,email,max=255" example:"jordan.reyes@example.com"`
	PhoneNumber string            `json:"phone_number" validate:"max=30" example:"+1 555 0101"`
	Role        models.MemberRole `json:"role" validate:"required,oneof=admin supervisor worker client" example:"supervisor"`
	Channels    []models.Channel  `json:"channels" validate:"omitempty,dive,oneof=sms call push email" swaggertype:"array,string"` // Optional: defaults to ["push"]
	IsActive    *bool             `json:"is_active" example:"true" default:"true"`                                                 // Optional: defaults to true if not provided
}

// UpdateMemberRequest represents the data needed to update a member
type UpdateMemberRequest struct {
	FullName    *string            `json:"full_name" validate:"omitempty,max=200"`
	Email       *string            `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string            `json:"phone_number" validate:"omitempty,max=30"`
	Role        *models.MemberRole `json:"role" validate:"omitempty,oneof=admin supervisor worker client"`
	Channels    []models.Channel   `json:"channels" validate:"omitempty,dive,oneof=sms call push email" swaggertype:"array,string"`
	IsActive    *bool              `json:"is_active"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID          uuid.UUID         `json:"id"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	Role        models.MemberRole `json:"role"`
	Channels    []models.Channel  `json:"channels" swaggertype:"array,string"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// CreateMember creates a new member
func (s *MemberService) CreateMember(ctx context.Context, req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Check if email already exists
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check member email: %w", err)
	}

	// Set default active status
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member := &models.Member{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		IsActive:    isActive,
		Channels:    memberChannels(req.Channels),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return toMemberResponse(member), nil
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// ListActiveMembers returns the active members holding any of roles, oldest
// first. With no roles it lists the escalation pool: admins and supervisors.
func (s *MemberService) ListActiveMembers(ctx context.Context, roles []models.MemberRole) ([]MemberResponse, error) {
	if len(roles) == 0 {
		roles = []models.MemberRole{models.MemberRoleAdmin, models.MemberRoleSupervisor}
	}
	for _, role := range roles {
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
		}
	}

	members, err := s.repo.GetActiveByRoles(ctx, roles...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i])
	}
	return responses, nil
}

// UpdateMember updates an existing member. Deactivating a member removes them
// from future escalations; events already notified keep their log entries.
func (s *MemberService) UpdateMember(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	member, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	// Check email uniqueness if email is being updated
	if req.Email != nil && *req.Email != member.Email {
		existing, err := s.repo.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != id {
			return nil, apperrors.ErrMemberExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check member email: %w", err)
		}
		member.Email = *req.Email
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Channels != nil {
		member.Channels = memberChannels(req.Channels)
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return toMemberResponse(member), nil
}

func (s *MemberService) getMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

func memberChannels(channels []models.Channel) []models.Channel {
	if len(channels) == 0 {
		return []models.Channel{models.ChannelPush}
	}
	return uniqueChannels(channels)
}

func toMemberResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:          member.ID,
		FullName:    member.FullName,
		Email:       member.Email,
		PhoneNumber: member.PhoneNumber,
		Role:        member.Role,
		Channels:    member.Recipient().Channels,
		IsActive:    member.IsActive,
		CreatedAt:   member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   member.UpdatedAt.Format(time.RFC3339),
	}
}
