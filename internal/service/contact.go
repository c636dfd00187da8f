package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/logger"
	"sos-escalation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService handles business logic for emergency contacts
type ContactService struct {
	repo      repository.EmergencyContactRepositoryInterface
	validator *validator.Validate
}

// NewContactService creates a new emergency contact service
func NewContactService(repo repository.EmergencyContactRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{
		repo:      repo,
		validator: validator,
	}
}

// AddEmergencyContactRequest represents the data needed to register an emergency contact
type AddEmergencyContactRequest struct {
	OwnerID      string           `json:"owner_id" validate:"required,max=100" example:"worker-42"`
	Name         string           `json:"name" validate:"required,max=200" example:"Sam Miller"`
	Phone        string           `json:"phone" validate:"required,max=30" example:"+49 151 00000000"`
	Relationship string           `json:"relationship" validate:"max=50" example:"spouse"`
	Email        string           `json:"email" validate:"omitempty,email,max=255"`
	IsPrimary    bool             `json:"is_primary"`
	Channels     []models.Channel `json:"channels" validate:"omitempty,dive,oneof=sms call push email" swaggertype:"array,string"` // Optional: defaults to ["push"]
}

// EmergencyContactResponse represents the response data for an emergency contact
type EmergencyContactResponse struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      string           `json:"owner_id"`
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	Relationship string           `json:"relationship,omitempty"`
	Email        string           `json:"email,omitempty"`
	IsPrimary    bool             `json:"is_primary"`
	Channels     []models.Channel `json:"channels" swaggertype:"array,string"`
	Active       bool             `json:"active"`
	CreatedAt    string           `json:"created_at"`
}

// AddEmergencyContact registers a new active contact for a subject
func (s *ContactService) AddEmergencyContact(ctx context.Context, req *AddEmergencyContactRequest) (*EmergencyContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	channels := uniqueChannels(req.Channels)
	if len(channels) == 0 {
		channels = []models.Channel{models.ChannelPush}
	}
	if err := checkChannelAddresses(channels, req.Email); err != nil {
		return nil, err
	}

	contact := &models.EmergencyContact{
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
		Email:        req.Email,
		IsPrimary:    req.IsPrimary,
		Channels:     channels,
		Active:       true,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create emergency contact: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"owner_id":   contact.OwnerID,
		"contact_id": contact.ID,
		"is_primary": contact.IsPrimary,
	}).Info("Emergency contact added")

	return toContactResponse(contact), nil
}

// ListContacts returns a subject's contacts in notification order. Inactive
// contacts are only included on request.
func (s *ContactService) ListContacts(ctx context.Context, ownerID string, includeInactive bool) ([]EmergencyContactResponse, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner_id", "is required")
	}

	var contacts []models.EmergencyContact
	var err error
	if includeInactive {
		contacts, err = s.repo.ListByOwner(ctx, ownerID)
	} else {
		contacts, err = s.repo.GetContactsFor(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}

	responses := make([]EmergencyContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *toContactResponse(&contacts[i])
	}
	return responses, nil
}

// DeactivateContact stops a contact from receiving alerts. Contacts are kept
// because notification records refer to them.
func (s *ContactService) DeactivateContact(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmergencyContactNotFound
		}
		return fmt.Errorf("failed to deactivate emergency contact: %w", err)
	}

	logger.WithContext(ctx).WithField("contact_id", id).Info("Emergency contact deactivated")
	return nil
}

func checkChannelAddresses(channels []models.Channel, email string) error {
	for _, channel := range channels {
		if channel == models.ChannelEmail && email == "" {
			return apperrors.NewValidationError("email", "is required for the email channel")
		}
	}
	return nil
}

func toContactResponse(contact *models.EmergencyContact) *EmergencyContactResponse {
	return &EmergencyContactResponse{
		ID:           contact.ID,
		OwnerID:      contact.OwnerID,
		Name:         contact.Name,
		Phone:        contact.Phone,
		Relationship: contact.Relationship,
		Email:        contact.Email,
		IsPrimary:    contact.IsPrimary,
		Channels:     contact.Channels,
		Active:       contact.Active,
		CreatedAt:    contact.CreatedAt.Format(time.RFC3339),
	}
}
