package repository

import (
	"context"

	"sos-escalation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmergencyContactRepository handles database operations for emergency contacts
type EmergencyContactRepository struct {
	db *gorm.DB
}

// NewEmergencyContactRepository creates a new emergency contact repository
func NewEmergencyContactRepository(db *gorm.DB) *EmergencyContactRepository {
	return &EmergencyContactRepository{db: db}
}

// Create creates a new emergency contact
func (r *EmergencyContactRepository) Create(ctx context.Context, contact *models.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// GetByID retrieves an emergency contact by ID
func (r *EmergencyContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyContact, error) {
	var contact models.EmergencyContact
	err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetContactsFor returns the owner's active contacts, primary first, then in creation order
func (r *EmergencyContactRepository) GetContactsFor(ctx context.Context, ownerID string) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Order("is_primary DESC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&contacts).Error
	return contacts, err
}

// ListByOwner returns every contact of the owner, including deactivated ones
func (r *EmergencyContactRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&contacts).Error
	return contacts, err
}

// Deactivate marks a contact inactive. Contacts are never hard deleted because
// notification records reference them.
func (r *EmergencyContactRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.EmergencyContact{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
