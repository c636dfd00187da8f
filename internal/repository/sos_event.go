package repository

import (
	"context"
	"fmt"
	"time"

	"sos-escalation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SOSEventRepository is the durable store for SOS events and their notification logs.
// Every mutation is a conditional UPDATE keyed on the expected prior state; callers
// learn whether it applied from the returned bool.
type SOSEventRepository struct {
	db *gorm.DB
}

// NewSOSEventRepository creates a new SOS event repository
func NewSOSEventRepository(db *gorm.DB) *SOSEventRepository {
	return &SOSEventRepository{db: db}
}

// Create inserts a new SOS event
func (r *SOSEventRepository) Create(ctx context.Context, event *models.SOSEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID retrieves an SOS event with its notification log ordered by send time
func (r *SOSEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error) {
	var event models.SOSEvent
	err := r.db.WithContext(ctx).
		Preload("NotificationLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_at ASC")
		}).
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetState reads the guard fields of an event straight from the store
func (r *SOSEventRepository) GetState(ctx context.Context, id uuid.UUID) (*models.SOSState, error) {
	var state models.SOSState
	err := r.db.WithContext(ctx).
		Model(&models.SOSEvent{}).
		Select("status", "tier", "created_at", "secondary_notified").
		Where("id = ?", id).
		Take(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetBySubject retrieves a subject's events, newest first, with pagination
func (r *SOSEventRepository) GetBySubject(ctx context.Context, subjectID string, limit, offset int) ([]models.SOSEvent, int64, error) {
	var events []models.SOSEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SOSEvent{}).Where("subject_id = ?", subjectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// ListActiveCreatedBefore returns Active events created before cutoff, oldest first
func (r *SOSEventRepository) ListActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.SOSEvent, error) {
	var events []models.SOSEvent
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.SOSStatusActive, cutoff).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

// ApplyTierIfActive moves the event from expected to next only while it is Active
// and still at expected. It reports whether the row changed.
func (r *SOSEventRepository) ApplyTierIfActive(ctx context.Context, id uuid.UUID, expected, next models.EscalationTier) (bool, error) {
	if !next.IsValid() || next <= expected {
		return false, fmt.Errorf("tier transition %s -> %s is not an escalation", expected, next)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SOSEvent{}).
		Where("id = ? AND status = ? AND tier = ?", id, models.SOSStatusActive, expected).
		Update("tier", next)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ResolveIfActive sets the terminal outcome on an event that is not yet terminal.
// It reports false, leaving the row untouched, when the event was already resolved.
func (r *SOSEventRepository) ResolveIfActive(ctx context.Context, id uuid.UUID, outcome models.SOSStatus, notes string, at time.Time) (bool, error) {
	if !outcome.IsOutcome() {
		return false, fmt.Errorf("status %q is not a resolution outcome", outcome)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SOSEvent{}).
		Where("id = ? AND status IN ?", id, []models.SOSStatus{models.SOSStatusActive, models.SOSStatusResponding}).
		Updates(map[string]interface{}{
			"status":      outcome,
			"resolved_at": at,
			"notes":       notes,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// MarkResponding moves an Active event to Responding
func (r *SOSEventRepository) MarkResponding(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SOSEvent{}).
		Where("id = ? AND status = ?", id, models.SOSStatusActive).
		Updates(map[string]interface{}{
			"status":       models.SOSStatusResponding,
			"responded_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ClaimSecondaryFanout flips the secondary-contact flag on an Active event.
// Exactly one caller wins the claim, so the timer and the rescan never both notify.
func (r *SOSEventRepository) ClaimSecondaryFanout(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SOSEvent{}).
		Where("id = ? AND status = ? AND secondary_notified = ?", id, models.SOSStatusActive, false).
		Update("secondary_notified", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// AppendNotification adds a record to the event's log unless the event is terminal.
// The event row is share-locked for the duration, so a concurrent resolution either
// commits first (and the append is rejected) or waits for the append to commit.
func (r *SOSEventRepository) AppendNotification(ctx context.Context, sosID uuid.UUID, record *models.NotificationRecord) (bool, error) {
	appended := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.SOSEvent
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id", "status").
			Where("id = ?", sosID).
			Take(&event).Error; err != nil {
			return err
		}
		if event.Status.IsTerminal() {
			return nil
		}

		record.SOSEventID = sosID
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		appended = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return appended, nil
}

// AcknowledgeNotification flags a record as acknowledged. Acknowledging twice keeps
// the first timestamp.
func (r *SOSEventRepository) AcknowledgeNotification(ctx context.Context, sosID, notificationID uuid.UUID, at time.Time) (*models.NotificationRecord, error) {
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.NotificationRecord{}).
		Where("id = ? AND sos_event_id = ? AND acknowledged = ?", notificationID, sosID, false).
		Updates(map[string]interface{}{
			"acknowledged":    true,
			"acknowledged_at": at,
		}).Error; err != nil {
		return nil, err
	}

	var record models.NotificationRecord
	if err := db.First(&record, "id = ? AND sos_event_id = ?", notificationID, sosID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// CountNotifications returns the size of an event's log
func (r *SOSEventRepository) CountNotifications(ctx context.Context, sosID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationRecord{}).Where("sos_event_id = ?", sosID).Count(&count).Error
	return count, err
}
