package repository

import (
	"context"
	"time"

	"sos-escalation-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SOSEventRepositoryInterface defines the interface for SOS event repository operations
type SOSEventRepositoryInterface interface {
	Create(ctx context.Context, event *models.SOSEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error)
	GetState(ctx context.Context, id uuid.UUID) (*models.SOSState, error)
	GetBySubject(ctx context.Context, subjectID string, limit, offset int) ([]models.SOSEvent, int64, error)
	ListActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.SOSEvent, error)
	ApplyTierIfActive(ctx context.Context, id uuid.UUID, expected, next models.EscalationTier) (bool, error)
	ResolveIfActive(ctx context.Context, id uuid.UUID, outcome models.SOSStatus, notes string, at time.Time) (bool, error)
	MarkResponding(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ClaimSecondaryFanout(ctx context.Context, id uuid.UUID) (bool, error)
	AppendNotification(ctx context.Context, sosID uuid.UUID, record *models.NotificationRecord) (bool, error)
	AcknowledgeNotification(ctx context.Context, sosID, notificationID uuid.UUID, at time.Time) (*models.NotificationRecord, error)
	CountNotifications(ctx context.Context, sosID uuid.UUID) (int64, error)
}

// EmergencyContactRepositoryInterface defines the interface for emergency contact repository operations
type EmergencyContactRepositoryInterface interface {
	Create(ctx context.Context, contact *models.EmergencyContact) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyContact, error)
	GetContactsFor(ctx context.Context, ownerID string) ([]models.EmergencyContact, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.EmergencyContact, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetActiveByRoles(ctx context.Context, roles ...models.MemberRole) ([]models.Member, error)
	Update(ctx context.Context, member *models.Member) error
}
