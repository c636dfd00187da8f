package service

import (
	"context"
	"time"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/events"
	"sos-escalation-backend/internal/scheduler"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LocationProvider resolves a subject's current position
type LocationProvider interface {
	CurrentLocation(ctx context.Context, subjectID string) (models.Location, error)
}

// LocationReporter stores a device-reported fix
type LocationReporter interface {
	Report(ctx context.Context, subjectID string, loc models.Location) error
}

// NotificationDispatcher delivers one message and describes the outcome.
// Failures are reported through the record, never as an error.
type NotificationDispatcher interface {
	Send(ctx context.Context, recipient models.Recipient, channel models.Channel, template models.NotificationTemplate, data map[string]interface{}) models.NotificationRecord
}

// EventPublisher hands lifecycle events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, event events.LifecycleEvent) error
}

// EscalationScheduler runs delayed callbacks keyed by SOS event id
type EscalationScheduler interface {
	Schedule(key string, delay time.Duration, job scheduler.Job) *scheduler.Entry
	CancelAll(key string) int
}

// SOSServiceInterface defines the interface for SOS lifecycle operations
type SOSServiceInterface interface {
	Activate(ctx context.Context, req *ActivateSOSRequest) (uuid.UUID, error)
	Escalate(ctx context.Context, id uuid.UUID, target models.EscalationTier) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID, req *ResolveSOSRequest) (*SOSEventResponse, error)
	Acknowledge(ctx context.Context, id, notificationID uuid.UUID) (*SOSEventResponse, error)
	TestEmergencySystem(ctx context.Context, subjectID string) (bool, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*SOSEventResponse, error)
	ListBySubject(ctx context.Context, subjectID string, limit, offset int) (*SOSEventListResponse, error)
	Rescan(ctx context.Context) (*RescanSummary, error)
}

// ContactServiceInterface defines the interface for emergency contact operations
type ContactServiceInterface interface {
	AddEmergencyContact(ctx context.Context, req *AddEmergencyContactRequest) (*EmergencyContactResponse, error)
	ListContacts(ctx context.Context, ownerID string, includeInactive bool) ([]EmergencyContactResponse, error)
	DeactivateContact(ctx context.Context, id uuid.UUID) error
}

// LocationServiceInterface defines the interface for device location reports
type LocationServiceInterface interface {
	ReportLocation(ctx context.Context, subjectID string, req *ReportLocationRequest) error
}

// MemberServiceInterface defines the interface for managing the escalation recipient pool
type MemberServiceInterface interface {
	CreateMember(ctx context.Context, req *CreateMemberRequest) (*MemberResponse, error)
	GetMember(ctx context.Context, id uuid.UUID) (*MemberResponse, error)
	ListActiveMembers(ctx context.Context, roles []models.MemberRole) ([]MemberResponse, error)
	UpdateMember(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
}
