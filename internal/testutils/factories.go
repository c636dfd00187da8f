package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"sos-escalation-backend/internal/database/models"

	"github.com/google/uuid"
)

// sequence hands out increasing creation timestamps so "creation order" is
// deterministic even when rows are inserted within the same clock tick.
type sequence struct {
	base time.Time
	n    atomic.Int64
}

func newSequence() *sequence {
	return &sequence{base: time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)}
}

func (s *sequence) next() (int64, time.Time) {
	n := s.n.Add(1)
	return n, s.base.Add(time.Duration(n) * time.Millisecond)
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct {
	seq *sequence
}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{seq: newSequence()}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	n, at := f.seq.next()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: at,
			UpdatedAt: at,
		},
		FullName:    fmt.Sprintf("Member %d", n),
		Email:       fmt.Sprintf("member%d-%s@test.com", n, uuid.NewString()[:8]),
		PhoneNumber: "+1-555-0100",
		Role:        models.MemberRoleWorker,
		IsActive:    true,
		Channels:    []models.Channel{models.ChannelPush},
	}
}

// WithRole sets a custom role for the member
func (f *MemberFactory) WithRole(role models.MemberRole) *models.Member {
	member := f.Create()
	member.Role = role
	return member
}

// Admin creates an active admin
func (f *MemberFactory) Admin() *models.Member {
	return f.WithRole(models.MemberRoleAdmin)
}

// Supervisor creates an active supervisor
func (f *MemberFactory) Supervisor() *models.Member {
	return f.WithRole(models.MemberRoleSupervisor)
}

// EmergencyContactFactory provides methods to create test EmergencyContact data
type EmergencyContactFactory struct {
	seq *sequence
}

// NewEmergencyContactFactory creates a new EmergencyContactFactory
func NewEmergencyContactFactory() *EmergencyContactFactory {
	return &EmergencyContactFactory{seq: newSequence()}
}

// Create creates an active, non-primary push contact for the owner
func (f *EmergencyContactFactory) Create(ownerID string) *models.EmergencyContact {
	n, at := f.seq.next()
	return &models.EmergencyContact{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: at,
			UpdatedAt: at,
		},
		OwnerID:      ownerID,
		Name:         fmt.Sprintf("Contact %d", n),
		Phone:        fmt.Sprintf("+1-555-%04d", n),
		Relationship: "friend",
		IsPrimary:    false,
		Channels:     []models.Channel{models.ChannelPush},
		Active:       true,
	}
}

// Primary creates an active primary contact for the owner
func (f *EmergencyContactFactory) Primary(ownerID string) *models.EmergencyContact {
	contact := f.Create(ownerID)
	contact.IsPrimary = true
	return contact
}

// WithChannels creates a contact reachable over the given channels
func (f *EmergencyContactFactory) WithChannels(ownerID string, channels ...models.Channel) *models.EmergencyContact {
	contact := f.Create(ownerID)
	contact.Channels = channels
	return contact
}

// SOSEventFactory provides methods to create test SOSEvent data
type SOSEventFactory struct {
	seq *sequence
}

// NewSOSEventFactory creates a new SOSEventFactory
func NewSOSEventFactory() *SOSEventFactory {
	return &SOSEventFactory{seq: newSequence()}
}

// Create creates an Active, Initial-tier event for the subject
func (f *SOSEventFactory) Create(subjectID string) *models.SOSEvent {
	_, at := f.seq.next()
	return &models.SOSEvent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: at,
			UpdatedAt: at,
		},
		SubjectID:   subjectID,
		SubjectRole: models.SubjectRoleWorker,
		Status:      models.SOSStatusActive,
		Tier:        models.TierInitial,
		Location: models.Location{
			Latitude:  52.52,
			Longitude: 13.405,
			Address:   "Alexanderplatz 1, Berlin",
			Source:    "device",
		},
	}
}

// CreatedAt creates an Active event with a fixed creation time
func (f *SOSEventFactory) CreatedAt(subjectID string, at time.Time) *models.SOSEvent {
	event := f.Create(subjectID)
	event.CreatedAt = at
	event.UpdatedAt = at
	return event
}

// NotificationRecord creates a successful push record for a contact
func NotificationRecord(kind models.RecipientKind, sentAt time.Time) *models.NotificationRecord {
	return &models.NotificationRecord{
		RecipientID:   uuid.NewString(),
		RecipientKind: kind,
		RecipientName: "Recipient",
		Channel:       models.ChannelPush,
		Template:      models.TemplateSOSAlert,
		SentAt:        sentAt,
		Success:       true,
		Attempts:      1,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Member           *MemberFactory
	EmergencyContact *EmergencyContactFactory
	SOSEvent         *SOSEventFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member:           NewMemberFactory(),
		EmergencyContact: NewEmergencyContactFactory(),
		SOSEvent:         NewSOSEventFactory(),
	}
}
