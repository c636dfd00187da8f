package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnavailableAddress marks a location snapshot taken without a usable fix
const UnavailableAddress = "unavailable"

// Location is the immutable position snapshot captured at activation
type Location struct {
	Latitude  float64  `json:"latitude" gorm:"not null;default:0"`
	Longitude float64  `json:"longitude" gorm:"not null;default:0"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Address   string   `json:"address,omitempty" gorm:"size:500"`
	Source    string   `json:"source,omitempty" gorm:"size:50"`
}

// UnavailableLocation returns the sentinel snapshot used when no source answers in time
func UnavailableLocation() Location {
	return Location{Latitude: 0, Longitude: 0, Address: UnavailableAddress, Source: "none"}
}

// IsUnavailable reports whether l is the sentinel snapshot
func (l Location) IsUnavailable() bool {
	return l.Address == UnavailableAddress
}

// SOSEvent is one emergency activation, from trigger to terminal resolution.
// Rows are never deleted; the notification log is the audit trail.
type SOSEvent struct {
	BaseModel
	SubjectID         string         `json:"subject_id" gorm:"size:100;not null;index" validate:"required,max=100"`
	SubjectRole       SubjectRole    `json:"subject_role" gorm:"type:varchar(20);not null" validate:"required"`
	SubjectName       string         `json:"subject_name,omitempty" gorm:"size:200"`
	Status            SOSStatus      `json:"status" gorm:"type:varchar(20);not null;index"`
	Tier              EscalationTier `json:"tier" gorm:"not null"`
	Location          Location       `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	ResolvedAt        *time.Time     `json:"resolved_at,omitempty"`
	RespondedAt       *time.Time     `json:"responded_at,omitempty"`
	Notes             string         `json:"notes,omitempty" gorm:"type:text"`
	SecondaryNotified bool           `json:"secondary_notified" gorm:"not null"`

	// Relationships
	NotificationLog []NotificationRecord `json:"notification_log,omitempty" gorm:"foreignKey:SOSEventID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for SOSEvent
func (SOSEvent) TableName() string {
	return "sos_events"
}

// IsTerminal reports whether the event has been resolved or dismissed
func (e *SOSEvent) IsTerminal() bool {
	return e.Status.IsTerminal()
}

// SOSState is the guard view of an event read straight from the store
type SOSState struct {
	Status            SOSStatus
	Tier              EscalationTier
	CreatedAt         time.Time
	SecondaryNotified bool
}

// NotificationRecord is one (recipient, channel) delivery attempt.
// Only Acknowledged and AcknowledgedAt change after insert.
type NotificationRecord struct {
	ID                uuid.UUID            `json:"id" gorm:"type:uuid;primaryKey"`
	SOSEventID        uuid.UUID            `json:"sos_event_id" gorm:"type:uuid;not null;index"`
	RecipientID       string               `json:"recipient_id" gorm:"size:100;not null"`
	RecipientKind     RecipientKind        `json:"recipient_kind" gorm:"type:varchar(30);not null;index"`
	RecipientName     string               `json:"recipient_name" gorm:"size:200"`
	Channel           Channel              `json:"channel" gorm:"type:varchar(10);not null"`
	Template          NotificationTemplate `json:"template" gorm:"type:varchar(50);not null"`
	SentAt            time.Time            `json:"sent_at" gorm:"not null;index"`
	Success           bool                 `json:"success" gorm:"not null"`
	Attempts          int                  `json:"attempts" gorm:"not null"`
	Error             string               `json:"error,omitempty" gorm:"size:500"`
	ProviderMessageID string               `json:"provider_message_id,omitempty" gorm:"size:200"`
	Acknowledged      bool                 `json:"acknowledged" gorm:"not null"`
	AcknowledgedAt    *time.Time           `json:"acknowledged_at,omitempty"`
}

// TableName returns the table name for NotificationRecord
func (NotificationRecord) TableName() string {
	return "notification_records"
}

// BeforeCreate sets the UUID if not already set
func (r *NotificationRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
