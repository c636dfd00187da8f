package models

// EmergencyContact is a person notified when the owner raises an SOS
type EmergencyContact struct {
	BaseModel
	OwnerID      string    `json:"owner_id" gorm:"size:100;not null;index" validate:"required,max=100"`
	Name         string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Phone        string    `json:"phone" gorm:"size:30;not null" validate:"required,max=30"`
	Relationship string    `json:"relationship" gorm:"size:50" validate:"max=50"`
	Email        string    `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email,max=255"`
	IsPrimary    bool      `json:"is_primary" gorm:"not null"`
	Channels     []Channel `json:"channels" gorm:"type:text;serializer:json"`
	Active       bool      `json:"active" gorm:"not null;index"`
}

// TableName returns the table name for EmergencyContact
func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}

// Recipient converts the contact into a dispatch target.
// A contact without channels is reached by SMS, since a phone number is mandatory.
func (c *EmergencyContact) Recipient() Recipient {
	channels := c.Channels
	if len(channels) == 0 {
		channels = []Channel{ChannelSMS}
	}
	return Recipient{
		ID:       c.ID.String(),
		Kind:     RecipientKindEmergencyContact,
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Channels: channels,
	}
}
