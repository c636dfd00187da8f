package models

// MemberRole represents the role of a member of the business
type MemberRole string

const (
	MemberRoleAdmin      MemberRole = "admin"
	MemberRoleSupervisor MemberRole = "supervisor"
	MemberRoleWorker     MemberRole = "worker"
	MemberRoleClient     MemberRole = "client"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleSupervisor, MemberRoleWorker, MemberRoleClient:
		return true
	}
	return false
}

// Member is a staff or customer account. Admins and supervisors form the
// recipient pool for supervisor-tier escalation and the no-contacts fallback.
type Member struct {
	BaseModel
	FullName    string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber string     `json:"phone_number" gorm:"size:30"`
	Role        MemberRole `json:"role" gorm:"type:varchar(20);not null;index" validate:"required"`
	IsActive    bool       `json:"is_active" gorm:"not null"`
	Channels    []Channel  `json:"channels" gorm:"type:text;serializer:json"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}

// Recipient converts the member into a dispatch target.
// Supervisors keep their own kind; every other role is addressed as an admin.
func (m *Member) Recipient() Recipient {
	kind := RecipientKindAdmin
	if m.Role == MemberRoleSupervisor {
		kind = RecipientKindSupervisor
	}
	channels := m.Channels
	if len(channels) == 0 {
		channels = []Channel{ChannelPush}
	}
	return Recipient{
		ID:       m.ID.String(),
		Kind:     kind,
		Name:     m.FullName,
		Phone:    m.PhoneNumber,
		Email:    m.Email,
		Channels: channels,
	}
}
