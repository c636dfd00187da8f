package models

// Recipient is a dispatch target. It is never persisted on its own; each send
// is recorded as a NotificationRecord.
type Recipient struct {
	ID       string
	Kind     RecipientKind
	Name     string
	Phone    string
	Email    string
	Channels []Channel
}
