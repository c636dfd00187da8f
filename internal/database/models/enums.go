package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// SubjectRole identifies who raised the SOS
type SubjectRole string

const (
	SubjectRoleWorker SubjectRole = "worker"
	SubjectRoleClient SubjectRole = "client"
)

// IsValid checks if the SubjectRole is valid
func (r SubjectRole) IsValid() bool {
	switch r {
	case SubjectRoleWorker, SubjectRoleClient:
		return true
	}
	return false
}

// SOSStatus represents the lifecycle status of an SOS event
type SOSStatus string

const (
	SOSStatusActive     SOSStatus = "active"
	SOSStatusResponding SOSStatus = "responding"
	SOSStatusResolved   SOSStatus = "resolved"
	SOSStatusFalseAlarm SOSStatus = "false_alarm"
)

// IsValid checks if the SOSStatus is valid
func (s SOSStatus) IsValid() bool {
	switch s {
	case SOSStatusActive, SOSStatusResponding, SOSStatusResolved, SOSStatusFalseAlarm:
		return true
	}
	return false
}

// IsTerminal reports whether no further mutation may happen
func (s SOSStatus) IsTerminal() bool {
	return s == SOSStatusResolved || s == SOSStatusFalseAlarm
}

// IsOutcome reports whether s may be passed to a resolution
func (s SOSStatus) IsOutcome() bool {
	return s.IsTerminal()
}

// EscalationTier is stored as an ordered integer so tiers compare with < and >.
type EscalationTier int

const (
	TierInitial EscalationTier = iota + 1
	TierSupervisor
	TierEmergencyServices
)

var tierNames = map[EscalationTier]string{
	TierInitial:           "initial",
	TierSupervisor:        "supervisor",
	TierEmergencyServices: "emergency_services",
}

// IsValid checks if the EscalationTier is valid
func (t EscalationTier) IsValid() bool {
	_, ok := tierNames[t]
	return ok
}

func (t EscalationTier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// MarshalText renders the tier by name in JSON and logs
func (t EscalationTier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid escalation tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts the tier name
func (t *EscalationTier) UnmarshalText(text []byte) error {
	parsed, err := ParseEscalationTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores the tier as its ordinal
func (t EscalationTier) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan reads the tier ordinal back from the store
func (t *EscalationTier) Scan(value interface{}) error {
	switch v := value.(type) {
	case int64:
		*t = EscalationTier(v)
	case int32:
		*t = EscalationTier(v)
	case int:
		*t = EscalationTier(v)
	case nil:
		*t = 0
	default:
		return fmt.Errorf("cannot scan %T into EscalationTier", value)
	}
	return nil
}

// ParseEscalationTier converts a tier name into an EscalationTier
func ParseEscalationTier(name string) (EscalationTier, error) {
	for tier, tierName := range tierNames {
		if strings.EqualFold(tierName, name) {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("unknown escalation tier %q", name)
}

// RecipientKind is the closed set of parties an SOS notification can target
type RecipientKind string

const (
	RecipientKindEmergencyContact  RecipientKind = "emergency_contact"
	RecipientKindSupervisor        RecipientKind = "supervisor"
	RecipientKindAdmin             RecipientKind = "admin"
	RecipientKindEmergencyServices RecipientKind = "emergency_services"
)

// IsValid checks if the RecipientKind is valid
func (k RecipientKind) IsValid() bool {
	switch k {
	case RecipientKindEmergencyContact, RecipientKindSupervisor, RecipientKindAdmin, RecipientKindEmergencyServices:
		return true
	}
	return false
}

// Channel is a delivery channel for a notification
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelCall  Channel = "call"
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
)

// AllChannels lists every supported channel
var AllChannels = []Channel{ChannelSMS, ChannelCall, ChannelPush, ChannelEmail}

// IsValid checks if the Channel is valid
func (c Channel) IsValid() bool {
	switch c {
	case ChannelSMS, ChannelCall, ChannelPush, ChannelEmail:
		return true
	}
	return false
}

// NotificationTemplate names the message a notification carries
type NotificationTemplate string

const (
	TemplateSOSAlert             NotificationTemplate = "sos_alert"
	TemplateSOSAlertSecondary    NotificationTemplate = "sos_alert_secondary"
	TemplateSupervisorEscalation NotificationTemplate = "sos_supervisor_escalation"
	TemplateEmergencyServices    NotificationTemplate = "sos_emergency_services"
	TemplateNoContactsFallback   NotificationTemplate = "sos_no_contacts"
	TemplateEmergencySystemTest  NotificationTemplate = "sos_system_test"
)
