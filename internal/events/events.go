package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/metrics"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Type names a lifecycle transition of an SOS event
type Type string

const (
	TypeActivated  Type = "sos.activated"
	TypeEscalated  Type = "sos.escalated"
	TypeResponding Type = "sos.responding"
	TypeResolved   Type = "sos.resolved"
)

// LifecycleEvent is published after a transition has been persisted
type LifecycleEvent struct {
	Type        Type                  `json:"type"`
	SOSEventID  uuid.UUID             `json:"sos_event_id"`
	SubjectID   string                `json:"subject_id,omitempty"`
	SubjectRole models.SubjectRole    `json:"subject_role,omitempty"`
	Status      models.SOSStatus      `json:"status"`
	Tier        models.EscalationTier `json:"tier"`
	Location    *models.Location      `json:"location,omitempty"`
	OccurredAt  time.Time             `json:"occurred_at"`
}

// Publisher hands lifecycle events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event LifecycleEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes lifecycle events as JSON, keyed by SOS event id so a
// single event's history stays ordered within one partition.
type KafkaPublisher struct {
	writer  messageWriter
	metrics *metrics.Metrics
}

// NewKafkaPublisher creates a synchronous writer for topic
func NewKafkaPublisher(brokers []string, topic string, m *metrics.Metrics) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer, metrics: m}
}

// Publish encodes and writes event
func (p *KafkaPublisher) Publish(ctx context.Context, event LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.metrics.EventPublished(string(event.Type), false)
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SOSEventID.String()),
		Value: body,
		Time:  event.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	p.metrics.EventPublished(string(event.Type), err == nil)
	if err != nil {
		return fmt.Errorf("write lifecycle event: %w", err)
	}
	return nil
}

// Close flushes pending writes
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(ctx context.Context, event LifecycleEvent) error { return nil }

// Close does nothing
func (NopPublisher) Close() error { return nil }
